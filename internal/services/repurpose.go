package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

// RepurposeService runs the submission lifecycle: validate, check quota,
// call the repurposer and record the outcome.
type RepurposeService struct {
	client    ports.Repurposer
	guard     *semaphore.Weighted
	history   ports.HistoryRecorder
	listeners []func(domain.SubmissionState)
	mu        sync.RWMutex
	newID     func() string
	now       func() time.Time
	quota     ports.QuotaGate
	state     domain.SubmissionState
}

// RepurposeOption configures a RepurposeService
type RepurposeOption func(*RepurposeService)

// WithRepurposeClock overrides the clock used for history timestamps
func WithRepurposeClock(now func() time.Time) RepurposeOption {
	return func(s *RepurposeService) {
		s.now = now
	}
}

// WithIDGenerator overrides how history entry ids are generated
func WithIDGenerator(newID func() string) RepurposeOption {
	return func(s *RepurposeService) {
		s.newID = newID
	}
}

// NewRepurposeService creates a new RepurposeService
func NewRepurposeService(
	quota ports.QuotaGate,
	history ports.HistoryRecorder,
	client ports.Repurposer,
	opts ...RepurposeOption,
) *RepurposeService {
	s := &RepurposeService{
		client:  client,
		guard:   semaphore.NewWeighted(1),
		history: history,
		newID:   uuid.NewString,
		now:     time.Now,
		quota:   quota,
		state:   domain.SubmissionIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current submission state
func (s *RepurposeService) State() domain.SubmissionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called on every state transition
func (s *RepurposeService) Subscribe(fn func(domain.SubmissionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Submit repurposes content. Quota, stats and history change only when the
// call succeeds. A submission started while another is running is rejected
// with domain.ErrSubmissionInFlight.
func (s *RepurposeService) Submit(ctx context.Context, content string, isURL bool) (*domain.RepurposeResult, error) {
	if !s.guard.TryAcquire(1) {
		logging.Logger.Warn("Submission rejected, another one is in progress")
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.guard.Release(1)

	result, err := s.submit(ctx, content, isURL)
	if err != nil {
		s.setState(domain.SubmissionFailed)
	} else {
		s.setState(domain.SubmissionSucceeded)
	}
	s.setState(domain.SubmissionIdle)

	return result, err
}

func (s *RepurposeService) submit(ctx context.Context, content string, isURL bool) (*domain.RepurposeResult, error) {
	s.setState(domain.SubmissionValidating)
	content = strings.TrimSpace(content)
	if err := validateSubmission(content, isURL); err != nil {
		logging.Logger.Info("Submission rejected", "reason", err, "is_url", isURL)
		return nil, err
	}

	s.setState(domain.SubmissionCheckingQuota)
	ok, err := s.quota.CheckAndValidate(ctx)
	if err != nil {
		logging.Logger.Error("Failed to check quota", "error", err)
		return nil, fmt.Errorf("failed to check quota: %w", err)
	}
	if !ok {
		logging.Logger.Info("Submission rejected, quota exhausted", "limit", s.quota.Limit())
		return nil, &domain.QuotaExceededError{Limit: s.quota.Limit()}
	}

	s.setState(domain.SubmissionCalling)
	result, err := s.client.Repurpose(ctx, content, isURL)
	if err != nil {
		var repurposeErr *domain.RepurposeError
		if !errors.As(err, &repurposeErr) {
			repurposeErr = domain.NewRepurposeError(err)
		}
		return nil, repurposeErr
	}
	if result == nil || !result.Success {
		logging.Logger.Warn("Repurposer reported failure")
		return nil, domain.NewRepurposeError(errors.New("response reported success=false"))
	}

	if err := s.record(ctx, content, isURL, result); err != nil {
		return nil, err
	}

	logging.Logger.Info("Submission succeeded", "platforms", len(result.Results), "variants", result.VariantCount())
	return result, nil
}

// record applies the success side effects in order: quota, stats, history.
// A later failure leaves the credit spent.
func (s *RepurposeService) record(ctx context.Context, content string, isURL bool, result *domain.RepurposeResult) error {
	if _, err := s.quota.Decrement(ctx); err != nil {
		logging.Logger.Error("Failed to decrement quota", "error", err)
		return fmt.Errorf("failed to decrement quota: %w", err)
	}

	if err := s.history.RecordRepurposeEvent(ctx); err != nil {
		logging.Logger.Error("Failed to record stats", "error", err)
		return fmt.Errorf("failed to record stats: %w", err)
	}

	entry := domain.HistoryEntry{
		ContentPreview: domain.Preview(content, domain.PreviewLength),
		ID:             s.newID(),
		Mode:           domain.ModeFor(isURL),
		Platforms:      result.Platforms(),
		Timestamp:      s.now().UTC(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		logging.Logger.Error("Failed to append history", "error", err)
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

func (s *RepurposeService) setState(state domain.SubmissionState) {
	s.mu.Lock()
	s.state = state
	listeners := s.listeners
	s.mu.Unlock()

	logging.Logger.Debug("Submission state changed", "state", state)
	for _, fn := range listeners {
		fn(state)
	}
}
