package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

// identityTokenPrefix starts every generated identity token
const identityTokenPrefix = "ck_"

// QuotaService owns the monthly usage record and the identity token.
// Every mutation is persisted before the method returns.
type QuotaService struct {
	keys         config.StorageKeys
	limit        int
	listeners    map[int]func(domain.QuotaSnapshot)
	mu           sync.Mutex
	nextListener int
	now          func() time.Time
	store        ports.StateStore
}

// Verify interface compliance at compile time
var (
	_ ports.QuotaGate      = (*QuotaService)(nil)
	_ ports.IdentitySource = (*QuotaService)(nil)
)

// QuotaOption configures a QuotaService
type QuotaOption func(*QuotaService)

// WithQuotaClock overrides the clock used for the monthly rollover
func WithQuotaClock(now func() time.Time) QuotaOption {
	return func(s *QuotaService) {
		s.now = now
	}
}

// NewQuotaService creates a new QuotaService allowing limit repurposes per month
func NewQuotaService(store ports.StateStore, keys config.StorageKeys, limit int, opts ...QuotaOption) *QuotaService {
	s := &QuotaService{
		keys:      keys,
		limit:     limit,
		listeners: make(map[int]func(domain.QuotaSnapshot)),
		now:       time.Now,
		store:     store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every persisted change to the quota.
// The returned function removes the registration.
func (s *QuotaService) Subscribe(fn func(domain.QuotaSnapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Limit returns the configured monthly limit
func (s *QuotaService) Limit() int {
	return s.limit
}

// CheckAndValidate applies the monthly rollover, then reports whether a credit is left.
// It must return true before any remote call is made.
func (s *QuotaService) CheckAndValidate(ctx context.Context) (bool, error) {
	record, err := s.update(ctx, nil)
	if err != nil {
		return false, err
	}

	logging.Logger.Debug("Quota checked", "used", record.Used, "total", record.Total)
	return record.HasCredit(), nil
}

// Decrement consumes one credit and returns the credits left.
// It does nothing when no credit is left.
func (s *QuotaService) Decrement(ctx context.Context) (int, error) {
	record, err := s.update(ctx, func(r *domain.QuotaRecord) bool {
		return r.Consume()
	})
	if err != nil {
		return 0, err
	}

	logging.Logger.Info("Quota decremented", "used", record.Used, "remaining", record.Remaining())
	return record.Remaining(), nil
}

// Remaining returns the credits left in the current month
func (s *QuotaService) Remaining(ctx context.Context) (int, error) {
	record, err := s.update(ctx, nil)
	if err != nil {
		return 0, err
	}
	return record.Remaining(), nil
}

// Snapshot returns the current quota for display
func (s *QuotaService) Snapshot(ctx context.Context) (domain.QuotaSnapshot, error) {
	record, err := s.update(ctx, nil)
	if err != nil {
		return domain.QuotaSnapshot{}, err
	}
	return record.Snapshot(), nil
}

// IdentityToken returns the persisted identity token, creating it on first use
func (s *QuotaService) IdentityToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var token string
	found, err := loadDocument(ctx, s.store, s.keys.IdentityToken, &token)
	if err != nil && !errors.Is(err, errCorruptDocument) {
		return "", err
	}
	if found && token != "" {
		return token, nil
	}

	token = identityTokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := saveDocument(ctx, s.store, s.keys.IdentityToken, token); err != nil {
		return "", err
	}

	logging.Logger.Info("Generated identity token")
	return token, nil
}

// update loads the record, normalizes it (first use, limit change, month
// rollover), applies mutate and persists the result when anything changed.
// Listeners run after the lock is released.
func (s *QuotaService) update(ctx context.Context, mutate func(*domain.QuotaRecord) bool) (domain.QuotaRecord, error) {
	s.mu.Lock()

	record, changed, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return domain.QuotaRecord{}, err
	}

	if mutate != nil && mutate(&record) {
		changed = true
	}

	if changed {
		if err := saveDocument(ctx, s.store, s.keys.Usage, record); err != nil {
			s.mu.Unlock()
			return domain.QuotaRecord{}, fmt.Errorf("failed to persist quota: %w", err)
		}
	}

	listeners := make([]func(domain.QuotaSnapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if changed {
		snapshot := record.Snapshot()
		for _, fn := range listeners {
			fn(snapshot)
		}
	}

	return record, nil
}

// load must be called with mu held
func (s *QuotaService) load(ctx context.Context) (domain.QuotaRecord, bool, error) {
	now := s.now()

	var record domain.QuotaRecord
	found, err := loadDocument(ctx, s.store, s.keys.Usage, &record)
	if err != nil {
		if !errors.Is(err, errCorruptDocument) {
			return domain.QuotaRecord{}, false, err
		}
		logging.Logger.Warn("Usage record unreadable, starting a new one", "error", err)
		found = false
	}

	if !found {
		logging.Logger.Info("Initializing usage record", "limit", s.limit)
		return domain.NewQuotaRecord(s.limit, now), true, nil
	}

	changed := false
	if record.Total != s.limit {
		logging.Logger.Info("Monthly limit changed", "from", record.Total, "to", s.limit)
		record.Total = s.limit
		changed = true
	}
	if record.Rollover(now) {
		logging.Logger.Info("New month, usage reset", "month", record.PeriodMonth, "year", record.PeriodYear)
		changed = true
	}

	return record, changed, nil
}
