package services

import (
	"context"
	"errors"
	"sync"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

// HistoryService keeps the bounded history of successful repurposes and the lifetime stats
type HistoryService struct {
	keys  config.StorageKeys
	mu    sync.Mutex
	store ports.StateStore
}

// Verify interface compliance at compile time
var _ ports.HistoryRecorder = (*HistoryService)(nil)

// NewHistoryService creates a new HistoryService
func NewHistoryService(store ports.StateStore, keys config.StorageKeys) *HistoryService {
	return &HistoryService{
		keys:  keys,
		store: store,
	}
}

// Append inserts entry at the head of the history, dropping the oldest beyond the cap
func (s *HistoryService) Append(ctx context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return err
	}

	history = domain.PrependHistory(history, entry)
	if err := saveDocument(ctx, s.store, s.keys.History, history); err != nil {
		logging.Logger.Error("Failed to save history", "error", err)
		return err
	}

	logging.Logger.Debug("History entry appended", "id", entry.ID, "entries", len(history))
	return nil
}

// RecordRepurposeEvent adds one repurpose to the lifetime stats
func (s *HistoryService) RecordRepurposeEvent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.loadStats(ctx)
	if err != nil {
		return err
	}

	stats.RecordRepurpose()
	if err := saveDocument(ctx, s.store, s.keys.Stats, stats); err != nil {
		logging.Logger.Error("Failed to save stats", "error", err)
		return err
	}

	logging.Logger.Debug("Stats updated", "total", stats.TotalRepurposes)
	return nil
}

// List returns the history, newest first
func (s *HistoryService) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHistory(ctx)
}

// Stats returns the lifetime counters
func (s *HistoryService) Stats(ctx context.Context) (domain.UsageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadStats(ctx)
}

// Clear empties the history. Stats are kept.
func (s *HistoryService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := saveDocument(ctx, s.store, s.keys.History, []domain.HistoryEntry{}); err != nil {
		return err
	}

	logging.Logger.Info("History cleared")
	return nil
}

func (s *HistoryService) loadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	var history []domain.HistoryEntry
	if _, err := loadDocument(ctx, s.store, s.keys.History, &history); err != nil {
		if !errors.Is(err, errCorruptDocument) {
			return nil, err
		}
		logging.Logger.Warn("History unreadable, starting empty", "error", err)
		return nil, nil
	}
	return history, nil
}

func (s *HistoryService) loadStats(ctx context.Context) (domain.UsageStats, error) {
	var stats domain.UsageStats
	if _, err := loadDocument(ctx, s.store, s.keys.Stats, &stats); err != nil {
		if !errors.Is(err, errCorruptDocument) {
			return domain.UsageStats{}, err
		}
		logging.Logger.Warn("Stats unreadable, starting from zero", "error", err)
		return domain.UsageStats{}, nil
	}
	return stats, nil
}
