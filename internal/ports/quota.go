package ports

import (
	"context"

	"github.com/contentply/contentply/internal/domain"
)

// QuotaGate admits and charges repurpose requests against the monthly quota
type QuotaGate interface {
	// CheckAndValidate applies the monthly rollover and reports whether a credit is left
	CheckAndValidate(ctx context.Context) (bool, error)
	// Decrement consumes one credit and returns the credits left
	Decrement(ctx context.Context) (int, error)
	Limit() int
}

// HistoryRecorder records successful repurposes
type HistoryRecorder interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	RecordRepurposeEvent(ctx context.Context) error
}
