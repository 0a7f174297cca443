package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuotaRecord_RolloverNewMonthResetsUsage(t *testing.T) {
	q := QuotaRecord{Used: 7, Total: 20, PeriodMonth: 8, PeriodYear: 2026}

	changed := q.Rollover(time.Date(2026, time.October, 3, 9, 0, 0, 0, time.UTC))

	assert.True(t, changed)
	assert.Equal(t, 0, q.Used)
	assert.Equal(t, 9, q.PeriodMonth)
	assert.Equal(t, 2026, q.PeriodYear)
	assert.Equal(t, 20, q.Total)
}

func TestQuotaRecord_RolloverSameMonthKeepsUsage(t *testing.T) {
	q := QuotaRecord{Used: 7, Total: 20, PeriodMonth: 9, PeriodYear: 2026}

	changed := q.Rollover(time.Date(2026, time.October, 31, 23, 59, 0, 0, time.UTC))

	assert.False(t, changed)
	assert.Equal(t, 7, q.Used)
}

func TestQuotaRecord_RolloverSameMonthDifferentYear(t *testing.T) {
	q := QuotaRecord{Used: 3, Total: 20, PeriodMonth: 0, PeriodYear: 2025}

	changed := q.Rollover(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, changed)
	assert.Equal(t, 0, q.Used)
	assert.Equal(t, 2026, q.PeriodYear)
}

func TestQuotaRecord_ConsumeNeverExceedsTotal(t *testing.T) {
	q := QuotaRecord{Used: 1, Total: 2}

	assert.True(t, q.Consume())
	assert.Equal(t, 2, q.Used)
	assert.Equal(t, 0, q.Remaining())

	assert.False(t, q.Consume())
	assert.Equal(t, 2, q.Used)
	assert.False(t, q.HasCredit())
}

func TestQuotaRecord_RemainingNeverNegative(t *testing.T) {
	q := QuotaRecord{Used: 25, Total: 20}
	assert.Equal(t, 0, q.Remaining())
}

func TestNewQuotaRecord_UsesZeroBasedMonth(t *testing.T) {
	q := NewQuotaRecord(20, time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 11, q.PeriodMonth)
	assert.Equal(t, 2026, q.PeriodYear)
	assert.Equal(t, 0, q.Used)
	assert.Equal(t, QuotaSnapshot{PeriodMonth: 11, PeriodYear: 2026, Remaining: 20, Total: 20}, q.Snapshot())
}
