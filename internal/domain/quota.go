package domain

import "time"

// DefaultMonthlyLimit is the number of repurposes allowed per calendar month
const DefaultMonthlyLimit = 20

// QuotaRecord is the persisted monthly usage counter.
// PeriodMonth is zero-based (January = 0).
type QuotaRecord struct {
	PeriodMonth int `json:"month"`
	PeriodYear  int `json:"year"`
	Total       int `json:"total"`
	Used        int `json:"used"`
}

// QuotaSnapshot is a read-only view of the quota for display
type QuotaSnapshot struct {
	PeriodMonth int
	PeriodYear  int
	Remaining   int
	Total       int
	Used        int
}

// NewQuotaRecord creates an unused record for the month containing now
func NewQuotaRecord(total int, now time.Time) QuotaRecord {
	return QuotaRecord{
		PeriodMonth: int(now.Month()) - 1,
		PeriodYear:  now.Year(),
		Total:       total,
	}
}

// Rollover resets usage when now falls in a different calendar month than
// the record's period. Returns true when the record changed.
func (q *QuotaRecord) Rollover(now time.Time) bool {
	month := int(now.Month()) - 1
	year := now.Year()
	if q.PeriodMonth == month && q.PeriodYear == year {
		return false
	}
	q.Used = 0
	q.PeriodMonth = month
	q.PeriodYear = year
	return true
}

// HasCredit reports whether another repurpose is allowed
func (q QuotaRecord) HasCredit() bool {
	return q.Used < q.Total
}

// Remaining returns the credits left, never negative
func (q QuotaRecord) Remaining() int {
	if q.Used >= q.Total {
		return 0
	}
	return q.Total - q.Used
}

// Consume uses one credit. It is a no-op when none remain.
func (q *QuotaRecord) Consume() bool {
	if !q.HasCredit() {
		return false
	}
	q.Used++
	return true
}

// Snapshot returns a display view of the record
func (q QuotaRecord) Snapshot() QuotaSnapshot {
	return QuotaSnapshot{
		PeriodMonth: q.PeriodMonth,
		PeriodYear:  q.PeriodYear,
		Remaining:   q.Remaining(),
		Total:       q.Total,
		Used:        q.Used,
	}
}
