package storage

import "time"

// StateEntryModel is the GORM model for the state_entries table.
// Value holds a JSON document.
type StateEntryModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StateEntryModel) TableName() string { return "state_entries" }
