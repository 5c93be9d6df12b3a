package models

import "time"

// DateLayout is the calendar-date format used for the savings ledger.
// Entries carry a date only, no time of day.
const DateLayout = "2006-01-02"

// SavingEntry is a single recorded deposit, optionally attributed to a goal.
// Entries are append-only: once written they are never edited or deleted.
type SavingEntry struct {
	// ID is the internal unique identifier of the entry.
	ID int64 `json:"-"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// Date is the calendar date of the deposit. Defaults to the day of
	// insertion; the time-of-day component is not persisted.
	Date time.Time `json:"date"`

	// Amount is the deposited amount.
	Amount float64 `json:"amount"`

	// GoalID links the entry to a goal, or is nil for an unallocated deposit.
	GoalID *int64 `json:"goal_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the SavingEntry model.
func (s SavingEntry) TableName() string {
	return "savings"
}
