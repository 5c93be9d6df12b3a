package models

// Goal represents a savings target owned by exactly one user.
//
// AchievedAmount is maintained incrementally by the savings ledger:
// every entry linked to the goal adds its amount to the running total.
// It is never recomputed from the ledger.
type Goal struct {
	// ID is the internal unique identifier of the goal.
	ID int64 `json:"-"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// Name is the free-text name of the goal. Not unique.
	Name string `json:"name"`

	// TargetAmount is the monetary target of the goal.
	TargetAmount float64 `json:"target_amount"`

	// AchievedAmount is the running sum of all savings entries
	// linked to this goal. Starts at 0.
	AchievedAmount float64 `json:"achieved_amount"`
}

// Progress returns the achieved fraction of the target, capped at 1.
// A goal with a non-positive target reports zero progress.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.AchievedAmount / g.TargetAmount
	if p > 1 {
		return 1
	}
	return p
}

// ProgressPercent returns Progress as an integer percentage in [0, 100].
func (g Goal) ProgressPercent() int {
	return int(g.Progress() * 100)
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "goals"
}
