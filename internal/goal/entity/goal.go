package entity

import "time"

// Milestone is a single step inside a goal. The slice is stored as one
// jsonb document on the goal row, so these json tags are the wire and
// storage format at once.
type Milestone struct {
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Goal struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Status      GoalStatus
	Progress    int32
	TargetDate  *time.Time
	Milestones  []Milestone
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateGoal carries a partial update. Nil pointers mean the field is left
// untouched; a non-nil pointer to a zero value overwrites.
type UpdateGoal struct {
	ID          int64
	UserID      int64
	Title       *string
	Description *string
	Status      *GoalStatus
	Progress    *int32
	TargetDate  *time.Time
	Milestones  *[]Milestone
	Tags        *[]string
}
