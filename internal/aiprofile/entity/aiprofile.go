package entity

import "time"

// AIProfile is the generated narrative card shown on a user's profile.
type AIProfile struct {
	ID            int64
	UserID        int64
	Summary       string
	CurrentFocus  []string
	Strengths     []string
	Highlights    []string
	LastGenerated time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileSource is the slice of the user row the generator reads.
type ProfileSource struct {
	UserID      int64
	Role        string
	PrimaryGoal string
	Company     string
	Website     string
	Location    string
	OneLiner    string
}

// ActiveGoal is a goal title with its completed milestone count, the two
// facts the generator cares about.
type ActiveGoal struct {
	Title               string
	CompletedMilestones int
}
