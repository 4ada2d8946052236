package entity

import "time"

type Event struct {
	ID          int64
	Name        string
	Headline    string
	Description string
	Tags        []string
	Location    string
	StartsAt    time.Time
	CreatedBy   int64
	CreatedAt   time.Time
}

// EventConnection links a participant to an event. The organizer is
// denormalized from the event row at join time.
type EventConnection struct {
	ID            int64
	EventID       int64
	OrganizerID   int64
	ParticipantID int64
	JoinedAt      time.Time
}

// Participant is a connection joined with the participant's public
// profile fields.
type Participant struct {
	ConnectionID int64
	UserID       int64
	FullName     string
	Email        string
	PhotoURL     string
	JoinedAt     time.Time
}

// UserProfile is the slice of the user row the recommendation prompt
// needs.
type UserProfile struct {
	ID          int64
	FullName    string
	Role        string
	PrimaryGoal string
	Interests   []string
	Skills      []string
	Location    string
}

// Recommendation is the scored verdict for one event.
type Recommendation struct {
	EventID       int64
	IsRecommended bool
	MatchScore    int32
	Reasoning     string
}

// RecommendedEvent pairs an event with its score for the response.
type RecommendedEvent struct {
	Event          Event
	Recommendation Recommendation
}
