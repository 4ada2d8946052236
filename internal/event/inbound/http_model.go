package inbound

import (
	"net/http"
	"time"

	"github.com/tracksense/goalnet/internal/event/entity"
)

type EventJoinRequest struct {
	EventID int64 `json:"event_id,string"`
}

type EventConnectionPayload struct {
	ID            int64     `json:"id,string"`
	EventID       int64     `json:"event_id,string"`
	OrganizerID   int64     `json:"organizer_id,string"`
	ParticipantID int64     `json:"participant_id,string"`
	JoinedAt      time.Time `json:"joined_at"`
}

type EventJoinResponse struct {
	Connection EventConnectionPayload `json:"connection"`
}

func (EventJoinResponse) Message() string {
	return "Successfully joined event."
}

func (EventJoinResponse) StatusCode() int {
	return http.StatusCreated
}

type ParticipantPayload struct {
	ConnectionID int64     `json:"connection_id,string"`
	UserID       int64     `json:"user_id,string"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

type EventParticipantsResponse struct {
	Participants []ParticipantPayload `json:"participants"`
}

type EventPayload struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Headline    string    `json:"headline,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
}

type RecommendationPayload struct {
	IsRecommended bool   `json:"is_recommended"`
	MatchScore    int32  `json:"match_score"`
	Reasoning     string `json:"reasoning"`
}

type RecommendedEventPayload struct {
	Event          EventPayload          `json:"event"`
	Recommendation RecommendationPayload `json:"recommendation"`
}

type EventRecommendationsResponse struct {
	Events []RecommendedEventPayload `json:"events"`
}

func newRecommendedEventPayload(in entity.RecommendedEvent) RecommendedEventPayload {
	return RecommendedEventPayload{
		Event: EventPayload{
			ID:          in.Event.ID,
			Name:        in.Event.Name,
			Headline:    in.Event.Headline,
			Description: in.Event.Description,
			Tags:        in.Event.Tags,
			Location:    in.Event.Location,
			StartsAt:    in.Event.StartsAt,
		},
		Recommendation: RecommendationPayload{
			IsRecommended: in.Recommendation.IsRecommended,
			MatchScore:    in.Recommendation.MatchScore,
			Reasoning:     in.Recommendation.Reasoning,
		},
	}
}
