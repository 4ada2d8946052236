package inbound

import (
	"github.com/samber/lo"
	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/event/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for event participation and
// recommendations.
type HTTPEndpoint struct {
	uc uc
}

// EventJoin connects the caller to an event.
func (h *HTTPEndpoint) EventJoin(r *router.Request) (any, error) {
	var req EventJoinRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.EventJoin(r.Context(), usecase.EventJoinInput{EventID: req.EventID})
	if err != nil {
		return nil, err
	}

	return EventJoinResponse{
		Connection: EventConnectionPayload{
			ID:            resp.Connection.ID,
			EventID:       resp.Connection.EventID,
			OrganizerID:   resp.Connection.OrganizerID,
			ParticipantID: resp.Connection.ParticipantID,
			JoinedAt:      resp.Connection.JoinedAt,
		},
	}, nil
}

// EventParticipants lists everyone connected to an event.
func (h *HTTPEndpoint) EventParticipants(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.EventParticipants(r.Context(), usecase.EventParticipantsInput{EventID: id})
	if err != nil {
		return nil, err
	}

	return EventParticipantsResponse{
		Participants: lo.Map(resp.Participants, func(p entity.Participant, _ int) ParticipantPayload {
			return ParticipantPayload{
				ConnectionID: p.ConnectionID,
				UserID:       p.UserID,
				FullName:     p.FullName,
				Email:        p.Email,
				PhotoURL:     p.PhotoURL,
				JoinedAt:     p.JoinedAt,
			}
		}),
	}, nil
}

// EventRecommendations returns the scored, filtered feed of upcoming
// events for the caller.
func (h *HTTPEndpoint) EventRecommendations(r *router.Request) (any, error) {
	resp, err := h.uc.EventRecommendations(r.Context(), usecase.EventRecommendationsInput{})
	if err != nil {
		return nil, err
	}

	return EventRecommendationsResponse{
		Events: lo.Map(resp.Events, func(e entity.RecommendedEvent, _ int) RecommendedEventPayload {
			return newRecommendedEventPayload(e)
		}),
	}, nil
}
