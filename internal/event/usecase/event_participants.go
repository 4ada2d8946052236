package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type EventParticipantsInput struct {
	EventID int64 `validate:"required"`
}

type EventParticipantsOutput struct {
	Participants []entity.Participant
}

// EventParticipants lists everyone connected to an event with their
// public profile fields.
func (s *Usecase) EventParticipants(ctx context.Context, in EventParticipantsInput) (*EventParticipantsOutput, error) {
	ctx, span := s.startSpan(ctx, "EventParticipants")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := authUserID(ctx); err != nil {
		return nil, err
	}

	if _, err := s.repoDB.GetEvent(ctx, in.EventID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Event not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get event", "event_id", in.EventID, "error", err)
		return nil, goerror.NewServer(err)
	}

	participants, err := s.repoDB.ListEventParticipants(ctx, in.EventID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list event participants", "event_id", in.EventID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventParticipantsOutput{Participants: participants}, nil
}
