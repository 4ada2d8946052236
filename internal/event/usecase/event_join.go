package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
)

type EventJoinInput struct {
	EventID int64 `validate:"required"`
}

type EventJoinOutput struct {
	Connection entity.EventConnection
}

// EventJoin connects the caller to an event. The redis guard collapses
// double submissions before they race on the unique constraint; the
// constraint itself stays the source of truth.
func (s *Usecase) EventJoin(ctx context.Context, in EventJoinInput) (*EventJoinOutput, error) {
	ctx, span := s.startSpan(ctx, "EventJoin")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	ev, err := s.repoDB.GetEvent(ctx, in.EventID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Event not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get event", "event_id", in.EventID, "error", err)
		return nil, goerror.NewServer(err)
	}

	conn := entity.EventConnection{
		ID:            s.uid.Generate(),
		EventID:       ev.ID,
		OrganizerID:   ev.CreatedBy,
		ParticipantID: userID,
		JoinedAt:      s.clock.Now(),
	}

	key := fmt.Sprintf("event_join:%d:%d", userID, ev.ID)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		return s.repoDB.CreateEventConnection(ctx, conn)
	})
	if errors.Is(err, goerror.ErrConflict) ||
		errors.Is(err, idempotency.ErrAlreadyInProgress) ||
		errors.Is(err, idempotency.ErrAlreadyCompleted) {
		return nil, goerror.NewBusiness("User already joined this event", goerror.CodeConflict)
	}
	// A failed prior attempt is retryable once its tracker entry expires.
	if errors.Is(err, idempotency.ErrAlreadyFailed) {
		return nil, goerror.NewBusiness("Previous join attempt failed, please retry shortly", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create event connection", "event_id", ev.ID, "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventJoinOutput{Connection: conn}, nil
}
