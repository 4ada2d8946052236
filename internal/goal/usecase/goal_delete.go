package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type GoalDeleteInput struct {
	ID      int64 `validate:"required"`
	Archive bool
}

// GoalDelete removes one of the caller's goals. With Archive the goal is
// kept and flipped to archived instead of being deleted.
func (s *Usecase) GoalDelete(ctx context.Context, in GoalDeleteInput) error {
	ctx, span := s.startSpan(ctx, "GoalDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return err
	}

	if in.Archive {
		archived := entity.GoalStatusArchived
		err = s.repoDB.UpdateGoal(ctx, entity.UpdateGoal{
			ID:     in.ID,
			UserID: userID,
			Status: &archived,
		})
	} else {
		err = s.repoDB.DeleteGoal(ctx, userID, in.ID)
	}

	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Goal not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete goal", "user_id", userID, "goal_id", in.ID, "archive", in.Archive, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
