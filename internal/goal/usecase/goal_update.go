package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type GoalUpdateInput struct {
	ID          int64   `validate:"required"`
	Title       *string `validate:"omitempty,min=1,max=200"`
	Description *string `validate:"omitempty,max=2000"`
	Status      *string `validate:"omitempty,oneof=active completed archived cancelled"`
	Progress    *int32  `validate:"omitempty,gte=0,lte=100"`
	TargetDate  *time.Time
	Milestones  *[]entity.Milestone
	Tags        *[]string
}

type GoalUpdateOutput struct {
	Goal entity.Goal
}

// GoalUpdate applies the provided fields to one of the caller's goals.
// A goal owned by someone else is indistinguishable from a missing one.
func (s *Usecase) GoalUpdate(ctx context.Context, in GoalUpdateInput) (*GoalUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	upd := entity.UpdateGoal{
		ID:          in.ID,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Progress:    in.Progress,
		TargetDate:  in.TargetDate,
		Milestones:  in.Milestones,
		Tags:        in.Tags,
	}
	if in.Status != nil {
		status := entity.GoalStatusFromString(*in.Status)
		upd.Status = &status
	}

	if err := s.repoDB.UpdateGoal(ctx, upd); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Goal not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update goal", "user_id", userID, "goal_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	g, err := s.repoDB.GetGoal(ctx, userID, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Goal not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get goal", "user_id", userID, "goal_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GoalUpdateOutput{Goal: *g}, nil
}
