package usecase

import (
	"context"
	"log/slog"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type GoalListInput struct {
	Status string `validate:"omitempty,oneof=active completed archived cancelled"`
}

type GoalListOutput struct {
	Goals []entity.Goal
}

// GoalList returns the caller's goals newest first. Without an explicit
// status filter only active goals are returned.
func (s *Usecase) GoalList(ctx context.Context, in GoalListInput) (*GoalListOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	status := entity.GoalStatusFromString(in.Status)
	if !status.Valid() {
		status = entity.GoalStatusActive
	}

	goals, err := s.repoDB.ListGoals(ctx, userID, status)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list goals", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GoalListOutput{Goals: goals}, nil
}
