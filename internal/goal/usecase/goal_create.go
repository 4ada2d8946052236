package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type GoalCreateInput struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"omitempty,max=2000"`
	TargetDate  *time.Time
	Milestones  []entity.Milestone
	Tags        []string
}

type GoalCreateOutput struct {
	Goal entity.Goal
}

// GoalCreate stores a new goal for the caller. New goals always start
// active with zero progress.
func (s *Usecase) GoalCreate(ctx context.Context, in GoalCreateInput) (*GoalCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalCreate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	g := entity.Goal{
		ID:          s.uid.Generate(),
		UserID:      userID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Status:      entity.GoalStatusActive,
		Progress:    0,
		TargetDate:  in.TargetDate,
		Milestones:  in.Milestones,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if g.Milestones == nil {
		g.Milestones = []entity.Milestone{}
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}

	if err := s.repoDB.CreateGoal(ctx, g); err != nil {
		slog.ErrorContext(ctx, "failed to repo create goal", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GoalCreateOutput{Goal: g}, nil
}
