package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
)

type AIProfileRegenerateInput struct{}

type AIProfileRegenerateOutput struct {
	Profile entity.AIProfile
}

// AIProfileRegenerate recomputes the profile card from current data and
// stores it. A second regenerate racing the first is rejected instead of
// doing the work twice.
func (s *Usecase) AIProfileRegenerate(ctx context.Context, _ AIProfileRegenerateInput) (*AIProfileRegenerateOutput, error) {
	ctx, span := s.startSpan(ctx, "AIProfileRegenerate")
	defer span.End()

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.compose(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fresh := entity.AIProfile{
		ID:            s.uid.Generate(),
		UserID:        userID,
		Summary:       content.Summary,
		CurrentFocus:  content.CurrentFocus,
		Strengths:     content.Strengths,
		Highlights:    content.Highlights,
		LastGenerated: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	key := fmt.Sprintf("aiprofile_regen:%d", userID)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		return s.repoDB.UpsertAIProfile(ctx, fresh)
	})
	if errors.Is(err, idempotency.ErrAlreadyInProgress) ||
		errors.Is(err, idempotency.ErrAlreadyCompleted) ||
		errors.Is(err, idempotency.ErrAlreadyFailed) {
		return nil, goerror.NewBusiness("Profile regeneration already in progress, please retry shortly", goerror.CodeTooManyRequest)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert ai profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out, err := s.repoDB.GetAIProfileByUserID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get ai profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AIProfileRegenerateOutput{Profile: *out}, nil
}
