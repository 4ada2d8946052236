package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type AIProfileGetInput struct{}

type AIProfileGetOutput struct {
	Profile entity.AIProfile
}

// AIProfileGet returns the stored profile card, generating and storing
// one on first access.
func (s *Usecase) AIProfileGet(ctx context.Context, _ AIProfileGetInput) (*AIProfileGetOutput, error) {
	ctx, span := s.startSpan(ctx, "AIProfileGet")
	defer span.End()

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repoDB.GetAIProfileByUserID(ctx, userID)
	if err == nil {
		return &AIProfileGetOutput{Profile: *profile}, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get ai profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
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

	if err := s.repoDB.UpsertAIProfile(ctx, fresh); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert ai profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AIProfileGetOutput{Profile: fresh}, nil
}
