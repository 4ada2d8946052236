package usecase

import (
	"context"
	"log/slog"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type DocumentListInput struct{}

type DocumentListOutput struct {
	Documents []entity.Document
}

// DocumentList returns the caller's documents newest first.
func (s *Usecase) DocumentList(ctx context.Context, _ DocumentListInput) (*DocumentListOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentList")
	defer span.End()

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.repoDB.ListDocuments(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list documents", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DocumentListOutput{Documents: docs}, nil
}
