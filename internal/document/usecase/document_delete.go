package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type DocumentDeleteInput struct {
	ID int64 `validate:"required"`
}

// DocumentDelete removes one of the caller's document references. The
// stored object, when one exists, is removed best effort.
func (s *Usecase) DocumentDelete(ctx context.Context, in DocumentDeleteInput) error {
	ctx, span := s.startSpan(ctx, "DocumentDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return err
	}

	doc, err := s.repoDB.GetDocument(ctx, userID, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Document not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get document", "user_id", userID, "document_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteDocument(ctx, userID, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Document not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete document", "user_id", userID, "document_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if !doc.IsExternal() {
		if err := s.store.DeleteObject(ctx, s.bucket(), doc.URL); err != nil {
			slog.WarnContext(ctx, "failed to delete stored object", "document_id", in.ID, "key", doc.URL, "error", err)
		}
	}

	return nil
}
