package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/storage"
)

type DocumentUploadURLInput struct {
	Filename string `validate:"required,min=1,max=255"`
	MimeType string `validate:"required,max=100"`
}

type DocumentUploadURLOutput struct {
	URL       string
	Key       string
	ExpiresAt time.Time
}

// DocumentUploadURL hands out a presigned PUT URL for a fresh object key.
// The caller uploads directly to the object store and then registers the
// returned key via DocumentCreate.
func (s *Usecase) DocumentUploadURL(ctx context.Context, in DocumentUploadURLInput) (*DocumentUploadURLOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentUploadURL")
	defer span.End()

	in.Filename = strings.TrimSpace(in.Filename)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	expiry := s.cfg.GetMinute("modules.document.presign_expiry_minutes")
	key := fmt.Sprintf("documents/%d/%s-%s", userID, s.keys.Generate(), path.Base(in.Filename))

	url, err := s.store.PresignPut(ctx, s.bucket(), key, storage.PutOptions{ContentType: in.MimeType}, expiry)
	if err != nil {
		slog.ErrorContext(ctx, "failed to presign upload url", "user_id", userID, "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DocumentUploadURLOutput{
		URL:       url,
		Key:       key,
		ExpiresAt: s.clock.Now().Add(expiry),
	}, nil
}

type DocumentDownloadURLInput struct {
	ID int64 `validate:"required"`
}

type DocumentDownloadURLOutput struct {
	URL       string
	ExpiresAt time.Time
}

// DocumentDownloadURL returns a presigned GET URL for a stored document,
// or the address itself when the document is an external link.
func (s *Usecase) DocumentDownloadURL(ctx context.Context, in DocumentDownloadURLInput) (*DocumentDownloadURLOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentDownloadURL")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.repoDB.GetDocument(ctx, userID, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Document not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get document", "user_id", userID, "document_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if doc.IsExternal() {
		return &DocumentDownloadURLOutput{URL: doc.URL}, nil
	}

	expiry := s.cfg.GetMinute("modules.document.presign_expiry_minutes")

	url, err := s.store.PresignGet(ctx, s.bucket(), doc.URL, expiry)
	if err != nil {
		slog.ErrorContext(ctx, "failed to presign download url", "document_id", in.ID, "key", doc.URL, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DocumentDownloadURLOutput{
		URL:       url,
		ExpiresAt: s.clock.Now().Add(expiry),
	}, nil
}
