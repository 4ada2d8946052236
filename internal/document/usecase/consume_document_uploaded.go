package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type ConsumeDocumentUploadedInput struct {
	DocumentID int64
	UserID     int64
	Title      string
	URL        string
	MimeType   string
}

// ConsumeDocumentUploaded runs the extraction pipeline for an uploaded
// document and stores the resulting chunks. Extraction problems are
// logged and swallowed so the message is never redelivered for them.
func (s *Usecase) ConsumeDocumentUploaded(ctx context.Context, in ConsumeDocumentUploadedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeDocumentUploaded")
	defer span.End()

	doc, err := s.repoDB.GetDocument(ctx, in.UserID, in.DocumentID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "document vanished before extraction", "document_id", in.DocumentID)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get document", "document_id", in.DocumentID, "error", err)
		return err
	}

	timeout := s.cfg.GetSecond("modules.document.extract_timeout_seconds")
	extractCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chunks, err := s.extractor.Extract(extractCtx, *doc)
	if err != nil {
		slog.WarnContext(ctx, "document extraction failed", "document_id", doc.ID, "error", err)
		return nil
	}

	for i := range chunks {
		chunks[i].ID = s.uid.Generate()
		chunks[i].DocumentID = doc.ID
	}

	if err := s.repoDB.ReplaceDocumentChunks(ctx, doc.ID, chunks); err != nil {
		slog.ErrorContext(ctx, "failed to repo replace document chunks", "document_id", doc.ID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "document extraction stored", "document_id", doc.ID, "chunks", len(chunks))

	return nil
}
