package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type DocumentCreateInput struct {
	Title       string `validate:"required,min=1,max=200"`
	Type        string `validate:"required,oneof=pdf doc docx ppt pptx image link other"`
	URL         string `validate:"required,max=1000"`
	FileSize    int64  `validate:"omitempty,gte=0"`
	MimeType    string `validate:"omitempty,max=100"`
	Description string `validate:"omitempty,max=2000"`
}

type DocumentCreateOutput struct {
	Document entity.Document
}

// DocumentCreate registers a storage reference for the caller. A pdf
// reference additionally announces itself on messaging so the extraction
// pipeline can pick it up; a failed announce never fails the create.
func (s *Usecase) DocumentCreate(ctx context.Context, in DocumentCreateInput) (*DocumentCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentCreate")
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
	doc := entity.Document{
		ID:          s.uid.Generate(),
		UserID:      userID,
		Title:       in.Title,
		Type:        entity.DocumentTypeFromString(in.Type),
		URL:         in.URL,
		FileSize:    in.FileSize,
		MimeType:    in.MimeType,
		Description: strings.TrimSpace(in.Description),
		UploadedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repoDB.CreateDocument(ctx, doc); err != nil {
		slog.ErrorContext(ctx, "failed to repo create document", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if doc.Type == entity.DocumentTypePDF {
		if err := s.repoMessaging.PublishDocumentUploaded(ctx, DocumentUploadedEvent{
			DocumentID: doc.ID,
			UserID:     doc.UserID,
			Title:      doc.Title,
			URL:        doc.URL,
			MimeType:   doc.MimeType,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish document uploaded", "document_id", doc.ID, "error", err)
		}
	}

	return &DocumentCreateOutput{Document: doc}, nil
}
