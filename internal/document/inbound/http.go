package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/document/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

type uc interface {
	DocumentList(ctx context.Context, in usecase.DocumentListInput) (*usecase.DocumentListOutput, error)
	DocumentCreate(ctx context.Context, in usecase.DocumentCreateInput) (*usecase.DocumentCreateOutput, error)
	DocumentDelete(ctx context.Context, in usecase.DocumentDeleteInput) error
	DocumentUploadURL(ctx context.Context, in usecase.DocumentUploadURLInput) (*usecase.DocumentUploadURLOutput, error)
	DocumentDownloadURL(ctx context.Context, in usecase.DocumentDownloadURLInput) (*usecase.DocumentDownloadURLOutput, error)

	ConsumeDocumentUploaded(ctx context.Context, in usecase.ConsumeDocumentUploadedInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Documents (need authenticated)
	r.GET("/me/documents", end.DocumentList)
	r.POST("/me/documents", end.DocumentCreate)
	r.DELETE("/me/documents/:id", end.DocumentDelete)
	r.POST("/me/documents/upload-url", end.DocumentUploadURL)
	r.GET("/me/documents/:id/download-url", end.DocumentDownloadURL)
}
