package inbound

import (
	"github.com/samber/lo"
	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/document/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for document storage references.
type HTTPEndpoint struct {
	uc uc
}

// DocumentList returns the caller's documents.
func (h *HTTPEndpoint) DocumentList(r *router.Request) (any, error) {
	resp, err := h.uc.DocumentList(r.Context(), usecase.DocumentListInput{})
	if err != nil {
		return nil, err
	}

	return DocumentListResponse{
		Documents: lo.Map(resp.Documents, func(d entity.Document, _ int) DocumentPayload {
			return newDocumentPayload(d)
		}),
	}, nil
}

// DocumentCreate registers a new document reference.
func (h *HTTPEndpoint) DocumentCreate(r *router.Request) (any, error) {
	var req DocumentCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentCreate(r.Context(), usecase.DocumentCreateInput{
		Title:       req.Title,
		Type:        req.Type,
		URL:         req.URL,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return DocumentCreateResponse{DocumentPayload: newDocumentPayload(resp.Document)}, nil
}

// DocumentDelete removes a document reference.
func (h *HTTPEndpoint) DocumentDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DocumentDelete(r.Context(), usecase.DocumentDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// DocumentUploadURL hands out a presigned upload URL.
func (h *HTTPEndpoint) DocumentUploadURL(r *router.Request) (any, error) {
	var req DocumentUploadURLRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentUploadURL(r.Context(), usecase.DocumentUploadURLInput{
		Filename: req.Filename,
		MimeType: req.MimeType,
	})
	if err != nil {
		return nil, err
	}

	return DocumentUploadURLResponse{
		URL:       resp.URL,
		Key:       resp.Key,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

// DocumentDownloadURL returns a presigned download URL, or the external
// address for link documents.
func (h *HTTPEndpoint) DocumentDownloadURL(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentDownloadURL(r.Context(), usecase.DocumentDownloadURLInput{ID: id})
	if err != nil {
		return nil, err
	}

	out := DocumentDownloadURLResponse{URL: resp.URL}
	if !resp.ExpiresAt.IsZero() {
		out.ExpiresAt = &resp.ExpiresAt
	}

	return out, nil
}
