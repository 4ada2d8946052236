package inbound

import (
	"net/http"
	"time"

	"github.com/tracksense/goalnet/internal/document/entity"
)

type DocumentPayload struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	FileSize    int64     `json:"file_size,omitempty"`
	MimeType    string    `json:"mime_type,omitempty"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newDocumentPayload(d entity.Document) DocumentPayload {
	return DocumentPayload{
		ID:          d.ID,
		Title:       d.Title,
		Type:        d.Type.String(),
		URL:         d.URL,
		FileSize:    d.FileSize,
		MimeType:    d.MimeType,
		Description: d.Description,
		UploadedAt:  d.UploadedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type DocumentListResponse struct {
	Documents []DocumentPayload `json:"documents"`
}

type DocumentCreateRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}

type DocumentCreateResponse struct {
	DocumentPayload
}

func (DocumentCreateResponse) Message() string {
	return "Document created successfully."
}

func (DocumentCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type DocumentUploadURLRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
}

type DocumentUploadURLResponse struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

type DocumentDownloadURLResponse struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
