package entity

import (
	"strings"
	"time"
)

// Document is a stored reference to a user file or an external link. For
// uploaded files URL holds the object key inside the configured bucket;
// for links it holds the external address.
type Document struct {
	ID          int64
	UserID      int64
	Title       string
	Type        DocumentType
	URL         string
	FileSize    int64
	MimeType    string
	Description string
	UploadedAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExternal reports whether URL points outside the object store.
func (d Document) IsExternal() bool {
	return strings.HasPrefix(d.URL, "http://") || strings.HasPrefix(d.URL, "https://")
}

// DocumentChunk is one extracted text fragment with its embedding vector,
// produced by the extraction pipeline for pdf documents.
type DocumentChunk struct {
	ID         int64
	DocumentID int64
	ChunkID    string
	Text       string
	Embedding  []float64
	CreatedAt  time.Time
}
