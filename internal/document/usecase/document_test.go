package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

func mustCreate(t *testing.T, f *fixture, ctx context.Context, in DocumentCreateInput) entity.Document {
	t.Helper()

	out, err := f.uc.DocumentCreate(ctx, in)
	if err != nil {
		t.Fatalf("DocumentCreate error: %v", err)
	}
	return out.Document
}

func TestDocumentCreatePDFAnnouncesUpload(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)

	// Act
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title:    "Pitch deck",
		Type:     "pdf",
		URL:      "documents/7/abc-deck.pdf",
		MimeType: "application/pdf",
	})

	// Assert
	if len(f.notifier.events) != 1 {
		t.Fatalf("got %d published events, want 1", len(f.notifier.events))
	}
	if f.notifier.events[0].DocumentID != doc.ID {
		t.Fatalf("event document id = %d, want %d", f.notifier.events[0].DocumentID, doc.ID)
	}
}

func TestDocumentCreateLinkDoesNotAnnounce(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	mustCreate(t, f, authedCtx(7), DocumentCreateInput{
		Title: "Company site",
		Type:  "link",
		URL:   "https://example.com",
	})

	// Assert
	if len(f.notifier.events) != 0 {
		t.Fatalf("link document must not publish, got %d events", len(f.notifier.events))
	}
}

func TestDocumentCreatePublishFailureStillSucceeds(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.notifier.err = context.DeadlineExceeded

	// Act
	doc := mustCreate(t, f, authedCtx(7), DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})

	// Assert
	if _, err := f.repo.GetDocument(context.Background(), 7, doc.ID); err != nil {
		t.Fatalf("document missing after publish failure: %v", err)
	}
}

func TestDocumentCreateRejectsUnknownType(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.DocumentCreate(authedCtx(7), DocumentCreateInput{
		Title: "Something",
		Type:  "spreadsheet",
		URL:   "documents/7/abc.xlsx",
	})

	// Assert
	if err == nil {
		t.Fatal("expected validation error for unknown type")
	}
}

func TestDocumentUploadURLScopesKeyToUser(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	out, err := f.uc.DocumentUploadURL(authedCtx(7), DocumentUploadURLInput{
		Filename: "deck.pdf",
		MimeType: "application/pdf",
	})

	// Assert
	if err != nil {
		t.Fatalf("DocumentUploadURL error: %v", err)
	}
	if !strings.HasPrefix(out.Key, "documents/7/") {
		t.Fatalf("key = %q, want documents/7/ prefix", out.Key)
	}
	if !strings.HasSuffix(out.Key, "-deck.pdf") {
		t.Fatalf("key = %q, want filename suffix", out.Key)
	}
	if want := f.clock.Now().Add(15 * time.Minute); !out.ExpiresAt.Equal(want) {
		t.Fatalf("expires at = %v, want %v", out.ExpiresAt, want)
	}
}

func TestDocumentDownloadURLPresignsStoredObject(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})

	// Act
	out, err := f.uc.DocumentDownloadURL(ctx, DocumentDownloadURLInput{ID: doc.ID})

	// Assert
	if err != nil {
		t.Fatalf("DocumentDownloadURL error: %v", err)
	}
	if !strings.Contains(out.URL, "sig=get") {
		t.Fatalf("url = %q, want presigned", out.URL)
	}
}

func TestDocumentDownloadURLReturnsExternalLinkAsIs(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Site",
		Type:  "link",
		URL:   "https://example.com/page",
	})

	// Act
	out, err := f.uc.DocumentDownloadURL(ctx, DocumentDownloadURLInput{ID: doc.ID})

	// Assert
	if err != nil {
		t.Fatalf("DocumentDownloadURL error: %v", err)
	}
	if out.URL != "https://example.com/page" {
		t.Fatalf("url = %q, want the external link unchanged", out.URL)
	}
	if !out.ExpiresAt.IsZero() {
		t.Fatalf("external link must not carry an expiry, got %v", out.ExpiresAt)
	}
}

func TestDocumentDownloadURLOtherOwnerIsNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)
	doc := mustCreate(t, f, authedCtx(7), DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})

	// Act
	_, err := f.uc.DocumentDownloadURL(authedCtx(8), DocumentDownloadURLInput{ID: doc.ID})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDocumentDeleteRemovesStoredObject(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})

	// Act
	err := f.uc.DocumentDelete(ctx, DocumentDeleteInput{ID: doc.ID})

	// Assert
	if err != nil {
		t.Fatalf("DocumentDelete error: %v", err)
	}
	if len(f.store.deleted) != 1 || f.store.deleted[0] != "documents/7/abc-deck.pdf" {
		t.Fatalf("stored object not deleted: %v", f.store.deleted)
	}
}

func TestDocumentDeleteObjectFailureStillSucceeds(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})
	f.store.deleteErr = context.DeadlineExceeded

	// Act
	err := f.uc.DocumentDelete(ctx, DocumentDeleteInput{ID: doc.ID})

	// Assert
	if err != nil {
		t.Fatalf("DocumentDelete must swallow object-store failures, got %v", err)
	}
	if _, err := f.repo.GetDocument(ctx, 7, doc.ID); err == nil {
		t.Fatal("document row still present after delete")
	}
}

func TestConsumeDocumentUploadedStoresChunks(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})
	f.extractor.chunks = []entity.DocumentChunk{
		{ChunkID: "c1", Text: "intro", Embedding: []float64{0.1, 0.2}},
		{ChunkID: "c2", Text: "traction", Embedding: []float64{0.3, 0.4}},
	}

	// Act
	err := f.uc.ConsumeDocumentUploaded(context.Background(), ConsumeDocumentUploadedInput{
		DocumentID: doc.ID,
		UserID:     7,
		URL:        doc.URL,
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeDocumentUploaded error: %v", err)
	}
	stored := f.repo.chunks[doc.ID]
	if len(stored) != 2 {
		t.Fatalf("got %d stored chunks, want 2", len(stored))
	}
	for _, c := range stored {
		if c.ID == 0 || c.DocumentID != doc.ID {
			t.Fatalf("chunk not stamped with ids: %+v", c)
		}
	}
}

func TestConsumeDocumentUploadedExtractionFailureIsSwallowed(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	doc := mustCreate(t, f, ctx, DocumentCreateInput{
		Title: "Deck",
		Type:  "pdf",
		URL:   "documents/7/abc-deck.pdf",
	})
	f.extractor.err = context.DeadlineExceeded

	// Act
	err := f.uc.ConsumeDocumentUploaded(context.Background(), ConsumeDocumentUploadedInput{
		DocumentID: doc.ID,
		UserID:     7,
		URL:        doc.URL,
	})

	// Assert
	if err != nil {
		t.Fatalf("extraction failures must not be surfaced, got %v", err)
	}
	if len(f.repo.chunks[doc.ID]) != 0 {
		t.Fatalf("no chunks expected after failed extraction")
	}
}

func TestConsumeDocumentUploadedUnknownDocumentIsDropped(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.ConsumeDocumentUploaded(context.Background(), ConsumeDocumentUploadedInput{
		DocumentID: 999,
		UserID:     7,
	})

	// Assert
	if err != nil {
		t.Fatalf("unknown document must be dropped silently, got %v", err)
	}
}
