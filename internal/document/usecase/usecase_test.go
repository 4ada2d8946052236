package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/storage"
	"github.com/tracksense/goalnet/internal/pkg/validator"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

type staticStringID struct{ value string }

func (s *staticStringID) Generate() string { return s.value }

type memRepo struct {
	mu     sync.Mutex
	docs   map[int64]entity.Document
	chunks map[int64][]entity.DocumentChunk
}

func newMemRepo() *memRepo {
	return &memRepo{
		docs:   make(map[int64]entity.Document),
		chunks: make(map[int64][]entity.DocumentChunk),
	}
}

func (m *memRepo) ListDocuments(_ context.Context, userID int64) ([]entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Document, 0)
	for _, d := range m.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) GetDocument(_ context.Context, userID, id int64) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.docs[id]
	if !ok || d.UserID != userID {
		return nil, goerror.ErrNotFound
	}
	return &d, nil
}

func (m *memRepo) CreateDocument(_ context.Context, in entity.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[in.ID] = in
	return nil
}

func (m *memRepo) DeleteDocument(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.docs[id]
	if !ok || d.UserID != userID {
		return goerror.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *memRepo) ReplaceDocumentChunks(_ context.Context, documentID int64, chunks []entity.DocumentChunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks[documentID] = chunks
	return nil
}

type capturingNotifier struct {
	mu     sync.Mutex
	events []DocumentUploadedEvent
	err    error
}

func (c *capturingNotifier) PublishDocumentUploaded(_ context.Context, msg DocumentUploadedEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, msg)
	return nil
}

type fakeStore struct {
	storage.Storage
	deleted    []string
	deleteErr  error
	presignErr error
}

func (f *fakeStore) PresignPut(_ context.Context, bucket, key string, _ storage.PutOptions, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://store.test/" + bucket + "/" + key + "?sig=put", nil
}

func (f *fakeStore) PresignGet(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://store.test/" + bucket + "/" + key + "?sig=get", nil
}

func (f *fakeStore) DeleteObject(_ context.Context, _, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStore) GetObject(_ context.Context, _, _ string, _ storage.GetOptions) (io.ReadCloser, storage.ObjectInfo, error) {
	return io.NopCloser(strings.NewReader("%PDF-1.4")), storage.ObjectInfo{}, nil
}

type scriptedExtractor struct {
	chunks []entity.DocumentChunk
	err    error
}

func (s *scriptedExtractor) Extract(_ context.Context, _ entity.Document) ([]entity.DocumentChunk, error) {
	return s.chunks, s.err
}

type testConfig struct {
	config.Config
	strings map[string]string
	durs    map[string]time.Duration
}

func (c *testConfig) GetString(key string) string { return c.strings[key] }

func (c *testConfig) GetMinute(key string) time.Duration { return c.durs[key] }

func (c *testConfig) GetSecond(key string) time.Duration { return c.durs[key] }

type fixture struct {
	uc        *Usecase
	repo      *memRepo
	notifier  *capturingNotifier
	store     *fakeStore
	extractor *scriptedExtractor
	clock     *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	repo := newMemRepo()
	notifier := &capturingNotifier{}
	store := &fakeStore{}
	ext := &scriptedExtractor{}
	clk := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}

	cfg := &testConfig{
		strings: map[string]string{"modules.document.bucket": "goalnet-docs"},
		durs: map[string]time.Duration{
			"modules.document.presign_expiry_minutes": 15 * time.Minute,
			"modules.document.extract_timeout_seconds": 30 * time.Second,
		},
	}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: notifier,
		Extractor:     ext,
		Storage:       store,
		Validator:     v10,
		Config:        cfg,
		UID:           &seqID{},
		Keys:          &staticStringID{value: "6863e2f0aa11bb22cc33dd44"},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, notifier: notifier, store: store, extractor: ext, clock: clk}
}

func authedCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

func asGoError(err error, target **goerror.Error) bool {
	return errors.As(err, target)
}
