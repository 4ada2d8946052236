package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
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

type joinKey struct {
	eventID       int64
	participantID int64
}

type memRepo struct {
	mu       sync.Mutex
	events   map[int64]entity.Event
	conns    map[joinKey]entity.EventConnection
	profiles map[int64]entity.UserProfile
}

func newMemRepo() *memRepo {
	return &memRepo{
		events:   make(map[int64]entity.Event),
		conns:    make(map[joinKey]entity.EventConnection),
		profiles: make(map[int64]entity.UserProfile),
	}
}

func (m *memRepo) GetEvent(_ context.Context, id int64) (*entity.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ev, ok := m.events[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &ev, nil
}

func (m *memRepo) ListUpcomingEvents(_ context.Context, limit int32) ([]entity.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Event, 0)
	for _, ev := range m.events {
		out = append(out, ev)
		if int32(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (m *memRepo) CreateEventConnection(_ context.Context, in entity.EventConnection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := joinKey{eventID: in.EventID, participantID: in.ParticipantID}
	if _, ok := m.conns[key]; ok {
		return goerror.ErrConflict
	}
	m.conns[key] = in
	return nil
}

func (m *memRepo) ListEventParticipants(_ context.Context, eventID int64) ([]entity.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Participant, 0)
	for key, conn := range m.conns {
		if key.eventID != eventID {
			continue
		}
		p := entity.Participant{
			ConnectionID: conn.ID,
			UserID:       conn.ParticipantID,
			JoinedAt:     conn.JoinedAt,
		}
		if profile, ok := m.profiles[conn.ParticipantID]; ok {
			p.FullName = profile.FullName
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepo) GetUserProfile(_ context.Context, userID int64) (*entity.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &p, nil
}

// passthroughIdemp runs the guarded function directly, optionally
// simulating a duplicate submission.
type passthroughIdemp struct {
	execErr error
}

func (p *passthroughIdemp) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (p *passthroughIdemp) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (p *passthroughIdemp) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (p *passthroughIdemp) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if p.execErr != nil {
		return p.execErr
	}
	return fn(ctx)
}

type scriptedRecommender struct {
	mu       sync.Mutex
	verdicts map[int64]entity.Recommendation
	errs     map[int64]error
}

func (s *scriptedRecommender) AnalyzeEventMatch(_ context.Context, _ entity.UserProfile, ev entity.Event) (entity.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.errs[ev.ID]; ok {
		return entity.Recommendation{}, err
	}
	return s.verdicts[ev.ID], nil
}

type testConfig struct {
	config.Config
	ints map[string]int32
}

func (c *testConfig) GetInt32(key string) int32 { return c.ints[key] }

type fixture struct {
	uc          *Usecase
	repo        *memRepo
	idemp       *passthroughIdemp
	recommender *scriptedRecommender
	clock       *fixedClock
	cfg         *testConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	repo := newMemRepo()
	idemp := &passthroughIdemp{}
	rec := &scriptedRecommender{
		verdicts: make(map[int64]entity.Recommendation),
		errs:     make(map[int64]error),
	}
	clk := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cfg := &testConfig{ints: map[string]int32{}}

	uc := New(Dependency{
		RepoDB:      repo,
		Recommender: rec,
		Validator:   v10,
		Config:      cfg,
		UID:         &seqID{},
		Clock:       clk,
		Idempotency: idemp,
		Instrument:  instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, idemp: idemp, recommender: rec, clock: clk, cfg: cfg}
}

func (f *fixture) seedEvent(id, createdBy int64, name string) entity.Event {
	ev := entity.Event{
		ID:        id,
		Name:      name,
		Location:  "Berlin",
		StartsAt:  f.clock.Now().Add(48 * time.Hour),
		CreatedBy: createdBy,
		CreatedAt: f.clock.Now(),
	}
	f.repo.events[id] = ev
	return ev
}

func (f *fixture) seedProfile(userID int64, fullName string) {
	f.repo.profiles[userID] = entity.UserProfile{ID: userID, FullName: fullName, Role: "founder"}
}

func authedCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

func asGoError(err error, target **goerror.Error) bool {
	return errors.As(err, target)
}
