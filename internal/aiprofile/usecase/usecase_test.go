package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

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

type memRepo struct {
	mu       sync.Mutex
	profiles map[int64]entity.AIProfile
	sources  map[int64]entity.ProfileSource
	goals    map[int64][]entity.ActiveGoal
	docs     map[int64]int64

	upserts int
}

func newMemRepo() *memRepo {
	return &memRepo{
		profiles: make(map[int64]entity.AIProfile),
		sources:  make(map[int64]entity.ProfileSource),
		goals:    make(map[int64][]entity.ActiveGoal),
		docs:     make(map[int64]int64),
	}
}

func (m *memRepo) GetAIProfileByUserID(_ context.Context, userID int64) (*entity.AIProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) UpsertAIProfile(_ context.Context, in entity.AIProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.profiles[in.UserID]; ok {
		in.ID = existing.ID
		in.CreatedAt = existing.CreatedAt
	}
	m.profiles[in.UserID] = in
	m.upserts++
	return nil
}

func (m *memRepo) GetProfileSource(_ context.Context, userID int64) (*entity.ProfileSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sources[userID]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &s, nil
}

func (m *memRepo) ListActiveGoals(_ context.Context, userID int64, limit int32) ([]entity.ActiveGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	goals := m.goals[userID]
	if int32(len(goals)) > limit {
		goals = goals[:limit]
	}
	out := make([]entity.ActiveGoal, len(goals))
	copy(out, goals)
	return out, nil
}

func (m *memRepo) CountDocuments(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[userID], nil
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

type fixture struct {
	uc    *Usecase
	repo  *memRepo
	idemp *passthroughIdemp
	clock *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newMemRepo()
	idemp := &passthroughIdemp{}
	clk := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoDB:      repo,
		UID:         &seqID{},
		Clock:       clk,
		Idempotency: idemp,
		Instrument:  instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, idemp: idemp, clock: clk}
}

func (f *fixture) seedSource(src entity.ProfileSource) {
	f.repo.sources[src.UserID] = src
}

func authedCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

func asGoError(err error, target **goerror.Error) bool {
	return errors.As(err, target)
}
