package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/validator"
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
	mu    sync.Mutex
	goals map[int64]entity.Goal
	err   error
}

func newMemRepo() *memRepo {
	return &memRepo{goals: make(map[int64]entity.Goal)}
}

func (m *memRepo) ListGoals(_ context.Context, userID int64, status entity.GoalStatus) ([]entity.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]entity.Goal, 0)
	for _, g := range m.goals {
		if g.UserID == userID && g.Status == status {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) GetGoal(_ context.Context, userID, id int64) (*entity.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return nil, goerror.ErrNotFound
	}
	return &g, nil
}

func (m *memRepo) CreateGoal(_ context.Context, in entity.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	m.goals[in.ID] = in
	return nil
}

func (m *memRepo) UpdateGoal(_ context.Context, in entity.UpdateGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	g, ok := m.goals[in.ID]
	if !ok || g.UserID != in.UserID {
		return goerror.ErrNotFound
	}

	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.Status != nil {
		g.Status = *in.Status
	}
	if in.Progress != nil {
		g.Progress = *in.Progress
	}
	if in.TargetDate != nil {
		g.TargetDate = in.TargetDate
	}
	if in.Milestones != nil {
		g.Milestones = *in.Milestones
	}
	if in.Tags != nil {
		g.Tags = *in.Tags
	}

	m.goals[in.ID] = g
	return nil
}

func (m *memRepo) DeleteGoal(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return goerror.ErrNotFound
	}
	delete(m.goals, id)
	return nil
}

type fixture struct {
	uc    *Usecase
	repo  *memRepo
	clock *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newMemRepo()
	clk := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		UID:        &seqID{},
		Clock:      clk,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, clock: clk}
}

func authedCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

func asGoError(err error, target **goerror.Error) bool {
	return errors.As(err, target)
}
