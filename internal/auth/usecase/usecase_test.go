package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/hash"
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
	mu sync.Mutex
	n  int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

type staticStringID struct{}

func (staticStringID) Generate() string { return "test-jti" }

// memRepo is an in-memory repoDB honoring the same read/write semantics as
// the Postgres implementation.
type memRepo struct {
	mu    sync.Mutex
	clock *fixedClock
	otps  []entity.OTPRequest
	users map[string]entity.User

	countErr error
}

func newMemRepo(clk *fixedClock) *memRepo {
	return &memRepo{clock: clk, users: map[string]entity.User{}}
}

func (m *memRepo) CountOTPRequestsSince(_ context.Context, email string, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.countErr != nil {
		return 0, m.countErr
	}

	var count int64
	for _, o := range m.otps {
		if o.Email == email && o.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) CreateOTPRequest(_ context.Context, in entity.OTPRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	in.CreatedAt = m.clock.Now()
	m.otps = append(m.otps, in)
	return nil
}

func (m *memRepo) GetLatestValidOTPRequest(_ context.Context, email string, now time.Time) (*entity.OTPRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	valid := make([]entity.OTPRequest, 0)
	for _, o := range m.otps {
		if o.Email == email && !o.Consumed && o.ExpiresAt.After(now) {
			valid = append(valid, o)
		}
	}
	if len(valid) == 0 {
		return nil, goerror.ErrNotFound
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].CreatedAt.After(valid[j].CreatedAt) })
	rec := valid[0]
	return &rec, nil
}

func (m *memRepo) ConsumeOTPRequest(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.otps {
		if m.otps[i].ID == id && !m.otps[i].Consumed {
			m.otps[i].Consumed = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &u, nil
}

func (m *memRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (m *memRepo) CreateUser(_ context.Context, user entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return goerror.ErrConflict
	}
	m.users[user.Email] = user
	return nil
}

func (m *memRepo) UpdateUserProfile(_ context.Context, in entity.UpdateUserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for email, u := range m.users {
		if u.ID == in.ID {
			u.FullName = in.FullName
			u.Role = in.Role
			u.PrimaryGoal = in.PrimaryGoal
			m.users[email] = u
			return nil
		}
	}
	return goerror.ErrNotFound
}

// capturingNotifier records published events like the test notifier stub an
// end-to-end flow reads the plaintext code from.
type capturingNotifier struct {
	mu     sync.Mutex
	events []OTPRequestedEvent
	err    error
}

func (c *capturingNotifier) PublishOTPRequested(_ context.Context, msg OTPRequestedEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, msg)
	return nil
}

func (c *capturingNotifier) lastCode(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) == 0 {
		t.Fatalf("no otp event was published")
	}
	return c.events[len(c.events)-1].Code
}

type testConfig struct {
	config.Config
	strings map[string]string
	ints    map[string]int
	durs    map[string]time.Duration
}

func (c testConfig) GetString(key string) string { return c.strings[key] }
func (c testConfig) GetInt(key string) int       { return c.ints[key] }
func (c testConfig) GetInt64(key string) int64   { return int64(c.ints[key]) }
func (c testConfig) GetMinute(key string) time.Duration {
	return c.durs[key]
}

type fixture struct {
	uc       *Usecase
	repo     *memRepo
	notifier *capturingNotifier
	clock    *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	repo := newMemRepo(clk)
	notifier := &capturingNotifier{}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	secret := make([]byte, 64)
	for i := range secret {
		secret[i] = byte(i + 1)
	}
	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:     secret,
		Issuer:     "goalnet-test",
		Audiences:  []string{"goalnet"},
		TTLMinutes: 30 * time.Minute,
		Clock:      clk,
		UUID:       staticStringID{},
	})
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	cfg := testConfig{
		ints: map[string]int{
			"modules.auth.otp_code_length":        6,
			"modules.auth.rate_limit_max_requests": 5,
		},
		durs: map[string]time.Duration{
			"modules.auth.otp_ttl_minutes":           10 * time.Minute,
			"modules.auth.rate_limit_window_minutes": 60 * time.Minute,
		},
	}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: notifier,
		Validator:     v10,
		Config:        cfg,
		HMAC:          hash.NewHMACSHA256("test-otp-secret"),
		UID:           &seqID{},
		Clock:         clk,
		JWT:           tokener,
		Instrument:    instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, notifier: notifier, clock: clk}
}

func assertInvalidOrExpired(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected invalid or expired error, got nil")
	}

	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected goerror.Error, got %T: %v", err, err)
	}
	if gerr.Msg() != "Invalid or expired code" {
		t.Fatalf("expected the single ambiguous message, got %q", gerr.Msg())
	}
}
