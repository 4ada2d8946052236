package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/mail"
	"github.com/tracksense/goalnet/internal/pkg/validator"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// scriptedMail fails the first failures sends and succeeds afterwards.
type scriptedMail struct {
	mu       sync.Mutex
	failures int
	attempts int
	sent     []mail.Message
}

func (m *scriptedMail) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts++
	if m.attempts <= m.failures {
		return errSMTPDown
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errSMTPDown = &smtpError{}

type smtpError struct{}

func (e *smtpError) Error() string { return "smtp: connection refused" }

type testConfig struct {
	config.Config
	ints map[string]int32
}

func (c *testConfig) GetInt32(key string) int32 { return c.ints[key] }

func (c *testConfig) GetSecond(string) time.Duration { return 5 * time.Second }

type fixture struct {
	uc    *Usecase
	mail  *scriptedMail
	clock *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	m := &scriptedMail{}
	clk := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoMail:   m,
		Config:     &testConfig{ints: map[string]int32{"modules.notification.send_retry_backoff_ms": 1}},
		Clock:      clk,
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, mail: m, clock: clk}
}

func (f *fixture) input() ConsumeOTPRequestedInput {
	return ConsumeOTPRequestedInput{
		Email:         "ada@example.com",
		Code:          "042137",
		ExpiresAtUnix: f.clock.Now().Add(10 * time.Minute).Unix(),
	}
}
