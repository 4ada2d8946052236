package usecase

import (
	"context"
	"strings"
	"testing"
)

func TestConsumeOTPRequestedSendsRenderedEmail(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), f.input())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(f.mail.sent))
	}

	msg := f.mail.sent[0]
	if msg.To[0] != "ada@example.com" {
		t.Fatalf("unexpected recipient: %v", msg.To)
	}
	if msg.Subject != "Your GoalNet verification code" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "042137") {
		t.Fatalf("body does not contain the code")
	}
	if !strings.Contains(msg.HTMLBody, "expires in 10 minutes") {
		t.Fatalf("body does not state the expiry, got:\n%s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "GoalNet") {
		t.Fatalf("body does not carry the brand")
	}
}

func TestConsumeOTPRequestedRetriesTransientFailure(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.mail.failures = 2

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), f.input())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.mail.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", f.mail.attempts)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected the retried email to go out, got %d sent", len(f.mail.sent))
	}
	if f.uc.degraded.Load() {
		t.Fatalf("a recovered send must not mark the provider degraded")
	}
}

func TestConsumeOTPRequestedExhaustedRetriesFallBackToLog(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.mail.failures = 100

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), f.input())

	// Assert
	if err != nil {
		t.Fatalf("delivery failure must not propagate, got %v", err)
	}
	if len(f.mail.sent) != 0 {
		t.Fatalf("no email should have gone out, got %d", len(f.mail.sent))
	}
	if !f.uc.degraded.Load() {
		t.Fatalf("exhausted retries must mark the provider degraded")
	}
	if f.mail.attempts != 4 {
		t.Fatalf("expected initial attempt plus 3 retries, got %d", f.mail.attempts)
	}
}

func TestConsumeOTPRequestedDegradedProbesOnce(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.uc.degraded.Store(true)
	f.mail.failures = 100

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), f.input())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.mail.attempts != 1 {
		t.Fatalf("degraded mode must probe with a single attempt, got %d", f.mail.attempts)
	}
	if !f.uc.degraded.Load() {
		t.Fatalf("a failed probe must keep the degraded flag")
	}
}

func TestConsumeOTPRequestedRecoveryClearsDegradedFlag(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.uc.degraded.Store(true)

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), f.input())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("expected the probe send to deliver, got %d", len(f.mail.sent))
	}
	if f.uc.degraded.Load() {
		t.Fatalf("a successful send must clear the degraded flag")
	}
}

func TestConsumeOTPRequestedInvalidPayloadIsDropped(t *testing.T) {
	// Arrange
	f := newFixture(t)
	in := f.input()
	in.Email = "not-an-email"

	// Act
	err := f.uc.ConsumeOTPRequested(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("invalid payload must be dropped, not redelivered: %v", err)
	}
	if f.mail.attempts != 0 {
		t.Fatalf("invalid payload must not reach the provider, got %d attempts", f.mail.attempts)
	}
}
