package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

func TestRequestOTPStoresHashNotPlaintext(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "user@x.com"})

	// Assert
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	code := f.notifier.lastCode(t)
	if len(code) != 6 {
		t.Fatalf("expected 6 digit code, got %q", code)
	}

	if len(f.repo.otps) != 1 {
		t.Fatalf("expected one stored record, got %d", len(f.repo.otps))
	}
	rec := f.repo.otps[0]
	if rec.CodeHash == code {
		t.Fatalf("stored hash equals the plaintext code")
	}
	if rec.Email != "user@x.com" {
		t.Fatalf("expected canonical email, got %q", rec.Email)
	}
	if !rec.ExpiresAt.Equal(f.clock.Now().Add(10 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", rec.ExpiresAt)
	}
}

func TestRequestOTPCanonicalizesEmail(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "  User@X.com "})

	// Assert
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}
	if f.repo.otps[0].Email != "user@x.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", f.repo.otps[0].Email)
	}
}

func TestRequestOTPInvalidEmail(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "not-an-email"})

	// Assert
	if err == nil {
		t.Fatalf("expected validation error")
	}
	gerr, ok := err.(*goerror.Error)
	if !ok || gerr.Type() != goerror.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("invalid email must serve 400, got %d", gerr.StatusCode())
	}
	if len(f.repo.otps) != 0 {
		t.Fatalf("no record should be stored for invalid input")
	}
}

func TestRequestOTPRateLimited(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	for range 5 {
		if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
			t.Fatalf("request otp within limit: %v", err)
		}
		f.clock.Advance(time.Minute)
	}

	// Act
	err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"})

	// Assert
	gerr, ok := err.(*goerror.Error)
	if !ok || gerr.Code() != goerror.CodeTooManyRequest {
		t.Fatalf("expected rate limited error, got %v", err)
	}

	// After the trailing window elapses issuance succeeds again.
	f.clock.Advance(61 * time.Minute)
	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp after window: %v", err)
	}
}

func TestRequestOTPCountErrorFailsOpen(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.countErr = errors.New("store briefly unavailable")

	// Act
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "user@x.com"})

	// Assert
	if err != nil {
		t.Fatalf("count failure must not block issuance: %v", err)
	}
	if len(f.repo.otps) != 1 {
		t.Fatalf("expected record stored despite count failure")
	}
}

func TestRequestOTPNotifyFailureStillSucceeds(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.notifier.err = errors.New("broker down")

	// Act
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "user@x.com"})

	// Assert
	if err != nil {
		t.Fatalf("publish failure must not fail the request: %v", err)
	}
	if len(f.repo.otps) != 1 {
		t.Fatalf("record must be persisted before dispatch")
	}
}
