package usecase

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

func TestVerifyOTPHappyPathConsumesOnce(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
	code := f.notifier.lastCode(t)

	// Act
	out, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: code})

	// Assert
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("expected a session token")
	}
	if !out.IsNewUser {
		t.Fatalf("expected new identity on first verification")
	}
	if out.User.Email != "user@x.com" {
		t.Fatalf("unexpected user email %q", out.User.Email)
	}

	// Replay of the same code fails with the ambiguous error.
	_, err = f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: code})
	assertInvalidOrExpired(t, err)
}

func TestVerifyOTPSecondCycleIsNotNewIdentity(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
	out, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: f.notifier.lastCode(t)})
	if err != nil || !out.IsNewUser {
		t.Fatalf("first cycle: err=%v isNew=%v", err, out != nil && out.IsNewUser)
	}

	// Act
	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("second request otp: %v", err)
	}
	out, err = f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: f.notifier.lastCode(t)})

	// Assert
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if out.IsNewUser {
		t.Fatalf("identity must be reused on subsequent cycles")
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
	code := f.notifier.lastCode(t)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	// Act
	_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: wrong})

	// Assert
	assertInvalidOrExpired(t, err)

	// The record is still redeemable with the right code.
	if _, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: code}); err != nil {
		t.Fatalf("verify with correct code after a miss: %v", err)
	}
}

func TestVerifyOTPUnknownIdentifier(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "nobody@x.com", Code: "123456"})

	// Assert
	assertInvalidOrExpired(t, err)
}

func TestVerifyOTPMissingFields(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "user@x.com"})

	// Assert
	gerr, ok := err.(*goerror.Error)
	if !ok || gerr.Type() != goerror.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("missing code must serve 400, got %d", gerr.StatusCode())
	}
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
	code := f.notifier.lastCode(t)

	f.clock.Advance(11 * time.Minute)

	// Act
	_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: code})

	// Assert
	assertInvalidOrExpired(t, err)
}

func TestVerifyOTPCaseNormalization(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}

	// Act
	out, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "User@X.com", Code: f.notifier.lastCode(t)})

	// Assert
	if err != nil {
		t.Fatalf("verify with cased identifier: %v", err)
	}
	if out.User.Email != "user@x.com" {
		t.Fatalf("identity must use the canonical key, got %q", out.User.Email)
	}
}

func TestVerifyOTPNewestValidRecordWins(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("first request: %v", err)
	}
	firstCode := f.notifier.lastCode(t)

	f.clock.Advance(time.Minute)
	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("second request: %v", err)
	}
	secondCode := f.notifier.lastCode(t)
	if firstCode == secondCode {
		t.Skip("generated codes collided")
	}

	// Act: the verifier matches against the newest record, so the first code
	// misses even though its record is still unexpired.
	_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: firstCode})

	// Assert
	assertInvalidOrExpired(t, err)

	if _, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: secondCode}); err != nil {
		t.Fatalf("newest code must verify: %v", err)
	}
}

func TestVerifyOTPConcurrentSubmissionsSingleWinner(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestOTP(ctx, RequestOTPInput{Email: "user@x.com"}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
	code := f.notifier.lastCode(t)

	// Act
	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Email: "user@x.com", Code: code})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	// Assert
	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assertInvalidOrExpired(t, err)
			failed++
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one winner, got %d", succeeded)
	}
	if failed != attempts-1 {
		t.Fatalf("expected %d losers, got %d", attempts-1, failed)
	}
}
