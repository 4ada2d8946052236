package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type RequestOTPInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) RequestOTP(ctx context.Context, in RequestOTPInput) error {
	ctx, span := s.startSpan(ctx, "RequestOTP")
	defer span.End()

	in.Email = canonicalEmail(in.Email)

	// The public contract documents 400 for an invalid or missing email.
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidFormatErr(err)
	}

	if err := s.allowRequest(ctx, in.Email); err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verification code", "error", err)
		return goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.cfg.GetMinute("modules.auth.otp_ttl_minutes"))
	if err := s.repoDB.CreateOTPRequest(ctx, entity.OTPRequest{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		CodeHash:  string(codeHash),
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create otp request", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	// Dispatch is best effort; the stored code stays redeemable even when the
	// notification pipeline is down.
	if err := s.repoMessaging.PublishOTPRequested(ctx, OTPRequestedEvent{
		Email:     in.Email,
		Code:      code,
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp requested", "email", in.Email, "error", err)
	}

	return nil
}

// allowRequest counts recent issuance history inside the trailing window.
// Counting errors allow the request through; blocking legitimate users on a
// transient read failure is worse than one extra code.
func (s *Usecase) allowRequest(ctx context.Context, email string) error {
	window := s.cfg.GetMinute("modules.auth.rate_limit_window_minutes")
	limit := s.cfg.GetInt64("modules.auth.rate_limit_max_requests")

	count, err := s.repoDB.CountOTPRequestsSince(ctx, email, s.clock.Now().Add(-window))
	if err != nil {
		slog.WarnContext(ctx, "failed to count otp requests, allowing request", "email", email, "error", err)
		return nil
	}

	if count >= limit {
		return goerror.NewBusiness("Too many code requests, please try again later", goerror.CodeTooManyRequest)
	}

	return nil
}

// generateCode draws a uniformly distributed numeric code of the configured
// length, preserving leading zeros.
func (s *Usecase) generateCode() (string, error) {
	length := s.cfg.GetInt("modules.auth.otp_code_length")
	if length <= 0 {
		length = 6
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
