package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/tracksense/goalnet/internal/pkg/mail"
)

type ConsumeOTPRequestedInput struct {
	Email         string `validate:"required,email"`
	Code          string `validate:"required"`
	ExpiresAtUnix int64  `validate:"required,gt=0"`
}

// ConsumeOTPRequested delivers the verification code by email. It always
// returns nil so a dead mail provider does not keep the message in the
// queue; the fallback is the code in the log.
func (s *Usecase) ConsumeOTPRequested(ctx context.Context, in ConsumeOTPRequestedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPRequested")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	expiresAt := time.Unix(in.ExpiresAtUnix, 0)
	minutes := int(math.Ceil(expiresAt.Sub(s.clock.Now()).Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	data := s.baseEmailTemplateData()
	data["code"] = in.Code
	data["expires_minutes"] = minutes

	body, err := s.renderTemplate("otp_email", otpEmailBody, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render otp email body", "email", in.Email, "error", err)
		s.logCodeFallback(ctx, in)
		return nil
	}

	msg := mail.Message{
		To:       []string{in.Email},
		Subject:  otpEmailSubject,
		HTMLBody: body,
	}

	if s.degraded.Load() {
		// Probe with a single attempt so a recovered provider clears the
		// flag without making every message wait out the retry schedule.
		if err := s.sendOnce(ctx, msg); err != nil {
			s.logCodeFallback(ctx, in)
			return nil
		}
		s.degraded.Store(false)
		slog.InfoContext(ctx, "mail provider recovered", "email", in.Email)
		return nil
	}

	if err := s.sendWithRetry(ctx, msg); err != nil {
		s.degraded.Store(true)
		slog.ErrorContext(ctx, "failed to send otp email", "email", in.Email, "error", err)
		s.logCodeFallback(ctx, in)
	}

	return nil
}

func (s *Usecase) sendOnce(ctx context.Context, msg mail.Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GetSecond("modules.notification.send_timeout_seconds"))
	defer cancel()

	return s.repoMail.Send(ctx, msg)
}

func (s *Usecase) sendWithRetry(ctx context.Context, msg mail.Message) error {
	attempts := s.cfg.GetInt32("modules.notification.send_max_retries")
	if attempts <= 0 {
		attempts = 3
	}
	base := time.Duration(s.cfg.GetInt32("modules.notification.send_retry_backoff_ms")) * time.Millisecond
	if base <= 0 {
		base = 500 * time.Millisecond
	}

	backoff := retry.WithMaxRetries(uint64(attempts), retry.NewExponential(base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.sendOnce(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// logCodeFallback keeps login possible while the mail provider is down by
// surfacing the code to operators.
func (s *Usecase) logCodeFallback(ctx context.Context, in ConsumeOTPRequestedInput) {
	slog.WarnContext(ctx, "mail provider degraded, otp delivered via log",
		"email", in.Email, "code", in.Code, "expires_at_unix", in.ExpiresAtUnix)
}
