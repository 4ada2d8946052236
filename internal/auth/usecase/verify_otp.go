package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,numeric"`
}

type VerifyOTPOutput struct {
	Token     string
	IsNewUser bool
	User      entity.User
}

// errInvalidOrExpired is the single answer for every verification failure
// shape: no valid record, digest mismatch, or a lost consume race. Telling
// them apart would let a caller probe which identifiers have outstanding
// codes.
func errInvalidOrExpired() error {
	return goerror.NewBusiness("Invalid or expired code", goerror.CodeInvalidFormat)
}

func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	in.Email = canonicalEmail(in.Email)

	// The public contract documents 400 for missing fields.
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidFormatErr(err)
	}

	rec, err := s.repoDB.GetLatestValidOTPRequest(ctx, in.Email, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errInvalidOrExpired()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get latest valid otp request", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.hmac.Verify(rec.CodeHash, in.Code) {
		return nil, errInvalidOrExpired()
	}

	// Single conditional write; of two concurrent submissions of the same
	// correct code exactly one observes the flip.
	consumed, err := s.repoDB.ConsumeOTPRequest(ctx, rec.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume otp request", "otp_id", rec.ID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !consumed {
		return nil, errInvalidOrExpired()
	}

	user, isNew, err := s.resolveUser(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Token: token, IsNewUser: isNew, User: *user}, nil
}

func (s *Usecase) resolveUser(ctx context.Context, email string) (*entity.User, bool, error) {
	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, false, goerror.NewServer(err)
	}

	newUser := entity.User{ID: s.uid.Generate(), Email: email}
	err = s.repoDB.CreateUser(ctx, newUser)
	if errors.Is(err, goerror.ErrConflict) {
		// Another verification created the identity first; reuse it.
		user, err = s.repoDB.GetUserByEmail(ctx, email)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get user after create conflict", "email", email, "error", err)
			return nil, false, goerror.NewServer(err)
		}
		return user, false, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", email, "error", err)
		return nil, false, goerror.NewServer(err)
	}

	return &newUser, true, nil
}
