package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
)

type ProfileUpdateInput struct {
	FullName    string `validate:"omitempty,min=2,max=100,alphaspace"`
	Role        string `validate:"omitempty,oneof=founder investor mentor cxo service other"`
	PrimaryGoal string `validate:"omitempty,oneof=fundraising clients cofounder hiring learn other"`
	Company     string `validate:"omitempty,max=200"`
	Website     string `validate:"omitempty,url,max=500"`
	Location    string `validate:"omitempty,max=200"`
	OneLiner    string `validate:"omitempty,max=280"`
	PhotoURL    string `validate:"omitempty,url,max=500"`
	Interests   []string
	Skills      []string
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserProfile(ctx, entity.UpdateUserProfile{
		ID:          user.ID,
		FullName:    in.FullName,
		Role:        entity.UserRoleFromString(in.Role),
		PrimaryGoal: entity.PrimaryGoalFromString(in.PrimaryGoal),
		Company:     in.Company,
		Website:     in.Website,
		Location:    in.Location,
		OneLiner:    in.OneLiner,
		PhotoURL:    in.PhotoURL,
		Interests:   in.Interests,
		Skills:      in.Skills,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user profile", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
