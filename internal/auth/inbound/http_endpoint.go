package inbound

import (
	"github.com/tracksense/goalnet/internal/auth/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP authentication and profile workflows.
type HTTPEndpoint struct {
	uc uc
}

// RequestOTP issues a one-time verification code to an email address.
func (h *HTTPEndpoint) RequestOTP(r *router.Request) (any, error) {
	var req RequestOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOTP(r.Context(), usecase.RequestOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return RequestOTPResponse{Success: true}, nil
}

// VerifyOTP exchanges a valid code for a session token.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		Token:     resp.Token,
		IsNewUser: resp.IsNewUser,
		User:      newUserPayload(resp.User),
	}, nil
}

// Profile returns the authenticated user's profile.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return newUserPayload(resp.User), nil
}

// ProfileUpdate updates the authenticated user's profile fields.
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		FullName:    req.FullName,
		Role:        req.Role,
		PrimaryGoal: req.PrimaryGoal,
		Company:     req.Company,
		Website:     req.Website,
		Location:    req.Location,
		OneLiner:    req.OneLiner,
		PhotoURL:    req.PhotoURL,
		Interests:   req.Interests,
		Skills:      req.Skills,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
