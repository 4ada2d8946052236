package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/auth/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

type uc interface {
	RequestOTP(ctx context.Context, in usecase.RequestOTPInput) error
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)

	Profile(ctx context.Context, in usecase.ProfileInput) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP Authentication (public)
	r.POST("/auth/request-otp", end.RequestOTP)
	r.POST("/auth/verify-otp", end.VerifyOTP)

	// User Profile (need authenticated)
	r.GET("/me/profile", end.Profile)
	r.PUT("/me/profile", end.ProfileUpdate)
}
