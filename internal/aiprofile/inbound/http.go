package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/aiprofile/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

type uc interface {
	AIProfileGet(ctx context.Context, in usecase.AIProfileGetInput) (*usecase.AIProfileGetOutput, error)
	AIProfileRegenerate(ctx context.Context, in usecase.AIProfileRegenerateInput) (*usecase.AIProfileRegenerateOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// AI Profile (need authenticated)
	r.GET("/me/ai-profile", end.AIProfileGet)
	r.POST("/me/ai-profile/regenerate", end.AIProfileRegenerate)
}
