package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/event/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

type uc interface {
	EventJoin(ctx context.Context, in usecase.EventJoinInput) (*usecase.EventJoinOutput, error)
	EventParticipants(ctx context.Context, in usecase.EventParticipantsInput) (*usecase.EventParticipantsOutput, error)
	EventRecommendations(ctx context.Context, in usecase.EventRecommendationsInput) (*usecase.EventRecommendationsOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Events (need authenticated)
	r.POST("/events/join", end.EventJoin)
	r.GET("/events/:id/participants", end.EventParticipants)
	// The router cannot mix a static segment with :id under /events, so
	// the personalized feed lives under /me.
	r.GET("/me/event-recommendations", end.EventRecommendations)
}
