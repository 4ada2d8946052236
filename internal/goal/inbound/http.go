package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/goal/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

type uc interface {
	GoalList(ctx context.Context, in usecase.GoalListInput) (*usecase.GoalListOutput, error)
	GoalCreate(ctx context.Context, in usecase.GoalCreateInput) (*usecase.GoalCreateOutput, error)
	GoalUpdate(ctx context.Context, in usecase.GoalUpdateInput) (*usecase.GoalUpdateOutput, error)
	GoalDelete(ctx context.Context, in usecase.GoalDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Goals (need authenticated)
	r.GET("/me/goals", end.GoalList)
	r.POST("/me/goals", end.GoalCreate)
	r.PUT("/me/goals/:id", end.GoalUpdate)
	r.DELETE("/me/goals/:id", end.GoalDelete)
}
