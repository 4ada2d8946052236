package inbound

import (
	"github.com/samber/lo"
	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/goal/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for goal tracking.
type HTTPEndpoint struct {
	uc uc
}

// GoalList returns the caller's goals, filtered by the optional status query.
func (h *HTTPEndpoint) GoalList(r *router.Request) (any, error) {
	resp, err := h.uc.GoalList(r.Context(), usecase.GoalListInput{
		Status: r.GetQuery("status"),
	})
	if err != nil {
		return nil, err
	}

	return GoalListResponse{
		Goals: lo.Map(resp.Goals, func(g entity.Goal, _ int) GoalPayload {
			return newGoalPayload(g)
		}),
	}, nil
}

// GoalCreate registers a new goal for the caller.
func (h *HTTPEndpoint) GoalCreate(r *router.Request) (any, error) {
	var req GoalCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.GoalCreate(r.Context(), usecase.GoalCreateInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Milestones:  toEntityMilestones(req.Milestones),
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}

	return GoalCreateResponse{GoalPayload: newGoalPayload(resp.Goal)}, nil
}

// GoalUpdate applies a partial update to one of the caller's goals.
func (h *HTTPEndpoint) GoalUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req GoalUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := usecase.GoalUpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		TargetDate:  req.TargetDate,
		Tags:        req.Tags,
	}
	if req.Milestones != nil {
		ms := toEntityMilestones(*req.Milestones)
		in.Milestones = &ms
	}

	resp, err := h.uc.GoalUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return GoalUpdateResponse{GoalPayload: newGoalPayload(resp.Goal)}, nil
}

// GoalDelete removes a goal, or archives it when archive=true is passed.
func (h *HTTPEndpoint) GoalDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.GoalDelete(r.Context(), usecase.GoalDeleteInput{
		ID:      id,
		Archive: r.GetQuery("archive") == "true",
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
