package inbound

import (
	"net/http"
	"time"

	"github.com/samber/lo"
	"github.com/tracksense/goalnet/internal/goal/entity"
)

type MilestonePayload struct {
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type GoalPayload struct {
	ID          int64              `json:"id,string"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	Progress    int32              `json:"progress"`
	TargetDate  *time.Time         `json:"target_date,omitempty"`
	Milestones  []MilestonePayload `json:"milestones"`
	Tags        []string           `json:"tags"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func newGoalPayload(g entity.Goal) GoalPayload {
	return GoalPayload{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Status:      g.Status.String(),
		Progress:    g.Progress,
		TargetDate:  g.TargetDate,
		Milestones: lo.Map(g.Milestones, func(m entity.Milestone, _ int) MilestonePayload {
			return MilestonePayload{Title: m.Title, Completed: m.Completed, CompletedAt: m.CompletedAt}
		}),
		Tags:      g.Tags,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

type GoalListResponse struct {
	Goals []GoalPayload `json:"goals"`
}

type GoalCreateRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	TargetDate  *time.Time         `json:"target_date"`
	Milestones  []MilestonePayload `json:"milestones"`
	Tags        []string           `json:"tags"`
}

type GoalCreateResponse struct {
	GoalPayload
}

func (GoalCreateResponse) Message() string {
	return "Goal created successfully."
}

func (GoalCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type GoalUpdateRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Status      *string             `json:"status"`
	Progress    *int32              `json:"progress"`
	TargetDate  *time.Time          `json:"target_date"`
	Milestones  *[]MilestonePayload `json:"milestones"`
	Tags        *[]string           `json:"tags"`
}

type GoalUpdateResponse struct {
	GoalPayload
}

func (GoalUpdateResponse) Message() string {
	return "Goal updated successfully."
}

func toEntityMilestones(in []MilestonePayload) []entity.Milestone {
	return lo.Map(in, func(m MilestonePayload, _ int) entity.Milestone {
		return entity.Milestone{Title: m.Title, Completed: m.Completed, CompletedAt: m.CompletedAt}
	})
}
