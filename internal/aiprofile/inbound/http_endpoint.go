package inbound

import (
	"time"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
	"github.com/tracksense/goalnet/internal/aiprofile/usecase"
	"github.com/tracksense/goalnet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the generated profile card.
type HTTPEndpoint struct {
	uc uc
}

type AIProfilePayload struct {
	Summary       string    `json:"summary"`
	CurrentFocus  []string  `json:"current_focus"`
	Strengths     []string  `json:"strengths"`
	Highlights    []string  `json:"highlights"`
	LastGenerated time.Time `json:"last_generated"`
}

func newAIProfilePayload(p entity.AIProfile) AIProfilePayload {
	return AIProfilePayload{
		Summary:       p.Summary,
		CurrentFocus:  p.CurrentFocus,
		Strengths:     p.Strengths,
		Highlights:    p.Highlights,
		LastGenerated: p.LastGenerated,
	}
}

type AIProfileRegenerateResponse struct {
	AIProfilePayload
}

func (AIProfileRegenerateResponse) Message() string {
	return "AI profile regenerated successfully."
}

// AIProfileGet returns the profile card, generating it on first access.
func (h *HTTPEndpoint) AIProfileGet(r *router.Request) (any, error) {
	resp, err := h.uc.AIProfileGet(r.Context(), usecase.AIProfileGetInput{})
	if err != nil {
		return nil, err
	}

	return newAIProfilePayload(resp.Profile), nil
}

// AIProfileRegenerate recomputes and stores the profile card.
func (h *HTTPEndpoint) AIProfileRegenerate(r *router.Request) (any, error) {
	resp, err := h.uc.AIProfileRegenerate(r.Context(), usecase.AIProfileRegenerateInput{})
	if err != nil {
		return nil, err
	}

	return AIProfileRegenerateResponse{AIProfilePayload: newAIProfilePayload(resp.Profile)}, nil
}
