// Package genai scores events against user profiles through the Gemini
// generateContent REST endpoint.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Gemini struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	ins        instrument.Instrumentation
}

func NewGemini(cfg config.Config, ins instrument.Instrumentation) *Gemini {
	baseURL := cfg.GetString("modules.event.genai.base_url")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.GetSecond("modules.event.genai.timeout_seconds")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Gemini{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      cfg.GetString("modules.event.genai.model"),
		apiKey:     cfg.GetString("modules.event.genai.api_key"),
		ins:        ins,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type verdictPayload struct {
	IsRecommended bool   `json:"isRecommended"`
	MatchScore    int32  `json:"matchScore"`
	Reasoning     string `json:"reasoning"`
}

// AnalyzeEventMatch asks the model for a structured verdict on how well
// the event fits the profile.
func (g *Gemini) AnalyzeEventMatch(ctx context.Context, profile entity.UserProfile, ev entity.Event) (rec entity.Recommendation, err error) {
	ctx, span := g.ins.Tracer("event.outbound.genai").Start(ctx, "AnalyzeEventMatch")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(profile, ev)}}}},
	})
	if err != nil {
		return rec, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return rec, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return rec, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return rec, err
	}
	if resp.StatusCode != http.StatusOK {
		return rec, fmt.Errorf("genai: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return rec, fmt.Errorf("genai: malformed response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return rec, fmt.Errorf("genai: empty response")
	}

	var verdict verdictPayload
	if err := json.Unmarshal([]byte(stripFences(gr.Candidates[0].Content.Parts[0].Text)), &verdict); err != nil {
		return rec, fmt.Errorf("genai: malformed verdict: %w", err)
	}

	return entity.Recommendation{
		EventID:       ev.ID,
		IsRecommended: verdict.IsRecommended,
		MatchScore:    verdict.MatchScore,
		Reasoning:     verdict.Reasoning,
	}, nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around the JSON verdict.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func buildPrompt(profile entity.UserProfile, ev entity.Event) string {
	var b strings.Builder

	b.WriteString("You are an intelligent event recommendation system. Analyze if this event matches the user's profile.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotSpecified(profile.FullName))
	fmt.Fprintf(&b, "- Role: %s\n", orNotSpecified(profile.Role))
	fmt.Fprintf(&b, "- Primary Goal: %s\n", orNotSpecified(profile.PrimaryGoal))
	fmt.Fprintf(&b, "- Interests: %s\n", orNotSpecified(strings.Join(profile.Interests, ", ")))
	fmt.Fprintf(&b, "- Skills: %s\n", orNotSpecified(strings.Join(profile.Skills, ", ")))
	fmt.Fprintf(&b, "- Location: %s\n\n", orNotSpecified(profile.Location))

	b.WriteString("EVENT DETAILS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", ev.Name)
	fmt.Fprintf(&b, "- Headline: %s\n", orNotSpecified(ev.Headline))
	fmt.Fprintf(&b, "- Description: %s\n", ev.Description)
	fmt.Fprintf(&b, "- Tags: %s\n", orNotSpecified(strings.Join(ev.Tags, ", ")))
	fmt.Fprintf(&b, "- Location: %s\n", ev.Location)
	fmt.Fprintf(&b, "- Date: %s\n\n", ev.StartsAt.Format(time.RFC3339))

	b.WriteString(`TASK:
1. Determine if this event is relevant and beneficial for this user
2. Consider: interests alignment, skill development, career goals, location proximity
3. Provide a match score (0-100) where:
   - 80-100: Highly recommended (strong alignment)
   - 60-79: Recommended (good alignment)
   - 40-59: Somewhat relevant (moderate alignment)
   - 0-39: Not recommended (weak/no alignment)

Respond in JSON format:
{
  "isRecommended": true/false,
  "matchScore": number (0-100),
  "reasoning": "Brief explanation (max 100 words) of why this event does or doesn't match"
}`)

	return b.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
