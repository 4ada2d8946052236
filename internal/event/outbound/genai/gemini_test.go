package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
)

type testConfig struct {
	config.Config
	strings map[string]string
}

func (c *testConfig) GetString(key string) string { return c.strings[key] }

func (c *testConfig) GetSecond(string) time.Duration { return 5 * time.Second }

func newClient(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGemini(&testConfig{strings: map[string]string{
		"modules.event.genai.base_url": srv.URL,
		"modules.event.genai.model":    "gemini-2.0-flash-exp",
		"modules.event.genai.api_key":  "test-key",
	}}, instrument.NewNoop())
}

func modelReply(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return body
}

func TestAnalyzeEventMatchParsesFencedVerdict(t *testing.T) {
	// Arrange
	var prompt string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt = req.Contents[0].Parts[0].Text
		w.Write(modelReply("```json\n{\"isRecommended\": true, \"matchScore\": 85, \"reasoning\": \"strong overlap\"}\n```"))
	})

	// Act
	rec, err := client.AnalyzeEventMatch(context.Background(), entity.UserProfile{
		FullName:  "Ada Lovelace",
		Role:      "founder",
		Interests: []string{"ai", "fundraising"},
	}, entity.Event{ID: 9, Name: "AI Founders Night", Location: "Berlin", StartsAt: time.Now()})

	// Assert
	if err != nil {
		t.Fatalf("AnalyzeEventMatch error: %v", err)
	}
	if rec.EventID != 9 || rec.MatchScore != 85 || !rec.IsRecommended {
		t.Fatalf("verdict = %+v", rec)
	}
	if !strings.Contains(prompt, "Ada Lovelace") || !strings.Contains(prompt, "AI Founders Night") {
		t.Fatalf("prompt missing profile or event details:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Interests: ai, fundraising") {
		t.Fatalf("prompt missing interests:\n%s", prompt)
	}
}

func TestAnalyzeEventMatchUpstreamError(t *testing.T) {
	// Arrange
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	// Act
	_, err := client.AnalyzeEventMatch(context.Background(), entity.UserProfile{}, entity.Event{ID: 9})

	// Assert
	if err == nil {
		t.Fatal("expected error for upstream failure")
	}
}

func TestAnalyzeEventMatchMalformedVerdict(t *testing.T) {
	// Arrange
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write(modelReply("sorry, I cannot answer that"))
	})

	// Act
	_, err := client.AnalyzeEventMatch(context.Background(), entity.UserProfile{}, entity.Event{ID: 9})

	// Assert
	if err == nil {
		t.Fatal("expected error for non-JSON verdict")
	}
}
