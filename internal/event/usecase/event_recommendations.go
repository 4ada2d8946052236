package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

const neutralReasoning = "Unable to analyze match. Showing event for your consideration."

type EventRecommendationsInput struct{}

type EventRecommendationsOutput struct {
	Events []entity.RecommendedEvent
}

// EventRecommendations scores upcoming events against the caller's
// profile and keeps the ones above the configured threshold, best match
// first. A failed scoring call degrades to a neutral verdict instead of
// failing the request.
func (s *Usecase) EventRecommendations(ctx context.Context, _ EventRecommendationsInput) (*EventRecommendationsOutput, error) {
	ctx, span := s.startSpan(ctx, "EventRecommendations")
	defer span.End()

	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repoDB.GetUserProfile(ctx, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	limit := s.cfg.GetInt32("modules.event.recommendation_candidates")
	if limit <= 0 {
		limit = 20
	}

	events, err := s.repoDB.ListUpcomingEvents(ctx, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list upcoming events", "error", err)
		return nil, goerror.NewServer(err)
	}

	verdicts := make([]entity.Recommendation, len(events))
	var wg sync.WaitGroup
	for i, ev := range events {
		wg.Add(1)
		go func(i int, ev entity.Event) {
			defer wg.Done()
			verdicts[i] = s.scoreEvent(ctx, *profile, ev)
		}(i, ev)
	}
	wg.Wait()

	minScore := s.cfg.GetInt32("modules.event.recommendation_min_score")
	if minScore <= 0 {
		minScore = 60
	}

	out := make([]entity.RecommendedEvent, 0, len(events))
	for i, ev := range events {
		if verdicts[i].IsRecommended && verdicts[i].MatchScore >= minScore {
			out = append(out, entity.RecommendedEvent{Event: ev, Recommendation: verdicts[i]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Recommendation.MatchScore > out[j].Recommendation.MatchScore
	})

	return &EventRecommendationsOutput{Events: out}, nil
}

func (s *Usecase) scoreEvent(ctx context.Context, profile entity.UserProfile, ev entity.Event) entity.Recommendation {
	verdict, err := s.recommender.AnalyzeEventMatch(ctx, profile, ev)
	if err != nil {
		slog.WarnContext(ctx, "event match analysis failed, using neutral verdict", "event_id", ev.ID, "error", err)
		return entity.Recommendation{
			EventID:       ev.ID,
			IsRecommended: true,
			MatchScore:    50,
			Reasoning:     neutralReasoning,
		}
	}
	verdict.EventID = ev.ID
	return verdict
}
