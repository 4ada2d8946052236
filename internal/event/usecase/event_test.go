package usecase

import (
	"context"
	"testing"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
)

func TestEventJoinResolvesOrganizerFromEvent(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")

	// Act
	out, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100})

	// Assert
	if err != nil {
		t.Fatalf("EventJoin error: %v", err)
	}
	if out.Connection.OrganizerID != 42 {
		t.Fatalf("organizer id = %d, want 42", out.Connection.OrganizerID)
	}
	if out.Connection.ParticipantID != 7 {
		t.Fatalf("participant id = %d, want 7", out.Connection.ParticipantID)
	}
}

func TestEventJoinUnknownEvent(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 999})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEventJoinTwiceIsConflict(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")
	if _, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100}); err != nil {
		t.Fatalf("first join error: %v", err)
	}

	// Act
	_, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestEventJoinInFlightDuplicateIsConflict(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")
	f.idemp.execErr = idempotency.ErrAlreadyInProgress

	// Act
	_, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("expected conflict for in-flight duplicate, got %v", err)
	}
}

func TestEventJoinAfterFailedAttemptIsRetryableConflict(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")
	f.idemp.execErr = idempotency.ErrAlreadyFailed

	// Act
	_, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("expected conflict for failed prior attempt, got %v", err)
	}
	if gerr.Type() == goerror.TypeServer {
		t.Fatalf("failed prior attempt must not surface as a server error")
	}
}

func TestEventJoinUnauthenticated(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")

	// Act
	_, err := f.uc.EventJoin(context.Background(), EventJoinInput{EventID: 100})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestEventParticipantsListsJoinedUsers(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedEvent(100, 42, "Founders Meetup")
	f.seedProfile(7, "Ada Lovelace")
	if _, err := f.uc.EventJoin(authedCtx(7), EventJoinInput{EventID: 100}); err != nil {
		t.Fatalf("join error: %v", err)
	}

	// Act
	out, err := f.uc.EventParticipants(authedCtx(42), EventParticipantsInput{EventID: 100})

	// Assert
	if err != nil {
		t.Fatalf("EventParticipants error: %v", err)
	}
	if len(out.Participants) != 1 {
		t.Fatalf("got %d participants, want 1", len(out.Participants))
	}
	if out.Participants[0].FullName != "Ada Lovelace" {
		t.Fatalf("participant name = %q", out.Participants[0].FullName)
	}
}

func TestEventParticipantsUnknownEvent(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.EventParticipants(authedCtx(7), EventParticipantsInput{EventID: 999})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEventRecommendationsFiltersAndSorts(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedProfile(7, "Ada Lovelace")
	f.seedEvent(1, 42, "Weak match")
	f.seedEvent(2, 42, "Good match")
	f.seedEvent(3, 42, "Great match")
	f.recommender.verdicts[1] = entity.Recommendation{IsRecommended: false, MatchScore: 30, Reasoning: "off-topic"}
	f.recommender.verdicts[2] = entity.Recommendation{IsRecommended: true, MatchScore: 65, Reasoning: "related field"}
	f.recommender.verdicts[3] = entity.Recommendation{IsRecommended: true, MatchScore: 90, Reasoning: "perfect fit"}

	// Act
	out, err := f.uc.EventRecommendations(authedCtx(7), EventRecommendationsInput{})

	// Assert
	if err != nil {
		t.Fatalf("EventRecommendations error: %v", err)
	}
	if len(out.Events) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(out.Events))
	}
	if out.Events[0].Event.ID != 3 || out.Events[1].Event.ID != 2 {
		t.Fatalf("recommendations not sorted by score: %+v", out.Events)
	}
}

func TestEventRecommendationsScoringFailureIsNeutral(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedProfile(7, "Ada Lovelace")
	f.seedEvent(1, 42, "Opaque event")
	f.recommender.errs[1] = context.DeadlineExceeded
	// Drop the threshold below the neutral score so the degraded verdict
	// is visible in the output.
	f.cfg.ints["modules.event.recommendation_min_score"] = 40

	// Act
	out, err := f.uc.EventRecommendations(authedCtx(7), EventRecommendationsInput{})

	// Assert
	if err != nil {
		t.Fatalf("scoring failure must not fail the request, got %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(out.Events))
	}
	verdict := out.Events[0].Recommendation
	if verdict.MatchScore != 50 || !verdict.IsRecommended {
		t.Fatalf("degraded verdict = %+v, want neutral 50", verdict)
	}
	if verdict.Reasoning != neutralReasoning {
		t.Fatalf("reasoning = %q, want canned fallback", verdict.Reasoning)
	}
}

func TestEventRecommendationsDefaultThresholdHidesNeutral(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seedProfile(7, "Ada Lovelace")
	f.seedEvent(1, 42, "Opaque event")
	f.recommender.errs[1] = context.DeadlineExceeded

	// Act
	out, err := f.uc.EventRecommendations(authedCtx(7), EventRecommendationsInput{})

	// Assert
	if err != nil {
		t.Fatalf("EventRecommendations error: %v", err)
	}
	if len(out.Events) != 0 {
		t.Fatalf("neutral 50 must fall below the default threshold, got %+v", out.Events)
	}
}
