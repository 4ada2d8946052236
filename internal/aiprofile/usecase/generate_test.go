package usecase

import (
	"reflect"
	"testing"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
)

func TestGenerateFullProfile(t *testing.T) {
	// Arrange
	src := entity.ProfileSource{
		UserID:      7,
		Role:        "founder",
		PrimaryGoal: "fundraising",
		Company:     "Acme Labs",
		Website:     "https://acme.dev",
		Location:    "Berlin",
		OneLiner:    "Building tools for remote teams.",
	}
	goals := []entity.ActiveGoal{
		{Title: "Close seed round", CompletedMilestones: 2},
		{Title: "Hire founding engineer", CompletedMilestones: 1},
		{Title: "Ship beta", CompletedMilestones: 0},
	}

	// Act
	out := generate(src, goals, 4)

	// Assert
	wantSummary := "Founder at Acme Labs based in Berlin. Building tools for remote teams." +
		" Currently working on 3 active goals with focus on fundraising."
	if out.Summary != wantSummary {
		t.Fatalf("summary mismatch:\n got %q\nwant %q", out.Summary, wantSummary)
	}

	wantFocus := []string{"Raising funding for growth", "Close seed round", "Hire founding engineer"}
	if !reflect.DeepEqual(out.CurrentFocus, wantFocus) {
		t.Fatalf("current focus mismatch: got %v want %v", out.CurrentFocus, wantFocus)
	}

	wantStrengths := []string{"Entrepreneurship", "Product Development", "Team Building"}
	if !reflect.DeepEqual(out.Strengths, wantStrengths) {
		t.Fatalf("strengths mismatch: got %v want %v", out.Strengths, wantStrengths)
	}

	wantHighlights := []string{
		"Founder at Acme Labs",
		"Based in Berlin",
		"Completed 3 milestones",
		"Portfolio: https://acme.dev",
	}
	if !reflect.DeepEqual(out.Highlights, wantHighlights) {
		t.Fatalf("highlights mismatch: got %v want %v", out.Highlights, wantHighlights)
	}
}

func TestGenerateEmptyProfileFallsBackToDefaults(t *testing.T) {
	// Arrange
	src := entity.ProfileSource{UserID: 7}

	// Act
	out := generate(src, nil, 0)

	// Assert
	if out.Summary != "Professional." {
		t.Fatalf("expected bare summary, got %q", out.Summary)
	}
	if !reflect.DeepEqual(out.CurrentFocus, []string{"Setting up profile and defining goals"}) {
		t.Fatalf("unexpected default focus: %v", out.CurrentFocus)
	}
	if !reflect.DeepEqual(out.Strengths, []string{"Professional Skills", "Industry Knowledge", "Collaboration"}) {
		t.Fatalf("unexpected default strengths: %v", out.Strengths)
	}
	if !reflect.DeepEqual(out.Highlights, []string{"Active on GoalNet"}) {
		t.Fatalf("unexpected default highlights: %v", out.Highlights)
	}
}

func TestGenerateSingularMilestoneAndGoal(t *testing.T) {
	// Arrange
	src := entity.ProfileSource{UserID: 7, Role: "mentor", Company: "Northstar"}
	goals := []entity.ActiveGoal{{Title: "Mentor two founders", CompletedMilestones: 1}}

	// Act
	out := generate(src, goals, 0)

	// Assert
	if out.Summary != "Mentor at Northstar Currently working on 1 active goal." {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	wantHighlights := []string{"Mentor at Northstar", "Completed 1 milestone"}
	if !reflect.DeepEqual(out.Highlights, wantHighlights) {
		t.Fatalf("highlights mismatch: got %v want %v", out.Highlights, wantHighlights)
	}
}

func TestGenerateUnknownRoleAndGoalUseOtherBuckets(t *testing.T) {
	// Arrange
	src := entity.ProfileSource{UserID: 7, Role: "astronaut", PrimaryGoal: "orbit"}

	// Act
	out := generate(src, nil, 0)

	// Assert
	if !reflect.DeepEqual(out.Strengths, []string{"Professional Skills", "Industry Knowledge", "Collaboration"}) {
		t.Fatalf("unexpected strengths for unknown role: %v", out.Strengths)
	}
	if out.CurrentFocus[0] != "Achieving key business objectives" {
		t.Fatalf("unexpected focus for unknown goal: %v", out.CurrentFocus)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	// Arrange
	src := entity.ProfileSource{UserID: 7, Role: "investor", PrimaryGoal: "learn", Location: "Lisbon"}
	goals := []entity.ActiveGoal{{Title: "Review 10 decks", CompletedMilestones: 3}}

	// Act
	first := generate(src, goals, 2)
	second := generate(src, goals, 2)

	// Assert
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different content:\n%+v\n%+v", first, second)
	}
}
