package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

func mustCreate(t *testing.T, f *fixture, ctx context.Context, title string) entity.Goal {
	t.Helper()

	out, err := f.uc.GoalCreate(ctx, GoalCreateInput{Title: title})
	if err != nil {
		t.Fatalf("GoalCreate(%q) error: %v", title, err)
	}
	return out.Goal
}

func TestGoalCreateDefaults(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)

	// Act
	out, err := f.uc.GoalCreate(ctx, GoalCreateInput{Title: "  Raise seed round  "})

	// Assert
	if err != nil {
		t.Fatalf("GoalCreate error: %v", err)
	}
	if out.Goal.Title != "Raise seed round" {
		t.Fatalf("title = %q, want trimmed", out.Goal.Title)
	}
	if out.Goal.Status != entity.GoalStatusActive {
		t.Fatalf("status = %q, want active", out.Goal.Status)
	}
	if out.Goal.Progress != 0 {
		t.Fatalf("progress = %d, want 0", out.Goal.Progress)
	}
	if out.Goal.Milestones == nil || out.Goal.Tags == nil {
		t.Fatalf("milestones/tags must default to empty, got %v / %v", out.Goal.Milestones, out.Goal.Tags)
	}
}

func TestGoalCreateRequiresTitle(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.GoalCreate(authedCtx(7), GoalCreateInput{Title: "   "})

	// Assert
	if err == nil {
		t.Fatal("expected validation error for empty title")
	}
}

func TestGoalCreateUnauthenticated(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.GoalCreate(context.Background(), GoalCreateInput{Title: "Hire CTO"})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestGoalListDefaultsToActiveNewestFirst(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	first := mustCreate(t, f, ctx, "First")
	f.clock.Advance(time.Minute)
	second := mustCreate(t, f, ctx, "Second")
	f.clock.Advance(time.Minute)
	archived := mustCreate(t, f, ctx, "Old plan")
	if err := f.uc.GoalDelete(ctx, GoalDeleteInput{ID: archived.ID, Archive: true}); err != nil {
		t.Fatalf("archive error: %v", err)
	}

	// Act
	out, err := f.uc.GoalList(ctx, GoalListInput{})

	// Assert
	if err != nil {
		t.Fatalf("GoalList error: %v", err)
	}
	if len(out.Goals) != 2 {
		t.Fatalf("got %d goals, want 2 active", len(out.Goals))
	}
	if out.Goals[0].ID != second.ID || out.Goals[1].ID != first.ID {
		t.Fatalf("goals not newest first: %v", out.Goals)
	}
}

func TestGoalListStatusFilter(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	g := mustCreate(t, f, ctx, "Done deal")
	done := "completed"
	if _, err := f.uc.GoalUpdate(ctx, GoalUpdateInput{ID: g.ID, Status: &done}); err != nil {
		t.Fatalf("GoalUpdate error: %v", err)
	}

	// Act
	out, err := f.uc.GoalList(ctx, GoalListInput{Status: "completed"})

	// Assert
	if err != nil {
		t.Fatalf("GoalList error: %v", err)
	}
	if len(out.Goals) != 1 || out.Goals[0].ID != g.ID {
		t.Fatalf("completed filter returned %v", out.Goals)
	}
}

func TestGoalListRejectsUnknownStatus(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.GoalList(authedCtx(7), GoalListInput{Status: "paused"})

	// Assert
	if err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestGoalUpdatePartialFields(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	g := mustCreate(t, f, ctx, "Ship v1")
	progress := int32(40)
	milestones := []entity.Milestone{{Title: "Design", Completed: true}}

	// Act
	out, err := f.uc.GoalUpdate(ctx, GoalUpdateInput{
		ID:         g.ID,
		Progress:   &progress,
		Milestones: &milestones,
	})

	// Assert
	if err != nil {
		t.Fatalf("GoalUpdate error: %v", err)
	}
	if out.Goal.Progress != 40 {
		t.Fatalf("progress = %d, want 40", out.Goal.Progress)
	}
	if out.Goal.Title != "Ship v1" {
		t.Fatalf("title must be untouched, got %q", out.Goal.Title)
	}
	if len(out.Goal.Milestones) != 1 || !out.Goal.Milestones[0].Completed {
		t.Fatalf("milestones not applied: %v", out.Goal.Milestones)
	}
}

func TestGoalUpdateRejectsOutOfRangeProgress(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	g := mustCreate(t, f, ctx, "Ship v1")
	progress := int32(101)

	// Act
	_, err := f.uc.GoalUpdate(ctx, GoalUpdateInput{ID: g.ID, Progress: &progress})

	// Assert
	if err == nil {
		t.Fatal("expected validation error for progress > 100")
	}
}

func TestGoalUpdateOtherOwnerIsNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)
	g := mustCreate(t, f, authedCtx(7), "Private goal")
	title := "Hijacked"

	// Act
	_, err := f.uc.GoalUpdate(authedCtx(8), GoalUpdateInput{ID: g.ID, Title: &title})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGoalDeleteHard(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	g := mustCreate(t, f, ctx, "Throwaway")

	// Act
	err := f.uc.GoalDelete(ctx, GoalDeleteInput{ID: g.ID})

	// Assert
	if err != nil {
		t.Fatalf("GoalDelete error: %v", err)
	}
	if _, err := f.repo.GetGoal(ctx, 7, g.ID); err == nil {
		t.Fatal("goal still present after hard delete")
	}
}

func TestGoalDeleteArchiveKeepsRow(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := authedCtx(7)
	g := mustCreate(t, f, ctx, "Keep for the record")

	// Act
	err := f.uc.GoalDelete(ctx, GoalDeleteInput{ID: g.ID, Archive: true})

	// Assert
	if err != nil {
		t.Fatalf("GoalDelete error: %v", err)
	}
	got, err := f.repo.GetGoal(ctx, 7, g.ID)
	if err != nil {
		t.Fatalf("archived goal missing: %v", err)
	}
	if got.Status != entity.GoalStatusArchived {
		t.Fatalf("status = %q, want archived", got.Status)
	}
}

func TestGoalDeleteUnknownIsNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.GoalDelete(authedCtx(7), GoalDeleteInput{ID: 12345})

	// Assert
	var gerr *goerror.Error
	if !asGoError(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
