package instrument

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	// Arrange
	ctx := SetCorrelationID(context.Background(), "cid-123")

	// Act
	got := GetCorrelationID(ctx)

	// Assert
	if got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestCorrelationIDAbsentIsEmpty(t *testing.T) {
	// Arrange
	ctx := context.Background()

	// Act
	got := GetCorrelationID(ctx)

	// Assert
	if got != "" {
		t.Fatalf("expected empty correlation id, got %q", got)
	}
}

func TestCorrelationIDOverwriteKeepsLatest(t *testing.T) {
	// Arrange
	ctx := SetCorrelationID(context.Background(), "first")
	ctx = SetCorrelationID(ctx, "second")

	// Act
	got := GetCorrelationID(ctx)

	// Assert
	if got != "second" {
		t.Fatalf("expected second, got %q", got)
	}
}
