package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"go.opentelemetry.io/otel/trace"
)

// activeGoalsLimit caps how many active goals feed the generator.
const activeGoalsLimit = 5

type repoDB interface {
	GetAIProfileByUserID(ctx context.Context, userID int64) (*entity.AIProfile, error)
	UpsertAIProfile(ctx context.Context, in entity.AIProfile) error

	GetProfileSource(ctx context.Context, userID int64) (*entity.ProfileSource, error)
	ListActiveGoals(ctx context.Context, userID int64, limit int32) ([]entity.ActiveGoal, error)
	CountDocuments(ctx context.Context, userID int64) (int64, error)
}

type Usecase struct {
	repoDB repoDB
	uid    uid.NumberID
	clock  clock.Clocker
	idemp  idempotency.Idempotency
	ins    instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	UID         uid.NumberID
	Clock       clock.Clocker
	Idempotency idempotency.Idempotency
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB: dep.RepoDB,
		uid:    dep.UID,
		clock:  dep.Clock,
		idemp:  dep.Idempotency,
		ins:    dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("aiprofile.usecase").Start(ctx, name)
}

func authUserID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	return clm.UserID, nil
}

// compose gathers the generator inputs and produces fresh content.
func (s *Usecase) compose(ctx context.Context, userID int64) (*generated, error) {
	src, err := s.repoDB.GetProfileSource(ctx, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get profile source", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	goals, err := s.repoDB.ListActiveGoals(ctx, userID, activeGoalsLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list active goals", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	docs, err := s.repoDB.CountDocuments(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count documents", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	content := generate(*src, goals, docs)
	return &content, nil
}
