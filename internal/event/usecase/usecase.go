package usecase

import (
	"context"

	"github.com/tracksense/goalnet/internal/event/entity"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// recommender scores one event against a user profile. Implementations
// must be safe for concurrent use.
type recommender interface {
	AnalyzeEventMatch(ctx context.Context, profile entity.UserProfile, ev entity.Event) (entity.Recommendation, error)
}

type repoDB interface {
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	ListUpcomingEvents(ctx context.Context, limit int32) ([]entity.Event, error)
	CreateEventConnection(ctx context.Context, in entity.EventConnection) error
	ListEventParticipants(ctx context.Context, eventID int64) ([]entity.Participant, error)
	GetUserProfile(ctx context.Context, userID int64) (*entity.UserProfile, error)
}

type Usecase struct {
	repoDB      repoDB
	recommender recommender
	validator   validator.Validator
	cfg         config.Config
	uid         uid.NumberID
	clock       clock.Clocker
	idemp       idempotency.Idempotency
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Recommender recommender
	Validator   validator.Validator
	Config      config.Config
	UID         uid.NumberID
	Clock       clock.Clocker
	Idempotency idempotency.Idempotency
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		recommender: dep.Recommender,
		validator:   dep.Validator,
		cfg:         dep.Config,
		uid:         dep.UID,
		clock:       dep.Clock,
		idemp:       dep.Idempotency,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("event.usecase").Start(ctx, name)
}

func authUserID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	return clm.UserID, nil
}
