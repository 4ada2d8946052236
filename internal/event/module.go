package event

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracksense/goalnet/internal/event/inbound"
	"github.com/tracksense/goalnet/internal/event/outbound/db"
	"github.com/tracksense/goalnet/internal/event/outbound/genai"
	"github.com/tracksense/goalnet/internal/event/usecase"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/idempotency"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/router"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:      db.NewDB(dep.DBConn, dep.Instrument),
		Recommender: genai.NewGemini(dep.Config, dep.Instrument),
		Validator:   dep.Validator,
		Config:      dep.Config,
		UID:         dep.UID,
		Clock:       dep.Clock,
		Idempotency: dep.Idempotency,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
