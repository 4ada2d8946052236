package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracksense/goalnet/internal/auth/inbound"
	"github.com/tracksense/goalnet/internal/auth/outbound/db"
	"github.com/tracksense/goalnet/internal/auth/outbound/mq"
	"github.com/tracksense/goalnet/internal/auth/usecase"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/hash"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/messaging"
	"github.com/tracksense/goalnet/internal/pkg/router"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
