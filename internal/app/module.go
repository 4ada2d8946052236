package app

import (
	"log/slog"
	"os"

	"github.com/tracksense/goalnet/internal/aiprofile"
	"github.com/tracksense/goalnet/internal/auth"
	"github.com/tracksense/goalnet/internal/document"
	"github.com/tracksense/goalnet/internal/event"
	"github.com/tracksense/goalnet/internal/goal"
	"github.com/tracksense/goalnet/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			HMAC:       a.hmac,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.goal.enabled") {
		if err := goal.New(goal.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module goal", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.document.enabled") {
		if err := document.New(document.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Keys:       a.oid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module document", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.event.enabled") {
		if err := event.New(event.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Idempotency: a.idemp,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module event", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.aiprofile.enabled") {
		if err := aiprofile.New(aiprofile.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Idempotency: a.idemp,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module aiprofile", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
