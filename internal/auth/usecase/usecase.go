package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/hash"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type OTPRequestedEvent struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

type repoMessaging interface {
	PublishOTPRequested(ctx context.Context, msg OTPRequestedEvent) error
}

type repoDB interface {
	CountOTPRequestsSince(ctx context.Context, email string, since time.Time) (int64, error)
	CreateOTPRequest(ctx context.Context, in entity.OTPRequest) error
	GetLatestValidOTPRequest(ctx context.Context, email string, now time.Time) (*entity.OTPRequest, error)
	ConsumeOTPRequest(ctx context.Context, id int64) (bool, error)

	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) error
	UpdateUserProfile(ctx context.Context, in entity.UpdateUserProfile) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// canonicalEmail is the single key representation used for every read and
// write against otp_requests and users.
func canonicalEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
