package inbound

import (
	"context"

	"github.com/tracksense/goalnet/internal/notification/usecase"
)

type uc interface {
	ConsumeOTPRequested(ctx context.Context, in usecase.ConsumeOTPRequestedInput) error
}
