package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tracksense/goalnet/internal/notification/usecase"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/messaging"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OTPRequestedEmail(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OTPRequestedEmail")
	defer span.End()

	// The body carries a live verification code, so it stays out of the log.
	slog.InfoContext(ctx, "consume: otp requested email")

	var payload event.OTPRequestedMessage
	if err := json.Unmarshal(msg.Body(), &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp requested email", "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPRequested(ctx, usecase.ConsumeOTPRequestedInput{
		Email:         payload.Email,
		Code:          payload.Code,
		ExpiresAtUnix: payload.ExpiresAtUnix,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp requested", "email", payload.Email, "error", err)
		return err
	}

	return nil
}
