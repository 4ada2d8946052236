package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tracksense/goalnet/internal/document/usecase"
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

func (h *MQHandler) DocumentUploadedExtraction(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("document.inbound.mq").Start(ctx, "DocumentUploadedExtraction")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: document uploaded extraction", "msg_body", string(body))

	var payload event.DocumentUploadedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of document uploaded extraction", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeDocumentUploaded(ctx, usecase.ConsumeDocumentUploadedInput{
		DocumentID: payload.DocumentID,
		UserID:     payload.UserID,
		Title:      payload.Title,
		URL:        payload.URL,
		MimeType:   payload.MimeType,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume document uploaded", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
