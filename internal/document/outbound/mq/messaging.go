package mq

import (
	"context"
	"encoding/json"

	"github.com/tracksense/goalnet/internal/document/usecase"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/messaging"
	"github.com/tracksense/goalnet/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishDocumentUploaded(ctx context.Context, msg usecase.DocumentUploadedEvent) error {
	ctx, span := m.ins.Tracer("document.outbound.mq").Start(ctx, "PublishDocumentUploaded")
	defer span.End()

	body, err := json.Marshal(event.DocumentUploadedMessage{
		DocumentID: msg.DocumentID,
		UserID:     msg.UserID,
		Title:      msg.Title,
		URL:        msg.URL,
		MimeType:   msg.MimeType,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.DocumentUploadedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
