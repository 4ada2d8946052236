package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID stores the correlation ID in the context so log records
// and downstream calls can carry it.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cID)
}

// GetCorrelationID returns the correlation ID stored in the context. It
// returns an empty string when none is set and a sentinel when the stored
// value is not a string.
func GetCorrelationID(ctx context.Context) string {
	v := ctx.Value(correlationIDKey{})
	if v == nil {
		return ""
	}

	cID, ok := v.(string)
	if !ok {
		return "[invalid_chain_id]"
	}

	return cID
}
