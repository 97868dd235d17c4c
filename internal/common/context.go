package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID     contextKey = "request_id"
	ContextKeyLegislationID contextKey = "legislation_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithLegislationID tags the context with the legislation being analyzed
func WithLegislationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyLegislationID, id)
}

// LegislationIDFromContext extracts the legislation ID from context
func LegislationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyLegislationID).(string); ok {
		return id
	}
	return ""
}
