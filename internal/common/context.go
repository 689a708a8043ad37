package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyFormID     contextKey = "form_id"
	ContextKeyOperatorID contextKey = "operator_id"
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

// WithFormID adds a form ID to the context
func WithFormID(ctx context.Context, formID string) context.Context {
	return context.WithValue(ctx, ContextKeyFormID, formID)
}

// FormIDFromContext extracts the form ID from context
func FormIDFromContext(ctx context.Context) string {
	if formID, ok := ctx.Value(ContextKeyFormID).(string); ok {
		return formID
	}
	return ""
}

// WithOperatorID records which operator issued the request
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, ContextKeyOperatorID, operatorID)
}

// OperatorIDFromContext extracts the operator ID from context
func OperatorIDFromContext(ctx context.Context) string {
	if operatorID, ok := ctx.Value(ContextKeyOperatorID).(string); ok {
		return operatorID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
