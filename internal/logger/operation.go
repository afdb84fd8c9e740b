package logger

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

type operationKey struct{}

// OperationInfo identifies the request or operation a log line belongs to
type OperationInfo struct {
	Name      string
	RequestID string
	Caller    string
}

func (o OperationInfo) fields() []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if o.Name != "" {
		fields = append(fields, zap.String("operation", o.Name))
	}
	if o.RequestID != "" {
		fields = append(fields, zap.String("request_id", o.RequestID))
	}
	if o.Caller != "" {
		fields = append(fields, zap.String("caller", o.Caller))
	}
	return fields
}

// WithOperation returns a context whose loggers carry the operation fields.
// Empty fields of info keep the value already present in ctx.
// The sentry hub of the context is cloned and tagged the same way.
func WithOperation(ctx context.Context, info OperationInfo) context.Context {
	if prev, ok := OperationFromContext(ctx); ok {
		if info.Name == "" {
			info.Name = prev.Name
		}
		if info.RequestID == "" {
			info.RequestID = prev.RequestID
		}
		if info.Caller == "" {
			info.Caller = prev.Caller
		}
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if info.Name != "" {
			scope.SetTag("operation", info.Name)
		}
		if info.RequestID != "" {
			scope.SetTag("request_id", info.RequestID)
		}
		if info.Caller != "" {
			scope.SetUser(sentry.User{ID: info.Caller})
		}
	})
	ctx = sentry.SetHubOnContext(ctx, hub)

	return context.WithValue(ctx, operationKey{}, info)
}

// OperationFromContext returns the operation info stored by WithOperation
func OperationFromContext(ctx context.Context) (OperationInfo, bool) {
	if ctx == nil {
		return OperationInfo{}, false
	}
	info, ok := ctx.Value(operationKey{}).(OperationInfo)
	return info, ok
}
