package logctx

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const keyLogger ctxKey = "request_logger"

// WithLogger stores the request-scoped logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, l)
}

// From returns the request-scoped logger, or a no-op logger if none was set.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(keyLogger).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
