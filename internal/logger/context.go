package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const opIDKey ctxKey = "op_id"

// WithOpID tags the context with the id of one user-initiated operation
// (a login, a listing, a publish, an order).
func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

func OpIDFrom(ctx context.Context) string {
	if v := ctx.Value(opIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with op_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	opID := OpIDFrom(ctx)
	if opID == "" {
		return L()
	}
	return L().With(zap.String("op_id", opID))
}
