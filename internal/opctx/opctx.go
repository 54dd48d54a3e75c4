package opctx

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const operationIDKey ctxKey = "operation_id"

// New returns ctx carrying a fresh operation id.
func New(ctx context.Context) context.Context {
	return WithOperationID(ctx, uuid.NewString())
}

func WithOperationID(ctx context.Context, operationID string) context.Context {
	return context.WithValue(ctx, operationIDKey, operationID)
}

func OperationID(ctx context.Context) string {
	if value, ok := ctx.Value(operationIDKey).(string); ok {
		return value
	}
	return ""
}
