package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

// CycleIDKey is the context key holding the id of the running analysis cycle.
const CycleIDKey ctxKey = "cycle_id"

// WithCycleID stores an analysis cycle id in ctx so *Context log calls pick it up.
func WithCycleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CycleIDKey, id)
}

func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(CycleIDKey).(string); ok && id != "" {
		return []zap.Field{zap.String(string(CycleIDKey), id)}
	}
	return nil
}

func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func ErrorField(err error) zap.Field {
	return zap.Error(err)
}

func StringField(key string, value string) zap.Field {
	return zap.String(key, value)
}

func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func FloatField(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

func DurationField(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}
