package reqcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyStartTime KeyContext = "request_start_time"
)

// Begin attaches the request id and start time to ctx
func Begin(parent context.Context, requestID string) context.Context {
	ctx := context.WithValue(parent, keyRequestID, requestID)
	return context.WithValue(ctx, keyStartTime, time.Now())
}

// RequestID extracts the request id from ctx
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(keyRequestID).(string)
	return id, ok && id != ""
}

// StartTime extracts the request start time from ctx
func StartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyStartTime).(time.Time)
	return start, ok
}

// Fields returns log fields describing the request carried by ctx
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id, ok := RequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", id))
	}
	if start, ok := StartTime(ctx); ok {
		fields = append(fields, zap.Duration("elapsed", time.Since(start)))
	}
	return fields
}
