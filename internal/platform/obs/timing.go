// Package obs carries request-scoped identifiers and logs operation timings.
package obs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id in ctx, generating a new uuid when id is empty.
func WithRequestID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, id), id
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts timing op and returns the func that logs it. Call it deferred
// with a pointer to the caller's named error:
//
//	defer obs.Time(ctx, "session.command")(&err)
func Time(ctx context.Context, op string, kv ...string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	var extra string
	for i := 0; i+1 < len(kv); i += 2 {
		extra += " " + kv[i] + "=" + kv[i+1]
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s%s dur=%dms err=%v", reqID, op, extra, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s%s dur=%dms", reqID, op, extra, dur.Milliseconds())
	}
}
