package usecase

import (
	"context"
	"strings"
)

type contextKey string

const sessionContextKey contextKey = "console_session"

// WithSession tags ctx with the console session issuing the computation.
// Computations without a session are never superseded.
func WithSession(ctx context.Context, session string) context.Context {
	session = strings.TrimSpace(session)
	if session == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey, session)
}

func sessionFromContext(ctx context.Context) string {
	session, _ := ctx.Value(sessionContextKey).(string)
	return session
}
