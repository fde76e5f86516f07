package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

type requestKey struct{}

// request is shared between HTTPMiddleware and the handlers below it, so the
// access log line can name the user a session resolved to.
type request struct {
	userID string
}

// WithContext stores logger on ctx. FromContext returns it.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithUser tags the request logger with the session's user id. The id also
// ends up on the http_request line written when the request completes.
func WithUser(ctx context.Context, userID string) context.Context {
	if req, ok := ctx.Value(requestKey{}).(*request); ok {
		req.userID = userID
	}
	return WithContext(ctx, FromContext(ctx).With("user_id", userID))
}

func withRequest(ctx context.Context) (context.Context, *request) {
	req := &request{}
	return context.WithValue(ctx, requestKey{}, req), req
}
