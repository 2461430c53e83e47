package context_manager

import (
	"context"
	"strings"
)

type lineUserKey struct{}

type requestIDKey struct{}

// SetLineUserContext stores the caller-supplied external identity into context
func SetLineUserContext(ctx context.Context, lineUserID string) context.Context {
	return context.WithValue(ctx, lineUserKey{}, strings.TrimSpace(lineUserID))
}

// GetLineUserContext retrieves the external identity, "" when none was sent
func GetLineUserContext(ctx context.Context) string {
	id, ok := ctx.Value(lineUserKey{}).(string)
	if !ok {
		return ""
	}
	return id
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestIDContext(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return "-"
	}
	return id
}
