package api

import (
	"context"

	"github.com/rohanj-gh/devfolio-backend/auth"
)

type keyType string

const callerKey keyType = "caller"

// ctxWithCaller attaches the resolved caller to the request context
func ctxWithCaller(ctx context.Context, caller *auth.Identity) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// callerFromCtx retrieves the resolved caller, or nil when the request is
// unauthenticated.
func callerFromCtx(ctx context.Context) *auth.Identity {
	caller, _ := ctx.Value(callerKey).(*auth.Identity)
	return caller
}
