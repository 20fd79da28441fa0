package auth

import (
	"context"

	model "auction-marketplace/internal/models"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

// NewContextWithPrincipal returns a child context carrying the principal
func NewContextWithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext returns the request principal, or nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *model.Principal {
	p, _ := ctx.Value(principalContextKey).(*model.Principal)
	return p
}
