package domain

import (
	"context"

	employeeDomain "github.com/xenosis/employees/internal/employee/domain"
)

// principalKey is a context key type for storing the authenticated principal.
type principalKey struct{}

// WithPrincipal stores an authenticated principal in the context.
func WithPrincipal(ctx context.Context, principal *employeeDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (*employeeDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*employeeDomain.Principal)
	return principal, ok && principal != nil
}
