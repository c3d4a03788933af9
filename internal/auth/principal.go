package auth

import (
	"context"
	"strings"

	domainUser "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/user"
)

type principalKey struct{}

// Principal is the identity resolved for a single authenticated request.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && strings.EqualFold(p.Role, domainUser.RoleAdmin)
}

func (p *Principal) IsUser() bool {
	return p != nil && strings.EqualFold(p.Role, domainUser.RoleUser)
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

func IsAdmin(ctx context.Context) bool {
	p, _ := PrincipalFrom(ctx)
	return p.IsAdmin()
}

func IsUser(ctx context.Context) bool {
	p, _ := PrincipalFrom(ctx)
	return p.IsUser()
}

// CurrentUser returns the authenticated email, or "" for anonymous requests.
func CurrentUser(ctx context.Context) string {
	if p, ok := PrincipalFrom(ctx); ok {
		return p.Email
	}
	return ""
}
