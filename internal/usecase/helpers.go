package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

// actorFromCtx reads the acting admin injected by the auth middleware.
func actorFromCtx(ctx context.Context) (username, role string) {
	if v, ok := ctx.Value(domain.KeyAdminUsername).(string); ok {
		username = v
	}
	if v, ok := ctx.Value(domain.KeyAdminRole).(string); ok {
		role = v
	}
	return username, role
}
