package ports

import (
	"context"

	"github.com/avatarctic/hr-gateway/internal/core/domain/auth"
)

// AuthService verifies access tokens. Tokens are issued upstream; the gateway
// only checks them before forwarding.
type AuthService interface {
	ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error)
}
