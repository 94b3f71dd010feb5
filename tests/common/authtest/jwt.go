//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the external identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	return &JWTHelper{service: jwt.NewService(cfg.Secret, duration)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.service.GenerateToken(userID, role)
	require.NoError(t, err, "failed to generate test token")
	return token
}

func (h *JWTHelper) MemberToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleMember)
}

func (h *JWTHelper) AdminToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleAdmin)
}
