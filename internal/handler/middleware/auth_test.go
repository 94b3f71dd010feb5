//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/cookie"
	"coworking-booking/internal/pkg/jwt"
	"coworking-booking/internal/usecase"
	"coworking-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service, minRole *user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	router := gin.New()

	handlers := []gin.HandlerFunc{auth.RequireAuth()}
	if minRole != nil {
		handlers = append(handlers, auth.RequireRoleAtLeast(*minRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	})

	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Hour)
	router := newAuthRouter(t, svc, nil)
	userID := uuid.New()

	t.Run("accepts a bearer token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "member", body["role"])
	})

	t.Run("accepts the access token cookie", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/protected", nil, cookies)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewService("unit-test-secret", -time.Minute)
		token, err := expired.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := jwt.NewService("some-other-secret", time.Hour)
		token, err := other.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Hour)
	adminOnly := user.RoleAdmin
	router := newAuthRouter(t, svc, &adminOnly)

	t.Run("admin passes", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("member is refused", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleMember)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
