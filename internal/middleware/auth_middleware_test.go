package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAuth(accessExp time.Duration) (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "hostelhub.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       42,
		Email:    "staff@example.com",
		RoleType: role,
	})
	require.NoError(t, err)
	return access
}

func protectedRouter(mw *AuthMiddleware, required models.RoleType, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	group := router.Group("/manage", mw.JWTAuth(), mw.RequireRole(required))
	group.GET("/ping", handler)
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	mw, _ := newTestAuth(time.Hour)
	router := protectedRouter(mw, models.RoleStaff, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header missing")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	mw, _ := newTestAuth(time.Hour)
	router := protectedRouter(mw, models.RoleStaff, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token format")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	mw, jwtService := newTestAuth(-time.Minute)
	router := protectedRouter(mw, models.RoleStaff, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStaff))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_003")
}

func TestJWTAuthSetsCallerIdentity(t *testing.T) {
	mw, jwtService := newTestAuth(time.Hour)

	var gotID int64
	var gotRole models.RoleType
	router := protectedRouter(mw, models.RoleStaff, func(c *gin.Context) {
		id, ok := CallerID(c)
		require.True(t, ok)
		role, ok := CallerRole(c)
		require.True(t, ok)
		gotID, gotRole = id, role
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestRequireRoleRejectsLowerRole(t *testing.T) {
	mw, jwtService := newTestAuth(time.Hour)
	router := protectedRouter(mw, models.RoleAdmin, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStaff))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleSuperAdminRejectsAdmin(t *testing.T) {
	mw, jwtService := newTestAuth(time.Hour)
	router := protectedRouter(mw, models.RoleSuperAdmin, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAcceptsHigherRole(t *testing.T) {
	mw, jwtService := newTestAuth(time.Hour)
	router := protectedRouter(mw, models.RoleStaff, func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manage/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleSuperAdmin))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
