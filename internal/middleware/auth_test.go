package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "64f000000000000000000001",
		"role": role,
		"exp":  time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/orders/:id/status", AdminOnly(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role"), "subject": c.GetString("subject")})
	})
	return r
}

func doPatch(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/orders/abc/status", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthGuardMissingToken(t *testing.T) {
	w := doPatch(guardedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthGuardMalformedHeader(t *testing.T) {
	w := doPatch(guardedRouter(), "Token abc.def.ghi")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuardGarbageToken(t *testing.T) {
	w := doPatch(guardedRouter(), "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuardExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, "admin", -time.Hour)
	w := doPatch(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuardWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "admin", time.Hour)
	w := doPatch(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuardNonAdminRole(t *testing.T) {
	token := signToken(t, testSecret, "user", time.Hour)
	w := doPatch(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin privileges required")
}

func TestAuthGuardAdminPasses(t *testing.T) {
	token := signToken(t, testSecret, "admin", time.Hour)
	w := doPatch(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"subject":"64f000000000000000000001"`)
}

func TestAuthGuardNoRolesAcceptsAnyValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthGuard(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})

	token := signToken(t, testSecret, "user", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
