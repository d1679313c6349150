package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/infrastructure/auth"
	"sips/internal/shared/authorization"
	"sips/internal/shared/constants"
	"sips/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(t *testing.T, jwtService *auth.JWTService, strict bool) *gin.Engine {
	t.Helper()

	m := NewAuthMiddleware(jwtService, &mockLogger{})

	engine := gin.New()
	var guard gin.HandlerFunc
	if strict {
		guard = m.RequireAuth()
	} else {
		guard = m.OptionalAuth()
	}

	engine.GET("/probe", guard, func(c *gin.Context) {
		userID, _ := c.Get(constants.ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})

	return engine
}

func TestAuthMiddleware_RequireAuth_Cookie(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	token, err := jwtService.Generate(42, "google:abc", authorization.RoleUser)
	require.NoError(t, err)

	engine := newAuthTestRouter(t, jwtService, true)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuthMiddleware_RequireAuth_BearerFallback(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	token, err := jwtService.Generate(7, "google:xyz", authorization.RoleAdmin)
	require.NoError(t, err)

	engine := newAuthTestRouter(t, jwtService, true)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthMiddleware_RequireAuth_Rejections(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	engine := newAuthTestRouter(t, jwtService, true)

	tests := []struct {
		name    string
		arrange func(req *http.Request)
	}{
		{
			name:    "missing token",
			arrange: func(req *http.Request) {},
		},
		{
			name: "malformed header",
			arrange: func(req *http.Request) {
				req.Header.Set("Authorization", "Token abc")
			},
		},
		{
			name: "garbage token",
			arrange: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "not-a-jwt"})
			},
		},
		{
			name: "token signed with another secret",
			arrange: func(req *http.Request) {
				other := auth.NewJWTService("other-secret", 1)
				token, err := other.Generate(1, "google:abc", authorization.RoleUser)
				require.NoError(t, err)
				req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: token})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			tt.arrange(req)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	engine := newAuthTestRouter(t, jwtService, false)

	t.Run("anonymous request passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":null`)
	})

	t.Run("invalid token passes as anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "junk"})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":null`)
	})

	t.Run("valid token populates context", func(t *testing.T) {
		token, err := jwtService.Generate(9, "google:abc", authorization.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: token})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":9`)
	})
}
