package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"animehub/internal/microservices/http-api/service"
)

type stubValidator struct {
	claims *service.Claims
	err    error
	got    string
}

func (s *stubValidator) ValidateToken(token string) (*service.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func authRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/verify", AuthMiddleware(v), func(c *gin.Context) {
		claims, ok := AdminClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": claims.AdminID, "username": c.GetString(ContextUsername)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  *stubValidator
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			validator:  &stubValidator{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "missing authorization header",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			validator:  &stubValidator{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid authorization header format",
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			validator:  &stubValidator{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid authorization header format",
		},
		{
			name:       "invalid token",
			header:     "Bearer nope",
			validator:  &stubValidator{err: service.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid token",
		},
		{
			name:       "expired token",
			header:     "Bearer old",
			validator:  &stubValidator{err: service.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "token has expired",
		},
		{
			name:       "valid token",
			header:     "Bearer good",
			validator:  &stubValidator{claims: &service.Claims{AdminID: 3, Username: "root"}},
			wantStatus: http.StatusOK,
			wantBody:   `"username":"root"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/admin/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			authRouter(tt.validator).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_PassesBareToken(t *testing.T) {
	v := &stubValidator{claims: &service.Claims{AdminID: 1}}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	req.Header.Set("Authorization", "bearer abc.def.ghi")
	authRouter(v).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc.def.ghi", v.got)
}
