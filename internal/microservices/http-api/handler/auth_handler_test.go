package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/service"
)

func TestLogin_Success(t *testing.T) {
	env := setupRouter()

	env.auth.On("Login", mock.Anything, mock.AnythingOfType("string"), "admin", "s3cret").Return(&dto.LoginResponse{
		Token:     "jwt",
		TokenType: "Bearer",
		ExpiresIn: 3600,
	}, nil)

	w := doRequest(t, env, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "s3cret"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt","token_type":"Bearer","expires_in":3600}`, w.Body.String())
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setupRouter()

	env.auth.On("Login", mock.Anything, mock.Anything, "admin", "nope").Return(nil, service.ErrInvalidCredentials)

	w := doRequest(t, env, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "nope"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token\"")
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupRouter()

	w := doRequest(t, env, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Throttled(t *testing.T) {
	env := setupRouter()

	env.auth.On("Login", mock.Anything, mock.Anything, "admin", "x").
		Return(nil, &service.LoginLimitedError{RetryAfter: 90500 * time.Millisecond})

	w := doRequest(t, env, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "x"}, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "91", w.Header().Get("Retry-After"))
}

func TestLogin_InternalError(t *testing.T) {
	env := setupRouter()

	env.auth.On("Login", mock.Anything, mock.Anything, "admin", "x").Return(nil, errors.New("db down"))

	w := doRequest(t, env, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "x"}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestVerify(t *testing.T) {
	env := setupRouter()

	w := doRequest(t, env, http.MethodGet, "/api/admin/verify", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"admin_id":1,"username":"admin"}`, w.Body.String())

	w = doRequest(t, env, http.MethodGet, "/api/admin/verify", nil, map[string]string{"Authorization": "Bearer stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := setupRouter()

	w := doRequest(t, env, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, env, http.MethodGet, "/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	w = doRequest(t, env, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
