package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchen/career-portal/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *memoryUserStore) {
	store := newMemoryUserStore()
	return NewAuthHandler(newTestUserService(store), newTestJWTService()), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Password: "correct horse battery",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	handler, _ := newTestAuthHandler()

	tests := []struct {
		name string
		req  types.CreateUserRequest
	}{
		{
			name: "missing email",
			req:  types.CreateUserRequest{Name: "Jane", Password: "correct horse battery"},
		},
		{
			name: "bad email",
			req:  types.CreateUserRequest{Name: "Jane", Email: "not-an-email", Password: "correct horse battery"},
		},
		{
			name: "short password",
			req:  types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "short"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.Register, "/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := newTestAuthHandler()
	req := types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	}

	rec := postJSON(t, handler.Register, "/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// The issued token must round-trip through the JWT service
	claims, err := handler.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct horse battery",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
