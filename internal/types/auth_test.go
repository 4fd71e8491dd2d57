package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: CreateUserRequest{
				Name:     "Priya Raman",
				Email:    "priya@jobseeker.dev",
				Password: "hunter2hunter2",
				Phone:    "555-204-7788",
			},
		},
		{
			name: "valid request without phone",
			request: CreateUserRequest{
				Name:     "Marcus Webb",
				Email:    "marcus@jobseeker.dev",
				Password: "hunter2hunter2",
			},
		},
		{
			name: "missing name",
			request: CreateUserRequest{
				Email:    "priya@jobseeker.dev",
				Password: "hunter2hunter2",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: CreateUserRequest{
				Name:     "Priya Raman",
				Email:    "not-an-email",
				Password: "hunter2hunter2",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: CreateUserRequest{
				Name:     "Priya Raman",
				Email:    "priya@jobseeker.dev",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "password exactly 8 characters",
			request: CreateUserRequest{
				Name:     "Priya Raman",
				Email:    "priya@jobseeker.dev",
				Password: "12345678",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: LoginRequest{
				Email:    "priya@jobseeker.dev",
				Password: "hunter2hunter2",
			},
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "hunter2hunter2"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: LoginRequest{
				Email:    "not-an-email",
				Password: "hunter2hunter2",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "priya@jobseeker.dev"},
			wantErr: true,
			errMsg:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginResponse_Serialization(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	response := LoginResponse{
		User: &User{
			ID:        userID,
			Name:      "Priya Raman",
			Email:     "priya@jobseeker.dev",
			Phone:     "555-204-7788",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token: "eyJ-fake-portal-token",
	}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, userID.String())
	assert.Contains(t, jsonStr, "Priya Raman")
	assert.Contains(t, jsonStr, "eyJ-fake-portal-token")
	assert.NotContains(t, jsonStr, "password")

	var unmarshaled LoginResponse
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, response.Token, unmarshaled.Token)
	require.NotNil(t, unmarshaled.User)
	assert.Equal(t, userID, unmarshaled.User.ID)
	assert.Equal(t, "priya@jobseeker.dev", unmarshaled.User.Email)
}
