package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"broker_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, username, email, password string) error
	LoginFunc  func(ctx context.Context, username, password string) (string, error)
}

// Signup is the mock implementation of the Signup method.
func (m *mockAuthUsecase) Signup(ctx context.Context, username, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, username, email, password)
	}
	return nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "", errors.New("login failed") // Default: failure
}

func authRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, username, email, password string) error
		expectedStatus int
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, username, email, password string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "success: email is optional",
			requestBody:    gin.H{"username": "alice", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, username, email, password string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"username": "alice", "email": "invalid-email", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"username": "alice", "email": "alice@example.com", "password": "short"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short username",
			requestBody:    gin.H{"username": "al", "email": "alice@example.com", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate username",
			requestBody: gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, username, email, password string) error {
				return usecase.ErrUsernameAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}

			w := postJSON(authRouter(uc), "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusConflict {
				assert.NotContains(t, w.Body.String(), "exists", "response must not confirm the username is taken")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, username, password string) (string, error)
		expectedStatus int
		expectedToken  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "signed-token",
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"username": "alice"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: bad credentials",
			requestBody: gin.H{"username": "alice", "password": "wrong-password"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}

			w := postJSON(authRouter(uc), "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedToken != "" {
				var body gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedToken, body["token"])
			}
		})
	}
}
