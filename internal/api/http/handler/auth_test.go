package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/bookmarks-api/internal/model"
	"github.com/mkravets/bookmarks-api/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func setupAuthEngine(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuth(svc, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.POST("/auth/signup", h.SignUp)
	engine.POST("/auth/signin", h.SignIn)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuth_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"email":"user@example.com","password":"password123"}`,
			setup: func(m *mockAuthService) {
				m.On("SignUp", mock.Anything, "user@example.com", "password123").Return("token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"access_token":"token"}`,
		},
		{
			name: "email taken",
			body: `{"email":"user@example.com","password":"password123"}`,
			setup: func(m *mockAuthService) {
				m.On("SignUp", mock.Anything, "user@example.com", "password123").Return("", model.ErrEmailTaken)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"email already taken"}`,
		},
		{
			name:       "missing email",
			body:       `{"password":"password123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"not-an-email","password":"password123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"user@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name:       "not json",
			body:       `email=user@example.com`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "internal error",
			body: `{"email":"user@example.com","password":"password123"}`,
			setup: func(m *mockAuthService) {
				m.On("SignUp", mock.Anything, "user@example.com", "password123").Return("", errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			engine := setupAuthEngine(svc)

			w := postJSON(t, engine, "/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"email":"user@example.com","password":"password123"}`,
			setup: func(m *mockAuthService) {
				m.On("SignIn", mock.Anything, "user@example.com", "password123").Return("token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"access_token":"token"}`,
		},
		{
			name: "invalid credentials",
			body: `{"email":"user@example.com","password":"wrong"}`,
			setup: func(m *mockAuthService) {
				m.On("SignIn", mock.Anything, "user@example.com", "wrong").Return("", model.ErrInvalidCredentials)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"invalid credentials"}`,
		},
		{
			name:       "missing body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			engine := setupAuthEngine(svc)

			w := postJSON(t, engine, "/auth/signin", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuth_SignIn_FailureBodiesIdentical(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("SignIn", mock.Anything, "ghost@example.com", "password123").Return("", model.ErrInvalidCredentials)
	svc.On("SignIn", mock.Anything, "user@example.com", "wrong").Return("", model.ErrInvalidCredentials)
	engine := setupAuthEngine(svc)

	unknownEmail := postJSON(t, engine, "/auth/signin", `{"email":"ghost@example.com","password":"password123"}`)
	wrongPassword := postJSON(t, engine, "/auth/signin", `{"email":"user@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusForbidden, unknownEmail.Code)
	require.Equal(t, http.StatusForbidden, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}
