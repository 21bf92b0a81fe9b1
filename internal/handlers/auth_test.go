package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gearted/gearted-backend/internal/models"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testUser() *models.UserDB {
	return &models.UserDB{UserID: uuid.New(), Username: "john", Email: "john@example.com", Provider: models.ProviderLocal}
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name          string
		body          any
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: RegisterRequest{Username: "john", Email: "john@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "john@example.com", "secret").Return("tok", user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "secret").Return("", nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: services.ErrUserAlreadyExists.Error(),
		},
		{
			name: "short password",
			body: RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "bob", "bob@example.com", "123").
					Return("", nil, fmt.Errorf("%w: password must be at least 6 characters", services.ErrInvalidField))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid field value: password must be at least 6 characters",
		},
		{
			name: "internal server error",
			body: RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "secret"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "bob", "bob@example.com", "secret").Return("", nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          "{invalid json}",
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, jsonRequest(t, http.MethodPost, "/auth/register", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}
			assert.Equal(t, "tok", resp["token"])
			assert.Equal(t, "john", resp["user"].(map[string]any)["username"])
			assert.NotContains(t, resp["user"], "passwordHash")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name          string
		body          any
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: LoginRequest{Email: "john@example.com", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return("tok", user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: LoginRequest{Email: "john@example.com", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: services.ErrInvalidCredentials.Error(),
		},
		{
			name: "oauth only account",
			body: LoginRequest{Email: "john@example.com", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil, services.ErrOAuthOnlyAccount)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: services.ErrOAuthOnlyAccount.Error(),
		},
		{
			name:          "invalid json",
			body:          "nope",
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, jsonRequest(t, http.MethodPost, "/auth/login", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}
			assert.Equal(t, "tok", resp["token"])
		})
	}
}

func TestOAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name         string
		provider     string
		mockSetup    func(m *MockProviderLoginer)
		expectedCode int
	}{
		{
			name:     "success",
			provider: "google",
			mockSetup: func(m *MockProviderLoginer) {
				m.EXPECT().LoginWithProvider(gomock.Any(), models.ProviderGoogle, "provider-token").Return("tok", user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "unsupported provider",
			provider: "myspace",
			mockSetup: func(m *MockProviderLoginer) {
				m.EXPECT().LoginWithProvider(gomock.Any(), models.Provider("myspace"), gomock.Any()).Return("", nil, services.ErrUnsupportedProvider)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "provider timeout",
			provider: "facebook",
			mockSetup: func(m *MockProviderLoginer) {
				m.EXPECT().LoginWithProvider(gomock.Any(), models.ProviderFacebook, gomock.Any()).Return("", nil, services.ErrUpstreamTimeout)
			},
			expectedCode: http.StatusGatewayTimeout,
		},
		{
			name:     "rejected token",
			provider: "google",
			mockSetup: func(m *MockProviderLoginer) {
				m.EXPECT().LoginWithProvider(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProviderLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := jsonRequest(t, http.MethodPost, "/auth/oauth/"+tt.provider, OAuthRequest{Token: "provider-token"})
			req = withURLParams(req, map[string]string{"provider": tt.provider})
			rr := httptest.NewRecorder()
			NewOAuthHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()
	mockSvc := NewMockProfileGetter(ctrl)

	rr := httptest.NewRecorder()
	NewMeHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	mockSvc.EXPECT().Me(gomock.Any(), user.UserID).Return(user, nil)
	rr = httptest.NewRecorder()
	NewMeHandler(mockSvc)(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/auth/me", nil), user.Identity()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, user.UserID.String(), decodeBody(t, rr)["user"].(map[string]any)["id"])

	mockSvc.EXPECT().Me(gomock.Any(), user.UserID).Return(nil, services.ErrUserNotFound)
	rr = httptest.NewRecorder()
	NewMeHandler(mockSvc)(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/auth/me", nil), user.Identity()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
