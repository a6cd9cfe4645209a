package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokercds/pokercds/internal/domain"
	authservice "github.com/pokercds/pokercds/internal/service/authservice"
	pkgauth "github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"cpf":"123.456.789-01","password":"secret1"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "123.456.789-01", "secret1").Return(&domain.Member{
					ID:      1,
					CPF:     "12345678901",
					IsAdmin: true,
				}, nil)
				service.EXPECT().GenerateToken(1, true).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"cpf":"123.456.789-01","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "123.456.789-01", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Disabled member cannot log in",
			body: `{"cpf":"123.456.789-01","password":"secret1"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "123.456.789-01", "secret1").Return(nil, authservice.ErrMemberDisabled)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"cpf":"123.456.789-01","password":"secret1"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "123.456.789-01", "secret1").Return(&domain.Member{ID: 1}, nil)
				service.EXPECT().GenerateToken(1, false).Return("", assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestChangePasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful change",
			body: `{"current_password":"secret1","new_password":"secret2","confirm_password":"secret2"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "secret1", "secret2", "secret2").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong current password",
			body: `{"current_password":"nope","new_password":"secret2","confirm_password":"secret2"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "nope", "secret2", "secret2").Return(authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Current password does not match",
		},
		{
			name: "New password too short",
			body: `{"current_password":"secret1","new_password":"abc","confirm_password":"abc"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "secret1", "abc", "abc").Return(pkgauth.ErrPasswordTooShort)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: pkgauth.ErrPasswordTooShort.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/password", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(context.WithValue(req.Context(), pkgauth.MemberIDKey, 1))
			rr := httptest.NewRecorder()

			handler.ChangePassword(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
