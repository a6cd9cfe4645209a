package members

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/dto"
	memberservice "github.com/pokercds/pokercds/internal/service/memberservice"
	pkgauth "github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/utils"
)

func NewMock(t *testing.T) (*MemberHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"cpf":"123.456.789-01","name":"João Silva","nickname":"joãozinho","email":"joao@example.com","pix_key":"joao@example.com","password":"secret1","confirm_password":"secret1"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, input memberservice.RegisterInput) (*domain.Member, error) {
						assert.Equal(t, "123.456.789-01", input.CPF)
						assert.Equal(t, "joãozinho", input.Nickname)
						return &domain.Member{
							ID:        1,
							CPF:       "12345678901",
							Name:      input.Name,
							Nickname:  input.Nickname,
							IsEnabled: true,
						}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate CPF",
			body: `{"cpf":"123.456.789-01","name":"João Silva","nickname":"joãozinho","email":"joao@example.com","pix_key":"joao@example.com","password":"secret1","confirm_password":"secret1"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, memberservice.ErrCPFTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: memberservice.ErrCPFTaken.Error(),
		},
		{
			name: "Password too short",
			body: `{"cpf":"123.456.789-01","name":"João Silva","nickname":"joãozinho","email":"joao@example.com","pix_key":"joao@example.com","password":"abc","confirm_password":"abc"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, pkgauth.ErrPasswordTooShort)
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

			req := httptest.NewRequest("POST", "/api/members", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

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

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Defaults pagination and maps display names", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 100, 0).Return([]domain.Member{
			{ID: 1, Name: "João Silva", Nickname: "joãozinho", IsEnabled: true},
			{ID: 2, Name: "Maria Souza", IsEnabled: false},
		}, nil)

		req := httptest.NewRequest("GET", "/api/members", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.MemberResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "joãozinho", resp[0].DisplayName)
		assert.Equal(t, "Maria Souza", resp[1].DisplayName)
	})

	t.Run("Explicit pagination is passed through", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 10, 20).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/members?limit=10&offset=20", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 100, 0).Return(nil, assert.AnError)

		req := httptest.NewRequest("GET", "/api/members", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		memberID     string
		actorID      int
		isAdmin      bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Own profile",
			memberID: "1",
			actorID:  1,
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(&domain.Member{ID: 1, Name: "João Silva"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Admin reads another profile",
			memberID: "1",
			actorID:  2,
			isAdmin:  true,
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(&domain.Member{ID: 1, Name: "João Silva"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non-admin reads another profile",
			memberID:     "1",
			actorID:      2,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:     "Not found",
			memberID: "99",
			actorID:  99,
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 99).Return(nil, memberservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			memberID:     "abc",
			actorID:      1,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/members/"+tt.memberID, nil)
			req = withURLParam(req, "memberID", tt.memberID)
			ctx := context.WithValue(req.Context(), pkgauth.MemberIDKey, tt.actorID)
			ctx = context.WithValue(ctx, pkgauth.IsAdminKey, tt.isAdmin)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		actorID      int
		isAdmin      bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Admin changes nickname",
			body:    `{"name":"João Silva","nickname":"novo","email":"joao@example.com","pix_key":"joao@example.com"}`,
			actorID: 2,
			isAdmin: true,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, memberservice.UpdateInput{
					Name:     "João Silva",
					Nickname: "novo",
					Email:    "joao@example.com",
					PixKey:   "joao@example.com",
				}, true).Return(&domain.Member{ID: 1, Name: "João Silva", Nickname: "novo"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Non-admin nickname change rejected",
			body:    `{"name":"João Silva","nickname":"novo","email":"joao@example.com","pix_key":"joao@example.com"}`,
			actorID: 1,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, gomock.Any(), false).Return(nil, memberservice.ErrNicknameLocked)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Non-admin edits another member's profile",
			body:         `{"name":"João Silva","email":"joao@example.com","pix_key":"attacker-pix-key"}`,
			actorID:      2,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Unknown member",
			body:    `{"name":"João Silva","email":"joao@example.com","pix_key":"joao@example.com"}`,
			actorID: 1,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, gomock.Any(), false).Return(nil, memberservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			actorID:      1,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PUT", "/api/members/1", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "memberID", "1")
			ctx := context.WithValue(req.Context(), pkgauth.MemberIDKey, tt.actorID)
			ctx = context.WithValue(ctx, pkgauth.IsAdminKey, tt.isAdmin)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSetEnabledHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Disable member",
			body: `{"enabled":false}`,
			prepareMock: func() {
				service.EXPECT().SetEnabled(gomock.Any(), 1, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Re-enable member",
			body: `{"enabled":true}`,
			prepareMock: func() {
				service.EXPECT().SetEnabled(gomock.Any(), 1, true).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown member",
			body: `{"enabled":false}`,
			prepareMock: func() {
				service.EXPECT().SetEnabled(gomock.Any(), 1, false).Return(memberservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PUT", "/api/members/1/enabled", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "memberID", "1")
			rr := httptest.NewRecorder()

			handler.SetEnabled(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
