package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokercds/pokercds/internal/bookkeeping"
	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/dto"
	gameservice "github.com/pokercds/pokercds/internal/service/gameservice"
	"github.com/pokercds/pokercds/internal/settlement"
	"github.com/pokercds/pokercds/pkg/utils"
)

func NewMock(t *testing.T) (*SessionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func fixtureSnapshot() *gameservice.Snapshot {
	dec := decimal.RequireFromString
	return &gameservice.Snapshot{
		Game: domain.Game{
			ID:          7,
			GameDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			Description: "sexta no clube",
		},
		Players: []bookkeeping.PlayerView{
			{
				PlayerSession: domain.PlayerSession{
					GameID:      7,
					MemberID:    1,
					MemberName:  "João",
					CreditBuyin: 2,
					FinalChips:  dec("140.00"),
				},
				CalculatedBalance: dec("40.00"),
				BalanceClass:      settlement.ClassSurplus,
			},
		},
		Totals: bookkeeping.TotalsView{
			Totals: settlement.Totals{
				TotalCreditBuyins: 2,
				TotalFinalChips:   dec("140.00"),
				TotalRango:        dec("0"),
				TotalPingo:        dec("0"),
				TotalReceived:     dec("0"),
				TotalBalance:      dec("40.00"),
			},
			TotalBalanceClass:    settlement.ClassSurplus,
			ChipDiscrepancy:      dec("-40.00"),
			ChipDiscrepancyClass: settlement.ClassDeficit,
		},
	}
}

func TestGetHandler(t *testing.T) {
	t.Run("Renders the full view with 2-dp strings", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Load(gomock.Any(), 7).Return(fixtureSnapshot(), nil)

		req := httptest.NewRequest("GET", "/api/games/7/sessions", nil)
		req = withURLParams(req, map[string]string{"gameID": "7"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.GameSessionsResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2025-03-14", resp.Game.GameDate)
		assert.Len(t, resp.Players, 1)
		assert.Equal(t, "140.00", resp.Players[0].FinalChips)
		assert.Equal(t, "40.00", resp.Players[0].CalculatedBalance)
		assert.Equal(t, "surplus", resp.Players[0].BalanceClass)
		assert.Equal(t, "-40.00", resp.Totals.ChipDiscrepancy)
		assert.Equal(t, "deficit", resp.Totals.ChipDiscrepancyClass)
	})

	t.Run("Unknown game", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Load(gomock.Any(), 99).Return(nil, gameservice.ErrGameNotFound)

		req := httptest.NewRequest("GET", "/api/games/99/sessions", nil)
		req = withURLParams(req, map[string]string{"gameID": "99"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid game id", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := httptest.NewRequest("GET", "/api/games/abc/sessions", nil)
		req = withURLParams(req, map[string]string{"gameID": "abc"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAddPlayerHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Successful addition",
			body: `{"member_id":3}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddPlayer(gomock.Any(), 7, 3).Return(fixtureSnapshot(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Member already in the game",
			body: `{"member_id":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddPlayer(gomock.Any(), 7, 1).Return(nil, bookkeeping.ErrMemberInGame)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown member",
			body: `{"member_id":99}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddPlayer(gomock.Any(), 7, 99).Return(nil, gameservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/games/7/players", bytes.NewReader([]byte(tt.body)))
			req = withURLParams(req, map[string]string{"gameID": "7"})
			rr := httptest.NewRecorder()

			handler.AddPlayer(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRemovePlayerHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().RemovePlayer(gomock.Any(), 7, 1).Return(fixtureSnapshot(), nil)

	req := httptest.NewRequest("DELETE", "/api/games/7/players/1", nil)
	req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
	rr := httptest.NewRecorder()

	handler.RemovePlayer(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCounterHandlers(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(service *MockService)
		call    func(h *SessionHandler, w http.ResponseWriter, r *http.Request)
		path    string
	}{
		{
			name: "credit increment",
			prepare: func(service *MockService) {
				service.EXPECT().IncrementCreditBuyin(gomock.Any(), 7, 1).Return(fixtureSnapshot(), nil)
			},
			call: (*SessionHandler).IncrementCreditBuyin,
			path: "/api/games/7/sessions/1/credit-buyin/increment",
		},
		{
			name: "credit decrement",
			prepare: func(service *MockService) {
				service.EXPECT().DecrementCreditBuyin(gomock.Any(), 7, 1).Return(fixtureSnapshot(), nil)
			},
			call: (*SessionHandler).DecrementCreditBuyin,
			path: "/api/games/7/sessions/1/credit-buyin/decrement",
		},
		{
			name: "cash increment",
			prepare: func(service *MockService) {
				service.EXPECT().IncrementCashBuyin(gomock.Any(), 7, 1).Return(fixtureSnapshot(), nil)
			},
			call: (*SessionHandler).IncrementCashBuyin,
			path: "/api/games/7/sessions/1/cash-buyin/increment",
		},
		{
			name: "cash decrement",
			prepare: func(service *MockService) {
				service.EXPECT().DecrementCashBuyin(gomock.Any(), 7, 1).Return(fixtureSnapshot(), nil)
			},
			call: (*SessionHandler).DecrementCashBuyin,
			path: "/api/games/7/sessions/1/cash-buyin/decrement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepare(service)

			req := httptest.NewRequest("POST", tt.path, nil)
			req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
			rr := httptest.NewRecorder()

			tt.call(handler, rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}

	t.Run("member not in game", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().IncrementCreditBuyin(gomock.Any(), 7, 99).Return(nil, bookkeeping.ErrMemberNotInGame)

		req := httptest.NewRequest("POST", "/api/games/7/sessions/99/credit-buyin/increment", nil)
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "99"})
		rr := httptest.NewRecorder()

		handler.IncrementCreditBuyin(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSetFieldHandler(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Successful set",
			field: "final_chips",
			body:  `{"value":"140.00"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetMonetaryField(gomock.Any(), 7, 1, bookkeeping.FieldFinalChips, "140.00").Return(fixtureSnapshot(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Negative amount rejected",
			field: "rango",
			body:  `{"value":"-5.00"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetMonetaryField(gomock.Any(), 7, 1, bookkeeping.FieldRango, "-5.00").Return(nil, bookkeeping.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: bookkeeping.ErrInvalidAmount.Error(),
		},
		{
			name:         "Unknown field",
			field:        "stack",
			body:         `{"value":"1.00"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			field:        "pingo",
			body:         `{invalid json`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("PUT", "/api/games/7/sessions/1/fields/"+tt.field, bytes.NewReader([]byte(tt.body)))
			req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1", "field": tt.field})
			rr := httptest.NewRecorder()

			handler.SetField(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestInlineEditHandlers(t *testing.T) {
	t.Run("Begin", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().BeginInlineEdit(gomock.Any(), 7, 1, bookkeeping.FieldFinalChips, "0.00").Return(nil)

		body := `{"field":"final_chips","current_value":"0.00"}`
		req := httptest.NewRequest("POST", "/api/games/7/sessions/1/edit", bytes.NewReader([]byte(body)))
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
		rr := httptest.NewRecorder()

		handler.BeginEdit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Begin with unknown field", func(t *testing.T) {
		handler, _ := NewMock(t)

		body := `{"field":"stack","current_value":"0.00"}`
		req := httptest.NewRequest("POST", "/api/games/7/sessions/1/edit", bytes.NewReader([]byte(body)))
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
		rr := httptest.NewRecorder()

		handler.BeginEdit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Cancel", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CancelInlineEdit(gomock.Any(), 7).Return(nil)

		req := httptest.NewRequest("DELETE", "/api/games/7/edit", nil)
		req = withURLParams(req, map[string]string{"gameID": "7"})
		rr := httptest.NewRecorder()

		handler.CancelEdit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Commit with typed value", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CommitInlineEdit(gomock.Any(), 7, 1, bookkeeping.FieldFinalChips, "55.5").Return(fixtureSnapshot(), nil)

		body := `{"field":"final_chips","value":"55.5"}`
		req := httptest.NewRequest("POST", "/api/games/7/sessions/1/edit/commit", bytes.NewReader([]byte(body)))
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
		rr := httptest.NewRecorder()

		handler.CommitEdit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Commit without an active edit", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CommitInlineEdit(gomock.Any(), 7, 1, bookkeeping.FieldPingo, "").Return(nil, bookkeeping.ErrNoActiveEdit)

		body := `{"field":"pingo"}`
		req := httptest.NewRequest("POST", "/api/games/7/sessions/1/edit/commit", bytes.NewReader([]byte(body)))
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
		rr := httptest.NewRecorder()

		handler.CommitEdit(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Commit with rejected value keeps 422 contract", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CommitInlineEdit(gomock.Any(), 7, 1, bookkeeping.FieldRango, "abc").Return(nil, bookkeeping.ErrInvalidAmount)

		body := `{"field":"rango","value":"abc"}`
		req := httptest.NewRequest("POST", "/api/games/7/sessions/1/edit/commit", bytes.NewReader([]byte(body)))
		req = withURLParams(req, map[string]string{"gameID": "7", "memberID": "1"})
		rr := httptest.NewRecorder()

		handler.CommitEdit(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
