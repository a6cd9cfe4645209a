package gameservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokercds/pokercds/internal/bookkeeping"
	"github.com/pokercds/pokercds/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockGameRepo, *MockSessionRepo, *MockMemberRepo) {
	ctrl := gomock.NewController(t)
	gameRepo := NewMockGameRepo(ctrl)
	sessionRepo := NewMockSessionRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	service := New(gameRepo, sessionRepo, memberRepo)
	defer ctrl.Finish()
	return service, gameRepo, sessionRepo, memberRepo
}

func fixtureGame() *domain.Game {
	return &domain.Game{
		ID:          7,
		GameDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "sexta no clube",
	}
}

func fixtureSessions() []domain.PlayerSession {
	return []domain.PlayerSession{
		{
			GameID:      7,
			MemberID:    1,
			MemberName:  "João",
			CreditBuyin: 2,
			FinalChips:  decimal.RequireFromString("140.00"),
		},
		{
			GameID:     7,
			MemberID:   2,
			MemberName: "Maria",
			CashBuyin:  1,
			FinalChips: decimal.RequireFromString("10.00"),
		},
	}
}

func TestCreateGame(t *testing.T) {
	service, gameRepo, _, _ := NewMock(t)
	ctx := context.Background()
	gameDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		gameDate    time.Time
		prepareMock func()
		expectedErr error
	}{
		{
			name:     "Successful creation",
			gameDate: gameDate,
			prepareMock: func() {
				gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, g *domain.Game) (*domain.Game, error) {
						assert.Equal(t, gameDate, g.GameDate)
						g.ID = 7
						return g, nil
					})
			},
			expectedErr: nil,
		},
		{
			name:        "Missing date",
			gameDate:    time.Time{},
			prepareMock: func() {},
			expectedErr: ErrDateRequired,
		},
		{
			name:     "Storage failure",
			gameDate: gameDate,
			prepareMock: func() {
				gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			game, err := service.CreateGame(ctx, tt.gameDate, "sexta no clube")
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, game.ID)
			}
		})
	}
}

func TestUpdateGame(t *testing.T) {
	service, gameRepo, _, _ := NewMock(t)
	ctx := context.Background()
	newDate := time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Successful update",
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
				gameRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, g *domain.Game) (*domain.Game, error) {
						assert.Equal(t, newDate, g.GameDate)
						assert.Equal(t, "remarcada", g.Description)
						return g, nil
					})
			},
			expectedErr: nil,
		},
		{
			name: "Game not found",
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedErr: ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.UpdateGame(ctx, 7, newDate, "remarcada")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteGame(t *testing.T) {
	service, gameRepo, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Successful deletion", func(t *testing.T) {
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		gameRepo.EXPECT().Delete(gomock.Any(), 7).Return(nil)
		assert.NoError(t, service.DeleteGame(ctx, 7))
	})

	t.Run("Game not found", func(t *testing.T) {
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
		assert.ErrorIs(t, service.DeleteGame(ctx, 7), ErrGameNotFound)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Hydrates aggregate with computed totals", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		snap, err := service.Load(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, snap.Game.ID)
		assert.Len(t, snap.Players, 2)
		assert.Equal(t, 2, snap.Totals.TotalCreditBuyins)
		assert.Equal(t, 1, snap.Totals.TotalCashBuyins)
		assert.Equal(t, "150.00", snap.Totals.TotalFinalChips.StringFixed(2))
	})

	t.Run("Second load reuses the cached aggregate", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil).Times(1)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil).Times(1)

		_, err := service.Load(context.Background(), 7)
		assert.NoError(t, err)
		_, err = service.Load(context.Background(), 7)
		assert.NoError(t, err)
	})

	t.Run("Game not found", func(t *testing.T) {
		service, gameRepo, _, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		snap, err := service.Load(context.Background(), 99)
		assert.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, snap)
	})
}

func TestAddPlayer(t *testing.T) {
	t.Run("Successful addition creates a blank session", func(t *testing.T) {
		service, gameRepo, sessionRepo, memberRepo := NewMock(t)
		memberRepo.EXPECT().FindByID(gomock.Any(), 3).Return(
			&domain.Member{ID: 3, Name: "Pedro Santos", Nickname: "pedrão"}, nil)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
		sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.PlayerSession) (*domain.PlayerSession, error) {
				assert.Equal(t, 7, s.GameID)
				assert.Equal(t, 3, s.MemberID)
				assert.Equal(t, "pedrão", s.MemberName)
				assert.Equal(t, 0, s.CreditBuyin)
				return s, nil
			})

		snap, err := service.AddPlayer(context.Background(), 7, 3)
		assert.NoError(t, err)
		assert.Len(t, snap.Players, 3)
	})

	t.Run("Unknown member", func(t *testing.T) {
		service, _, _, memberRepo := NewMock(t)
		memberRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		snap, err := service.AddPlayer(context.Background(), 7, 99)
		assert.ErrorIs(t, err, ErrMemberNotFound)
		assert.Nil(t, snap)
	})

	t.Run("Member already in the game", func(t *testing.T) {
		service, gameRepo, sessionRepo, memberRepo := NewMock(t)
		memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(
			&domain.Member{ID: 1, Name: "João"}, nil)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		_, err := service.AddPlayer(context.Background(), 7, 1)
		assert.ErrorIs(t, err, bookkeeping.ErrMemberInGame)
	})
}

func TestRemovePlayer(t *testing.T) {
	service, gameRepo, sessionRepo, _ := NewMock(t)
	gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
	sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
	sessionRepo.EXPECT().Delete(gomock.Any(), 7, 2).Return(nil)

	snap, err := service.RemovePlayer(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.Len(t, snap.Players, 1)
	assert.Equal(t, 0, snap.Totals.TotalCashBuyins)
}

func TestBuyinCounters(t *testing.T) {
	t.Run("Increment persists the mutated session", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
		sessionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.PlayerSession) (*domain.PlayerSession, error) {
				assert.Equal(t, 1, s.MemberID)
				assert.Equal(t, 3, s.CreditBuyin)
				return s, nil
			})

		snap, err := service.IncrementCreditBuyin(context.Background(), 7, 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, snap.Totals.TotalCreditBuyins)
	})

	t.Run("Decrement floors at zero without touching storage state", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
		sessionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.PlayerSession) (*domain.PlayerSession, error) {
				assert.Equal(t, 0, s.CashBuyin)
				return s, nil
			})

		// member 1 has no cash buy-ins; the counter stays at zero
		snap, err := service.DecrementCashBuyin(context.Background(), 7, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, snap.Totals.TotalCashBuyins)
	})

	t.Run("Storage failure evicts the aggregate", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil).Times(2)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil).Times(2)
		sessionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.IncrementCashBuyin(context.Background(), 7, 2)
		assert.ErrorContains(t, err, "db error")

		// the next load rereads committed state instead of the failed mutation
		snap, err := service.Load(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, snap.Totals.TotalCashBuyins)
	})

	t.Run("Unknown member", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		_, err := service.IncrementCreditBuyin(context.Background(), 7, 99)
		assert.ErrorIs(t, err, bookkeeping.ErrMemberNotInGame)
	})
}

func TestSetMonetaryField(t *testing.T) {
	t.Run("Successful set recomputes totals", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
		sessionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.PlayerSession) (*domain.PlayerSession, error) {
				assert.Equal(t, "25.50", s.Rango.StringFixed(2))
				return s, nil
			})

		snap, err := service.SetMonetaryField(context.Background(), 7, 1, bookkeeping.FieldRango, "25.5")
		assert.NoError(t, err)
		assert.Equal(t, "25.50", snap.Totals.TotalRango.StringFixed(2))
	})

	t.Run("Invalid amount is rejected before storage", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		_, err := service.SetMonetaryField(context.Background(), 7, 1, bookkeeping.FieldRango, "abc")
		assert.ErrorIs(t, err, bookkeeping.ErrInvalidAmount)
	})
}

func TestInlineEditFlow(t *testing.T) {
	t.Run("Begin then commit applies the staged value", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)
		sessionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.PlayerSession) (*domain.PlayerSession, error) {
				assert.Equal(t, "200.00", s.FinalChips.StringFixed(2))
				return s, nil
			})

		err := service.BeginInlineEdit(context.Background(), 7, 1, bookkeeping.FieldFinalChips, "140.00")
		assert.NoError(t, err)

		snap, err := service.CommitInlineEdit(context.Background(), 7, 1, bookkeeping.FieldFinalChips, "200")
		assert.NoError(t, err)
		assert.Equal(t, "200.00", snap.Players[0].FinalChips.StringFixed(2))
	})

	t.Run("Cancel discards the stage", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		err := service.BeginInlineEdit(context.Background(), 7, 1, bookkeeping.FieldFinalChips, "140.00")
		assert.NoError(t, err)
		assert.NoError(t, service.CancelInlineEdit(context.Background(), 7))

		_, err = service.CommitInlineEdit(context.Background(), 7, 1, bookkeeping.FieldFinalChips, "")
		assert.ErrorIs(t, err, bookkeeping.ErrNoActiveEdit)
	})

	t.Run("Commit without a matching edit", func(t *testing.T) {
		service, gameRepo, sessionRepo, _ := NewMock(t)
		gameRepo.EXPECT().FindByID(gomock.Any(), 7).Return(fixtureGame(), nil)
		sessionRepo.EXPECT().FindByGameID(gomock.Any(), 7).Return(fixtureSessions(), nil)

		_, err := service.CommitInlineEdit(context.Background(), 7, 2, bookkeeping.FieldPingo, "")
		assert.ErrorIs(t, err, bookkeeping.ErrNoActiveEdit)
	})
}
