package gamerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/pokercds/pokercds/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	gameDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		SELECT id, game_date, COALESCE(description, ''), created_at
		FROM games
		WHERE id = $1
	`)

	tests := []struct {
		name      string
		gameID    int
		mockSetup func()
		expectErr bool
		result    *domain.Game
	}{
		{
			name:   "Game found",
			gameID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "game_date", "description", "created_at"}).
					AddRow(7, gameDate, "sexta no clube", createdAt)
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Game{
				ID:          7,
				GameDate:    gameDate,
				Description: "sexta no clube",
				CreatedAt:   createdAt,
			},
		},
		{
			name:   "Game not found",
			gameID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			gameID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.gameID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	gameDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		INSERT INTO games (game_date, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`)

	t.Run("Create game successfully", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gameDate, "sexta no clube").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

		result, err := repo.Create(context.Background(), &domain.Game{
			GameDate:    gameDate,
			Description: "sexta no clube",
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
		assert.Equal(t, createdAt, result.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gameDate, "").
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), &domain.Game{GameDate: gameDate})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	gameDate := time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		UPDATE games
		SET game_date = $1, description = $2
		WHERE id = $3
		RETURNING id
	`)

	t.Run("Update game successfully", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gameDate, "remarcado", 7).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		result, err := repo.Update(context.Background(), &domain.Game{
			ID:          7,
			GameDate:    gameDate,
			Description: "remarcado",
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gameDate, "remarcado", 7).
			WillReturnError(errors.New("database error"))

		result, err := repo.Update(context.Background(), &domain.Game{
			ID:          7,
			GameDate:    gameDate,
			Description: "remarcado",
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`DELETE FROM games WHERE id = $1`)

	t.Run("Delete game successfully", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(context.Background(), 7)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		err := repo.Delete(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		SELECT id, game_date, COALESCE(description, ''), created_at
		FROM games
		ORDER BY game_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`)

	t.Run("List games successfully", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "game_date", "description", "created_at"}).
			AddRow(8, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), "", createdAt).
			AddRow(7, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), "sexta no clube", createdAt)
		mock.ExpectQuery(query).
			WithArgs(50, 0).
			WillReturnRows(rows)

		result, err := repo.List(context.Background(), 50, 0)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 8, result[0].ID)
		assert.Equal(t, 7, result[1].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(50, 0).
			WillReturnError(errors.New("database error"))

		result, err := repo.List(context.Background(), 50, 0)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_ListRecent(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		SELECT id, game_date, COALESCE(description, ''), created_at
		FROM games
		ORDER BY game_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`)

	t.Run("Limits to most recent games", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "game_date", "description", "created_at"}).
			AddRow(8, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), "", createdAt)
		mock.ExpectQuery(query).
			WithArgs(10, 0).
			WillReturnRows(rows)

		result, err := repo.ListRecent(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
