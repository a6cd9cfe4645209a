package gamerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, gameID int) (*domain.Game, error) {
	query := `
		SELECT id, game_date, COALESCE(description, ''), created_at
		FROM games
		WHERE id = $1
	`
	var game domain.Game
	err := r.db.QueryRow(ctx, query, gameID).Scan(&game.ID, &game.GameDate, &game.Description, &game.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return &game, nil
}

func (r *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
		INSERT INTO games (game_date, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, game.GameDate, game.Description).Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		zap.L().Error("can't save game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Update(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
		UPDATE games
		SET game_date = $1, description = $2
		WHERE id = $3
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, game.GameDate, game.Description, game.ID).Scan(&game.ID)
	if err != nil {
		zap.L().Error("can't update game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Delete(ctx context.Context, gameID int) error {
	query := `DELETE FROM games WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, gameID); err != nil {
		zap.L().Error("can't delete game", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	query := `
		SELECT id, game_date, COALESCE(description, ''), created_at
		FROM games
		ORDER BY game_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch games", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.GameDate, &g.Description, &g.CreatedAt); err != nil {
			zap.L().Error("failed to scan game row", zap.Error(err))
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Game, error) {
	return r.List(ctx, limit, 0)
}
