package sessionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// FindByGameID returns the game's sessions in roster order with each
// member's display name (nickname when present) joined in.
func (r *Repository) FindByGameID(ctx context.Context, gameID int) ([]domain.PlayerSession, error) {
	query := `
		SELECT gm.game_id, gm.member_id,
		       CASE WHEN m.nickname <> '' THEN m.nickname ELSE m.name END,
		       gm.credit_buyin, gm.cash_buyin, gm.final_chips, gm.rango, gm.pingo, gm.received_amount
		FROM game_members gm
		JOIN members m ON m.id = gm.member_id
		WHERE gm.game_id = $1
		ORDER BY gm.member_id
	`
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("failed to fetch game sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.PlayerSession
	for rows.Next() {
		var s domain.PlayerSession
		err := rows.Scan(
			&s.GameID, &s.MemberID, &s.MemberName,
			&s.CreditBuyin, &s.CashBuyin, &s.FinalChips, &s.Rango, &s.Pingo, &s.ReceivedAmount,
		)
		if err != nil {
			zap.L().Error("failed to scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *Repository) Create(ctx context.Context, session *domain.PlayerSession) (*domain.PlayerSession, error) {
	query := `
		INSERT INTO game_members (game_id, member_id, credit_buyin, cash_buyin, final_chips, rango, pingo, received_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING game_id
	`
	err := r.db.QueryRow(ctx, query,
		session.GameID, session.MemberID, session.CreditBuyin, session.CashBuyin,
		session.FinalChips, session.Rango, session.Pingo, session.ReceivedAmount,
	).Scan(&session.GameID)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// Update persists every financial field of the session atomically.
func (r *Repository) Update(ctx context.Context, session *domain.PlayerSession) (*domain.PlayerSession, error) {
	query := `
		UPDATE game_members
		SET credit_buyin = $1, cash_buyin = $2, final_chips = $3, rango = $4, pingo = $5, received_amount = $6
		WHERE game_id = $7 AND member_id = $8
		RETURNING game_id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			session.CreditBuyin, session.CashBuyin, session.FinalChips,
			session.Rango, session.Pingo, session.ReceivedAmount,
			session.GameID, session.MemberID,
		)
		if err := row.Scan(&session.GameID); err != nil {
			zap.L().Error("failed to update session", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *Repository) Delete(ctx context.Context, gameID, memberID int) error {
	query := `DELETE FROM game_members WHERE game_id = $1 AND member_id = $2`
	if _, err := r.db.Exec(ctx, query, gameID, memberID); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}
