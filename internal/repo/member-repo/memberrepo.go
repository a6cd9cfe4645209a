package memberrepo

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

func (r *Repository) FindByCPF(ctx context.Context, cpf string) (*domain.Member, error) {
	query := `
		SELECT id, cpf, name, nickname, email, pix_key, phone, password_hash, is_admin, is_enabled, created_at
		FROM members
		WHERE cpf = $1
	`
	var member domain.Member
	err := r.db.QueryRow(ctx, query, cpf).Scan(
		&member.ID, &member.CPF, &member.Name, &member.Nickname, &member.Email,
		&member.PixKey, &member.Phone, &member.PasswordHash, &member.IsAdmin,
		&member.IsEnabled, &member.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find member by cpf", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) FindByID(ctx context.Context, memberID int) (*domain.Member, error) {
	query := `
		SELECT id, cpf, name, nickname, email, pix_key, phone, password_hash, is_admin, is_enabled, created_at
		FROM members
		WHERE id = $1
	`
	var member domain.Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&member.ID, &member.CPF, &member.Name, &member.Nickname, &member.Email,
		&member.PixKey, &member.Phone, &member.PasswordHash, &member.IsAdmin,
		&member.IsEnabled, &member.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find member by id", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (cpf, name, nickname, email, pix_key, phone, password_hash, is_admin, is_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		member.CPF, member.Name, member.Nickname, member.Email, member.PixKey,
		member.Phone, member.PasswordHash, member.IsAdmin, member.IsEnabled,
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		UPDATE members
		SET name = $1, nickname = $2, email = $3, pix_key = $4, phone = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		member.Name, member.Nickname, member.Email, member.PixKey, member.Phone, member.ID,
	).Scan(&member.ID)
	if err != nil {
		zap.L().Error("can't update member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, memberID int, passwordHash string) error {
	query := `
		UPDATE members
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, passwordHash, memberID); err != nil {
		zap.L().Error("can't update member password", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetEnabled(ctx context.Context, memberID int, enabled bool) error {
	query := `
		UPDATE members
		SET is_enabled = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, enabled, memberID); err != nil {
		zap.L().Error("can't set member enabled flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	query := `
		SELECT id, cpf, name, nickname, email, pix_key, phone, password_hash, is_admin, is_enabled, created_at
		FROM members
		ORDER BY is_enabled DESC, name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(
			&m.ID, &m.CPF, &m.Name, &m.Nickname, &m.Email, &m.PixKey,
			&m.Phone, &m.PasswordHash, &m.IsAdmin, &m.IsEnabled, &m.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}
