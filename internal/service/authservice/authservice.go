package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/validate"
)

type Repo interface {
	FindByCPF(ctx context.Context, cpf string) (*domain.Member, error)
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
	UpdatePassword(ctx context.Context, memberID int, passwordHash string) error
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMemberDisabled     = errors.New("member is disabled")
)

type Service struct {
	memberRepo  Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		memberRepo:  repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Authenticate verifies a CPF/password pair. The CPF is normalized before
// lookup, so formatted input works. Disabled members cannot log in.
func (s *Service) Authenticate(ctx context.Context, cpf, password string) (*domain.Member, error) {
	normalized, err := validate.NormalizeCPF(cpf)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	member, err := s.memberRepo.FindByCPF(ctx, normalized)
	if err != nil || member == nil {
		zap.L().Info("authentication failed: unknown cpf")
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		zap.L().Info("authentication failed: wrong password", zap.Int("member_id", member.ID))
		return nil, ErrInvalidCredentials
	}
	if !member.IsEnabled {
		zap.L().Info("authentication rejected: member disabled", zap.Int("member_id", member.ID))
		return nil, ErrMemberDisabled
	}
	zap.L().Info("member successfully authenticated", zap.Int("member_id", member.ID))
	return member, nil
}

// ChangePassword verifies the current credential and applies the new one
// under the password policy.
func (s *Service) ChangePassword(ctx context.Context, memberID int, current, newPassword, confirmation string) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return err
	}
	if member == nil {
		return ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, current); !ok {
		return ErrInvalidCredentials
	}
	if err := auth.ValidateNewPassword(newPassword, confirmation); err != nil {
		return err
	}

	hashed, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.memberRepo.UpdatePassword(ctx, memberID, hashed); err != nil {
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}
	zap.L().Info("password changed", zap.Int("member_id", memberID))
	return nil
}

func (s *Service) GenerateToken(memberID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(memberID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
