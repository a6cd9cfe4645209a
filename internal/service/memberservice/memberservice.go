package memberservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/validate"
)

type Repo interface {
	FindByCPF(ctx context.Context, cpf string) (*domain.Member, error)
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	SetEnabled(ctx context.Context, memberID int, enabled bool) error
	List(ctx context.Context, limit, offset int) ([]domain.Member, error)
}

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrCPFTaken       = errors.New("cpf already registered")
	ErrMemberNotFound = errors.New("member not found")
	ErrNicknameLocked = errors.New("only admins can change a nickname")
)

type RegisterInput struct {
	CPF             string
	Name            string
	Nickname        string
	Email           string
	PixKey          string
	Phone           string
	Password        string
	ConfirmPassword string
	IsAdmin         bool
}

type UpdateInput struct {
	Name     string
	Nickname string
	Email    string
	PixKey   string
	Phone    string
}

type Service struct {
	memberRepo  Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		memberRepo:  repo,
		hashService: hashService,
	}
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}

// Register creates a new member. CPF is required and normalized here only;
// it is immutable afterwards. The password is policy-checked and hashed
// before it ever reaches the repository.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Member, error) {
	err := requireFields(map[string]string{
		"name":     input.Name,
		"nickname": input.Nickname,
		"email":    input.Email,
		"pix_key":  input.PixKey,
		"cpf":      input.CPF,
	})
	if err != nil {
		return nil, err
	}

	cpf, err := validate.NormalizeCPF(input.CPF)
	if err != nil {
		return nil, err
	}

	if err := auth.ValidateNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.FindByCPF(ctx, cpf)
	if err != nil {
		zap.L().Error("can't check cpf uniqueness: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("cpf already registered", zap.Int("member_id", existing.ID))
		return nil, ErrCPFTaken
	}

	hashed, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	member := &domain.Member{
		CPF:          cpf,
		Name:         strings.TrimSpace(input.Name),
		Nickname:     strings.TrimSpace(input.Nickname),
		Email:        strings.TrimSpace(input.Email),
		PixKey:       strings.TrimSpace(input.PixKey),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hashed,
		IsAdmin:      input.IsAdmin,
		IsEnabled:    true,
	}
	newMember, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		zap.L().Error("can't create member: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member registered", zap.Int("member_id", newMember.ID))
	return newMember, nil
}

// Update edits a member's profile. CPF never changes. A nickname change is
// an admin-only operation; non-admins must submit their current nickname
// (or leave it empty to keep it).
func (s *Service) Update(ctx context.Context, memberID int, input UpdateInput, actorIsAdmin bool) (*domain.Member, error) {
	err := requireFields(map[string]string{
		"name":    input.Name,
		"email":   input.Email,
		"pix_key": input.PixKey,
	})
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname != "" && nickname != member.Nickname {
		if !actorIsAdmin {
			return nil, ErrNicknameLocked
		}
		member.Nickname = nickname
	}

	member.Name = strings.TrimSpace(input.Name)
	member.Email = strings.TrimSpace(input.Email)
	member.PixKey = strings.TrimSpace(input.PixKey)
	member.Phone = strings.TrimSpace(input.Phone)

	updated, err := s.memberRepo.Update(ctx, member)
	if err != nil {
		zap.L().Error("can't update member: ", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// SetEnabled is the soft-disable path; members are never physically deleted.
func (s *Service) SetEnabled(ctx context.Context, memberID int, enabled bool) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	if err := s.memberRepo.SetEnabled(ctx, memberID, enabled); err != nil {
		zap.L().Error("can't set enabled flag: ", zap.Error(err))
		return err
	}
	zap.L().Info("member enabled flag changed", zap.Int("member_id", memberID), zap.Bool("enabled", enabled))
	return nil
}

func (s *Service) Get(ctx context.Context, memberID int) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("can't list members: ", zap.Error(err))
		return nil, err
	}
	return members, nil
}
