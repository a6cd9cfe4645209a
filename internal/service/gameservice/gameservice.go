package gameservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pokercds/pokercds/internal/bookkeeping"
	"github.com/pokercds/pokercds/internal/domain"
)

type GameRepo interface {
	FindByID(ctx context.Context, gameID int) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Update(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, gameID int) error
	List(ctx context.Context, limit, offset int) ([]domain.Game, error)
}

type SessionRepo interface {
	FindByGameID(ctx context.Context, gameID int) ([]domain.PlayerSession, error)
	Create(ctx context.Context, session *domain.PlayerSession) (*domain.PlayerSession, error)
	Update(ctx context.Context, session *domain.PlayerSession) (*domain.PlayerSession, error)
	Delete(ctx context.Context, gameID, memberID int) error
}

type MemberRepo interface {
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
}

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrDateRequired   = errors.New("game date is required")
)

// gameEntry serializes all bookkeeping for one game. The aggregate (and
// its inline-edit cursor) lives here between requests; the mutex enforces
// the single-writer-per-game model.
type gameEntry struct {
	mu  sync.Mutex
	agg *bookkeeping.Aggregate
}

type Service struct {
	gameRepo    GameRepo
	sessionRepo SessionRepo
	memberRepo  MemberRepo

	mu      sync.Mutex
	entries map[int]*gameEntry
}

func New(gameRepo GameRepo, sessionRepo SessionRepo, memberRepo MemberRepo) *Service {
	return &Service{
		gameRepo:    gameRepo,
		sessionRepo: sessionRepo,
		memberRepo:  memberRepo,
		entries:     make(map[int]*gameEntry),
	}
}

// Snapshot is the always-fresh read view pulled by the presentation layer
// after every change.
type Snapshot struct {
	Game    domain.Game
	Players []bookkeeping.PlayerView
	Totals  bookkeeping.TotalsView
}

func (s *Service) CreateGame(ctx context.Context, gameDate time.Time, description string) (*domain.Game, error) {
	if gameDate.IsZero() {
		return nil, ErrDateRequired
	}
	game := &domain.Game{
		GameDate:    gameDate,
		Description: description,
	}
	created, err := s.gameRepo.Create(ctx, game)
	if err != nil {
		zap.L().Error("can't create game: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("game created", zap.Int("game_id", created.ID))
	return created, nil
}

func (s *Service) UpdateGame(ctx context.Context, gameID int, gameDate time.Time, description string) (*domain.Game, error) {
	if gameDate.IsZero() {
		return nil, ErrDateRequired
	}
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		zap.L().Error("can't find game: ", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	game.GameDate = gameDate
	game.Description = description
	updated, err := s.gameRepo.Update(ctx, game)
	if err != nil {
		zap.L().Error("can't update game: ", zap.Error(err))
		return nil, err
	}
	s.evict(gameID)
	return updated, nil
}

func (s *Service) DeleteGame(ctx context.Context, gameID int) error {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		zap.L().Error("can't find game: ", zap.Error(err))
		return err
	}
	if game == nil {
		return ErrGameNotFound
	}
	if err := s.gameRepo.Delete(ctx, gameID); err != nil {
		zap.L().Error("can't delete game: ", zap.Error(err))
		return err
	}
	s.evict(gameID)
	zap.L().Info("game deleted", zap.Int("game_id", gameID))
	return nil
}

func (s *Service) GetGame(ctx context.Context, gameID int) (*domain.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		zap.L().Error("can't find game: ", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (s *Service) ListGames(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	games, err := s.gameRepo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("can't list games: ", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) entry(gameID int) *gameEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[gameID]
	if !ok {
		e = &gameEntry{}
		s.entries[gameID] = e
	}
	return e
}

func (s *Service) evict(gameID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, gameID)
}

// load hydrates the aggregate from storage on first use. Callers must hold
// the entry lock.
func (s *Service) load(ctx context.Context, gameID int, e *gameEntry) error {
	if e.agg != nil {
		return nil
	}
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		zap.L().Error("can't find game: ", zap.Error(err))
		return err
	}
	if game == nil {
		return ErrGameNotFound
	}
	sessions, err := s.sessionRepo.FindByGameID(ctx, gameID)
	if err != nil {
		zap.L().Error("can't load game sessions: ", zap.Error(err))
		return err
	}
	e.agg = bookkeeping.NewAggregate(*game, sessions)
	return nil
}

func (s *Service) snapshot(agg *bookkeeping.Aggregate) *Snapshot {
	return &Snapshot{
		Game:    agg.Game(),
		Players: agg.Players(),
		Totals:  agg.Totals(),
	}
}

// withAggregate runs fn against the game's aggregate under the per-game
// lock, hydrating on first access.
func (s *Service) withAggregate(ctx context.Context, gameID int, fn func(agg *bookkeeping.Aggregate) error) (*Snapshot, error) {
	e := s.entry(gameID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := s.load(ctx, gameID, e); err != nil {
		return nil, err
	}
	if err := fn(e.agg); err != nil {
		return nil, err
	}
	return s.snapshot(e.agg), nil
}

// Load returns the full bookkeeping view of a game.
func (s *Service) Load(ctx context.Context, gameID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(*bookkeeping.Aggregate) error { return nil })
}

// persist writes the member's mutated session through; a storage failure
// evicts the aggregate so the next load rereads committed state.
func (s *Service) persist(ctx context.Context, agg *bookkeeping.Aggregate, gameID, memberID int) error {
	session, err := agg.Session(memberID)
	if err != nil {
		return err
	}
	if _, err := s.sessionRepo.Update(ctx, &session); err != nil {
		s.evict(gameID)
		return err
	}
	return nil
}

func (s *Service) AddPlayer(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.AddPlayer(memberID, member.DisplayName()); err != nil {
			return err
		}
		session, err := agg.Session(memberID)
		if err != nil {
			return err
		}
		if _, err := s.sessionRepo.Create(ctx, &session); err != nil {
			s.evict(gameID)
			return err
		}
		return nil
	})
}

func (s *Service) RemovePlayer(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.RemovePlayer(memberID); err != nil {
			return err
		}
		if err := s.sessionRepo.Delete(ctx, gameID, memberID); err != nil {
			s.evict(gameID)
			return err
		}
		return nil
	})
}

func (s *Service) IncrementCreditBuyin(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.IncrementCreditBuyin(memberID); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}

func (s *Service) DecrementCreditBuyin(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.DecrementCreditBuyin(memberID); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}

func (s *Service) IncrementCashBuyin(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.IncrementCashBuyin(memberID); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}

func (s *Service) DecrementCashBuyin(ctx context.Context, gameID, memberID int) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.DecrementCashBuyin(memberID); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}

func (s *Service) SetMonetaryField(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, value string) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if err := agg.SetMonetaryField(memberID, field, value); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}

func (s *Service) BeginInlineEdit(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, currentValue string) error {
	_, err := s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		return agg.BeginInlineEdit(memberID, field, currentValue)
	})
	return err
}

func (s *Service) CancelInlineEdit(ctx context.Context, gameID int) error {
	_, err := s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		agg.CancelInlineEdit()
		return nil
	})
	return err
}

// CommitInlineEdit applies the staged cell value. An optional non-empty
// value replaces the stage before the commit, mirroring the type-then-save
// flow of the editing UI.
func (s *Service) CommitInlineEdit(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, value string) (*Snapshot, error) {
	return s.withAggregate(ctx, gameID, func(agg *bookkeeping.Aggregate) error {
		if value != "" {
			agg.SetEditingValue(value)
		}
		if err := agg.CommitInlineEdit(memberID, field); err != nil {
			return err
		}
		return s.persist(ctx, agg, gameID, memberID)
	})
}
