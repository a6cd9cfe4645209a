// Package reconcile periodically rechecks the books of recent games. Chip
// counts and cash movements are entered by hand during play, so the sweep
// recomputes every total from stored sessions and flags games whose chips
// in play no longer match the buy-ins sold.
package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pokercds/pokercds/internal/config"
	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/settlement"
	"github.com/pokercds/pokercds/pkg/money"
)

type GameRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Game, error)
}

type SessionRepo interface {
	FindByGameID(ctx context.Context, gameID int) ([]domain.PlayerSession, error)
}

var sweepingGames sync.Map

type Service struct {
	gameRepo      GameRepo
	sessionRepo   SessionRepo
	window        int
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, gameRepo GameRepo, sessionRepo SessionRepo) *Service {
	return &Service{
		gameRepo:      gameRepo,
		sessionRepo:   sessionRepo,
		window:        cfg.ReconcileWindow,
		workerPool:    NewWorkerPool(cfg.ReconcileWorkers),
		sweepInterval: cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciliation service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweepGames(ctx)
		}
	}
}

func (s *Service) sweepGames(ctx context.Context) {
	games, err := s.gameRepo.ListRecent(ctx, s.window)
	if err != nil {
		zap.L().Error("Failed to fetch games for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, game := range games {
		game := game

		if _, loaded := sweepingGames.LoadOrStore(game.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, Task{
				GameID: game.ID,
				Check: func() error {
					defer sweepingGames.Delete(game.ID)
					return s.checkGame(ctx, game)
				},
			})
			if err != nil {
				sweepingGames.Delete(game.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling games", zap.Error(err))
	}
}

// checkGame recomputes the game's totals from its stored sessions and
// reports any mismatch between chips in play and buy-ins sold.
func (s *Service) checkGame(ctx context.Context, game domain.Game) error {
	sessions, err := s.sessionRepo.FindByGameID(ctx, game.ID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	totals := settlement.ComputeTotals(sessions)
	discrepancy := settlement.ChipDiscrepancy(totals)

	if !discrepancy.IsZero() {
		zap.L().Warn("chip count does not match buy-ins",
			zap.Int("game_id", game.ID),
			zap.Time("game_date", game.GameDate),
			zap.String("discrepancy", money.FormatBRL(discrepancy)))
	}
	if totals.TotalBalance.IsNegative() {
		zap.L().Info("game books show a deficit",
			zap.Int("game_id", game.ID),
			zap.String("total_balance", money.FormatBRL(totals.TotalBalance)))
	}
	return nil
}
