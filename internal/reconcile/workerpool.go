package reconcile

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI runs queued sweep tasks on a fixed set of workers.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task checks one game's books. GameID names the game in failure logs
// so a bad sweep can be traced back to its sheet.
type Task struct {
	GameID int
	Check  func() error
}

type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, workers)}

	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		if err := task.Check(); err != nil {
			zap.L().Error("game sweep failed",
				zap.Int("game_id", task.GameID),
				zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
