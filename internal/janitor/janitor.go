package janitor

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task is one periodic maintenance job: a cron schedule plus a bounded
// delete that reports how many rows it removed. Runs must be idempotent;
// a skipped or failed cycle is made up by the next one.
type Task struct {
	Name string
	Spec string
	Run  func(ctx context.Context) (int64, error)
}

// Scheduler owns the janitor tasks for the lifetime of the process.
// It is either stopped or running; Start and Stop are each called once.
type Scheduler struct {
	cron  *cron.Cron
	log   *zap.Logger
	tasks []Task
}

func NewScheduler(log *zap.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		log:   log,
		tasks: tasks,
	}
}

// Start registers every task and begins firing triggers.
func (s *Scheduler) Start() error {
	for _, t := range s.tasks {
		task := t
		if _, err := s.cron.AddFunc(task.Spec, func() { s.runTask(task) }); err != nil {
			return err
		}
	}
	s.cron.Start()
	s.log.Info("janitor started", zap.Int("tasks", len(s.tasks)))
	return nil
}

// Stop halts new triggers and waits for in-flight runs to finish.
// Deletions are idempotent, so interrupted work is simply redone next boot.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("janitor stopped")
}

// runTask isolates one tick: an error or panic is logged and contained so
// sibling tasks and future ticks are unaffected.
func (s *Scheduler) runTask(t Task) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("janitor task panicked", zap.String("task", t.Name), zap.Any("panic", r))
		}
	}()

	start := time.Now()
	s.log.Info("janitor task starting", zap.String("task", t.Name))

	removed, err := t.Run(context.Background())
	if err != nil {
		s.log.Error("janitor task failed", zap.String("task", t.Name), zap.Error(err))
		return
	}
	s.log.Info("janitor task finished",
		zap.String("task", t.Name),
		zap.Int64("removed", removed),
		zap.Duration("took", time.Since(start)),
	)
}
