package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"PriceLens/internal/pipeline"
)

// Scheduler runs the pipeline on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Ctx:      ctx,
	}
}

// Register registers the pipeline run on the given cron expression.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.runTask); err != nil {
		return fmt.Errorf("register pipeline task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the pipeline immediately (manual trigger / startup run).
func (s *Scheduler) RunNow() {
	s.runTask()
}

func (s *Scheduler) runTask() {
	if err := s.Pipeline.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] pipeline run: %v", err)
	}
}
