// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs of the API server.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/balticclima/siteapi/internal/service"
)

const sweepSchedule = "30 3 * * *"

// Scheduler owns the cron instance and the jobs registered on it.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *service.Sweeper
}

// New creates a scheduler with the upload sweep registered on its nightly
// schedule.
func New(sweeper *service.Sweeper) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
	}
	if _, err := s.cron.AddFunc(sweepSchedule, s.runSweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "sweep_schedule", sweepSchedule)
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := s.sweeper.Sweep(ctx)
	if err != nil {
		slog.Error("upload sweep failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("upload sweep removed orphaned files", "count", removed)
	}
}
