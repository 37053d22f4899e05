package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	robfig "github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

var ErrAlreadyStarted = errors.New("scheduler already started")

// parser accepts standard 5-field expressions and descriptors such as "@every 1m".
var parser = robfig.NewParser(robfig.Minute | robfig.Hour | robfig.Dom | robfig.Month | robfig.Dow | robfig.Descriptor)

// Job is a periodic maintenance task.
type Job struct {
	Name     string
	Schedule robfig.Schedule
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on their schedules until stopped.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []Job
	cancel  context.CancelFunc
	group   *errgroup.Group
	started bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddJob registers fn under a cron expression.
func (s *Scheduler) AddJob(name, spec string, fn func(ctx context.Context) error) error {
	schedule, err := parser.Parse(spec)
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	return s.AddSchedule(name, schedule, fn)
}

// AddSchedule registers fn under an already parsed schedule. Jobs cannot be
// added once the scheduler is running.
func (s *Scheduler) AddSchedule(name string, schedule robfig.Schedule, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	s.jobs = append(s.jobs, Job{Name: name, Schedule: schedule, Fn: fn})
	slog.Info("Cron job registered", "name", name)
	return nil
}

// Start launches one goroutine per job. Jobs stop when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)
	for _, job := range s.jobs {
		job := job
		s.group.Go(func() error {
			s.runJob(ctx, job)
			return nil
		})
	}
	s.started = true

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
	return nil
}

// Stop cancels every job and waits for running executions to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, group := s.cancel, s.group
	s.mu.Unlock()
	if cancel == nil {
		return
	}

	slog.Info("Stopping cron scheduler...")
	cancel()
	_ = group.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	for {
		now := time.Now()
		next := job.Schedule.Next(now)
		if next.IsZero() {
			slog.Warn("Cron job has no next run", "name", job.Name)
			return
		}
		slog.Debug("Cron job scheduled", "name", job.Name, "next", next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Debug("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			executeJob(ctx, job)
		}
	}
}

func executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	err := job.Fn(ctx)
	if err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return err
	}
	slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	return nil
}

// RunOnce runs every job synchronously and returns their errors joined.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	var errs []error
	for _, job := range jobs {
		if err := executeJob(ctx, job); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
