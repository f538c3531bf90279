// Package scheduler runs periodic maintenance jobs on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/monitoring"
	"github.com/robfig/cron/v3"
)

// JobFunc is one run of a job. The context is cancelled at the job timeout.
type JobFunc func(ctx context.Context)

// Scheduler wraps a cron runner with per-job timeouts, panic recovery and logging.
type Scheduler struct {
	cron    *cron.Cron
	logger  *monitoring.Logger
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]JobFunc
	runs map[string]int64
}

// New creates a stopped scheduler.
func New(logger *monitoring.Logger, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scheduler{
		cron:    cron.New(),
		logger:  logger,
		timeout: timeout,
		jobs:    make(map[string]JobFunc),
		runs:    make(map[string]int64),
	}
}

// Add schedules run under name. An empty spec leaves the job disabled.
func (s *Scheduler) Add(name, spec string, run JobFunc) error {
	if spec == "" {
		s.logger.Info("Scheduled job disabled", "job", name)
		return nil
	}

	s.mu.Lock()
	if _, exists := s.jobs[name]; exists {
		s.mu.Unlock()
		return fmt.Errorf("job %q already registered", name)
	}
	s.jobs[name] = run
	s.mu.Unlock()

	if _, err := s.cron.AddFunc(spec, func() { s.execute(context.Background(), name, run) }); err != nil {
		s.mu.Lock()
		delete(s.jobs, name)
		s.mu.Unlock()
		return fmt.Errorf("schedule job %q with spec %q: %w", name, spec, err)
	}

	s.logger.Info("Scheduled job registered", "job", name, "spec", spec)
	return nil
}

// RunNow executes a registered job synchronously.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	run, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	s.execute(ctx, name, run)
	return nil
}

func (s *Scheduler) execute(parent context.Context, name string, run JobFunc) {
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Scheduled job panicked", "job", name, "panic", fmt.Sprint(r))
		}
		s.mu.Lock()
		s.runs[name]++
		s.mu.Unlock()
		s.logger.Debug("Scheduled job finished", "job", name, "duration_ms", time.Since(start).Milliseconds())
	}()

	run(ctx)
}

// Jobs returns the registered job names in order.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runs returns how many times name has executed.
func (s *Scheduler) Runs(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[name]
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.SystemLogger("scheduler_started", fmt.Sprintf("%d jobs", len(s.Jobs())))
}

// Stop prevents new runs and waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.SystemLogger("scheduler_stopped", "all jobs finished")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}
