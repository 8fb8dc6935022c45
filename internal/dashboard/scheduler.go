package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler refreshes the default city on a fixed interval
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Service
	request   Request
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// NewScheduler creates a scheduler. timeout bounds a single refresh.
func NewScheduler(service Service, request Request, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		request:   request,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With("component", "refresh-scheduler"),
	}
}

// Start schedules the refresh job. A non-positive interval disables it.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("timed refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("timed refresh started", "city", s.request.City, "interval", s.interval.String())
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	view, committed := s.service.Refresh(ctx, s.request)
	s.logger.Debug("timed refresh finished",
		"city", view.City,
		"status", view.Status,
		"committed", committed,
	)
}

// Stop stops the scheduler and cancels any future jobs
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}
