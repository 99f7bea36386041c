// Package worker hosts background deliveries that run alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"interviewlog/config"
	"interviewlog/internal/delivery"
	"interviewlog/internal/domain/repository"
)

const defaultSweepInterval = time.Hour

type sessionSweeper struct {
	interval    time.Duration
	logger      *slog.Logger
	sessionRepo repository.SessionRepository
	done        chan struct{}
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SessionRepo repository.SessionRepository
}

// NewSessionSweeper creates a background delivery that periodically purges
// expired session rows. Expired sessions are already rejected at resolve
// time; the sweeper only keeps the table from growing without bound.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Cfg.Auth != nil && params.Cfg.Auth.SessionSweepInterval > 0 {
		interval = params.Cfg.Auth.SessionSweepInterval
	}

	sweeper := &sessionSweeper{
		interval:    interval,
		logger:      params.Logger,
		sessionRepo: params.SessionRepo,
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.stop,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the application stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.done:
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	if err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.Error("Failed to purge expired sessions", slog.Any("error", err))

		return
	}

	s.logger.Debug("Purged expired sessions")
}

func (s *sessionSweeper) stop(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	close(s.done)

	return nil
}
