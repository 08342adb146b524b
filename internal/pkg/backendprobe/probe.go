package backendprobe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/gateway/rest/backend"
	"storefront/pkg/logger"
	"storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

type HealthChecker interface {
	Health(ctx context.Context) error
}

// DefaultConfig: бэкенд мог ещё не подняться, ждём его с экспоненциальной паузой.
// Неверный BACKEND_BASE_URL не лечится ожиданием, поэтому не ретраится.
func DefaultConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry: func(err error) bool {
			return !errors.Is(err, backend.ErrBackendMisconfigured)
		},
	}
}

// Wait опрашивает /health бэкенда, пока тот не ответит или не кончится время.
func Wait(ctx context.Context, log logger.Logger, checker HealthChecker, cfg retrier.Config) error {
	probeLog := log.With(
		logger.NewField("component", "backend-probe"),
	)

	if cfg.Notify == nil {
		cfg.Notify = func(err error, next time.Duration) {
			probeLog.With(
				logger.NewField("error", err),
				logger.NewField("retry_in", next.String()),
			).Warn("backend is not ready")
		}
	}

	r := backoff_adapter.New(cfg)

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		probeLog.With(
			logger.NewField("attempt", attempt),
		).Info("probing backend health")

		return checker.Health(ctx)
	})
	if err != nil {
		probeLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("backend is not healthy after retries")
		return fmt.Errorf("backend probe: %w", err)
	}

	probeLog.With(
		logger.NewField("attempts", attempt),
	).Info("backend is healthy")
	return nil
}
