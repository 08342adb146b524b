package checkout_session_eviction

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Store interface {
	EvictExpired(ctx context.Context) (int, error)
}

// CheckoutSessionEviction удаляет брошенные сессии оформления заказа.
type CheckoutSessionEviction struct {
	log      logger.Logger
	store    Store
	interval time.Duration
}

func NewCheckoutSessionEviction(log logger.Logger, store Store, interval time.Duration) *CheckoutSessionEviction {
	return &CheckoutSessionEviction{
		log:      log,
		store:    store,
		interval: interval,
	}
}

func (c *CheckoutSessionEviction) TTL() time.Duration {
	return c.interval
}

func (c *CheckoutSessionEviction) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	evicted, err := c.store.EvictExpired(ctxWithTimeout)

	if evicted > 0 {
		c.log.With(
			logger.NewField("evicted_sessions", evicted),
		).Info("checkout session eviction")
	}

	return err
}

func (c *CheckoutSessionEviction) Info() string {
	return "checkout session eviction"
}
