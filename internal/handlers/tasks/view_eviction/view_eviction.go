package view_eviction

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Views interface {
	EvictIdle() int
	OpenViews() int
}

// ViewEviction закрывает экраны админки, которыми давно не пользовались.
type ViewEviction struct {
	log      logger.Logger
	views    Views
	interval time.Duration
}

func NewViewEviction(log logger.Logger, views Views, interval time.Duration) *ViewEviction {
	return &ViewEviction{
		log:      log,
		views:    views,
		interval: interval,
	}
}

func (v *ViewEviction) TTL() time.Duration {
	return v.interval
}

func (v *ViewEviction) Do(context.Context) error {
	evicted := v.views.EvictIdle()
	OpenViews.Set(float64(v.views.OpenViews()))

	if evicted > 0 {
		EvictedViewsTotal.Add(float64(evicted))
		v.log.With(
			logger.NewField("evicted_views", evicted),
		).Info("view eviction")
	}

	return nil
}

func (v *ViewEviction) Info() string {
	return "view eviction"
}
