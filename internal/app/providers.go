package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"storefront/internal/gateway/payment/paystack"
	"storefront/internal/gateway/rest/backend"
	"storefront/internal/handlers/tasks/checkout_session_eviction"
	"storefront/internal/handlers/tasks/view_eviction"
	"storefront/internal/pkg/config"
	"storefront/internal/repository/checkout_session"
	checkoutService "storefront/internal/service/checkout"
	customerService "storefront/internal/service/customer"
	orderService "storefront/internal/service/order"
	"storefront/internal/view/dashboard"
	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/restclient"
)

type Application struct {
	Backend           *backend.Gateway
	Dashboard         *dashboard.Dashboard
	Checkout          *checkoutService.Flow
	BackgroundWorkers *background.Worker
}

// SessionStore - хранилище сессий оформления заказа: память или redis.
type SessionStore interface {
	checkoutService.SessionStore
	checkout_session_eviction.Store
}

func provideRestClient(cfg *config.Config) *restclient.Client {
	return restclient.New(restclient.Config{
		BaseURL:   cfg.Backend.BaseURL,
		APIPrefix: cfg.Backend.APIPrefix,
		Timeout:   cfg.Backend.Timeout,
		AuthToken: cfg.Backend.AuthToken,
	})
}

func provideBackendGateway(client *restclient.Client) *backend.Gateway {
	return backend.New(client)
}

func providePaymentGateway(log logger.Logger, cfg *config.Config) *paystack.Gateway {
	gateway := paystack.New(paystack.Config{
		PublicKey: cfg.Checkout.PaystackPublicKey,
		Currency:  cfg.Checkout.Currency,
	})
	if gateway.UsesPlaceholderKey() {
		log.Warn("PAYSTACK_PUBLIC_KEY is not set, payment widget will use a placeholder key")
	}
	return gateway
}

// provideSessionStore выбирает хранилище по CHECKOUT_SESSION_STORE.
// Для redis соединение проверяется сразу, cleanup закрывает клиент.
func provideSessionStore(ctx context.Context, log logger.Logger, cfg *config.Config) (SessionStore, func(), error) {
	if cfg.Checkout.SessionStore != config.SessionStoreRedis {
		return checkout_session.NewMemory(cfg.Checkout.SessionTTL,
			checkout_session.WithPaymentTTL(cfg.Checkout.PaymentTTL),
		), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}

	log.Info("checkout sessions are stored in redis", logger.NewField("addr", cfg.Redis.Addr))

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}
	return checkout_session.NewRedis(client, cfg.Checkout.SessionTTL,
		checkout_session.WithPaymentTTL(cfg.Checkout.PaymentTTL),
	), cleanup, nil
}

func provideCustomerService(gateway *backend.Gateway) *customerService.Customer {
	return customerService.New(gateway)
}

func provideOrderService(gateway *backend.Gateway) *orderService.Service {
	return orderService.New(gateway)
}

func provideCheckoutFlow(
	log logger.Logger,
	orders *backend.Gateway,
	payments *paystack.Gateway,
	sessions checkoutService.SessionStore,
) *checkoutService.Flow {
	return checkoutService.New(
		log.With(logger.NewField("component", "checkout")),
		orders,
		payments,
		sessions,
	)
}

func provideDashboard(
	customers dashboard.CustomerService,
	orders dashboard.OrderService,
	cfg *config.Config,
) *dashboard.Dashboard {
	return dashboard.New(customers, orders, cfg.Dashboard.ViewIdleTTL)
}

func provideViewEvictionTask(
	log logger.Logger,
	views view_eviction.Views,
	cfg *config.Config,
) *view_eviction.ViewEviction {
	return view_eviction.NewViewEviction(log, views, cfg.Tasks.EvictionInterval)
}

func provideCheckoutSessionEvictionTask(
	log logger.Logger,
	store checkout_session_eviction.Store,
	cfg *config.Config,
) *checkout_session_eviction.CheckoutSessionEviction {
	return checkout_session_eviction.NewCheckoutSessionEviction(log, store, cfg.Tasks.EvictionInterval)
}

func provideTaskList(
	viewEvictionTask *view_eviction.ViewEviction,
	sessionEvictionTask *checkout_session_eviction.CheckoutSessionEviction,
) []background.Task {
	return []background.Task{
		viewEvictionTask,
		sessionEvictionTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
