//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"storefront/internal/handlers/tasks/checkout_session_eviction"
	"storefront/internal/handlers/tasks/view_eviction"
	"storefront/internal/pkg/config"
	checkoutService "storefront/internal/service/checkout"
	customerService "storefront/internal/service/customer"
	orderService "storefront/internal/service/order"
	"storefront/internal/view/dashboard"
	"storefront/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideRestClient,
		provideBackendGateway,
		providePaymentGateway,
		provideSessionStore,

		provideCustomerService,
		provideOrderService,
		provideCheckoutFlow,
		provideDashboard,

		provideViewEvictionTask,
		provideCheckoutSessionEvictionTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(dashboard.CustomerService), new(*customerService.Customer)),
		wire.Bind(new(dashboard.OrderService), new(*orderService.Service)),
		wire.Bind(new(checkoutService.SessionStore), new(SessionStore)),
		wire.Bind(new(checkout_session_eviction.Store), new(SessionStore)),
		wire.Bind(new(view_eviction.Views), new(*dashboard.Dashboard)),
	)
	return nil, nil, nil
}
