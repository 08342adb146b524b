package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/entities"
	"storefront/pkg/envelope"
	"storefront/pkg/restclient"
)

const serviceName = "storefront-backend"

const (
	pathHealth         = "/health"
	pathCustomers      = "/customers"
	pathOrders         = "/orders"
	pathCustomerOrders = "/orders/customer/"
)

// Gateway - типизированный доступ к REST бэкенду магазина.
// Нормализация формы ответа (массив или конверт data) делается только здесь.
type Gateway struct {
	client client
}

func New(client client) *Gateway {
	return &Gateway{
		client: client,
	}
}

// Health проверяет бэкенд перед загрузкой списков. Тело не обязано быть JSON,
// но html вместо ответа API означает неправильный base url.
func (g *Gateway) Health(ctx context.Context) error {
	var body any

	err := g.executeWithMetrics(ctx, "Health", func(ctx context.Context) error {
		var err error
		body, err = g.client.Request(ctx, pathHealth, restclient.Options{})
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway backend, health: %w: %w", ErrBackendUnreachable, err)
	}

	if restclient.LooksLikeHTML(body) {
		return fmt.Errorf("gateway backend, health: %w", ErrBackendMisconfigured)
	}

	return nil
}

func (g *Gateway) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	body, err := g.list(ctx, "ListCustomers", pathCustomers, nil)
	if err != nil {
		return []entities.Customer{}, fmt.Errorf("gateway backend, list customers: %w", err)
	}

	dtos, err := envelope.List[customerDTO](body)
	if err != nil {
		GatewayShapeErrorsTotal.WithLabelValues(serviceName, "ListCustomers").Inc()
		return []entities.Customer{}, fmt.Errorf("gateway backend, list customers: %w", err)
	}

	return toCustomerList(dtos), nil
}

func (g *Gateway) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	body, err := g.list(ctx, "ListCustomerOrders", pathCustomerOrders+url.PathEscape(customerID), nil)
	if err != nil {
		return []entities.Order{}, fmt.Errorf("gateway backend, list orders of customer %s: %w", customerID, err)
	}

	dtos, err := envelope.List[orderDTO](body)
	if err != nil {
		GatewayShapeErrorsTotal.WithLabelValues(serviceName, "ListCustomerOrders").Inc()
		return []entities.Order{}, fmt.Errorf("gateway backend, list orders of customer %s: %w", customerID, err)
	}

	return toOrderList(dtos), nil
}

func (g *Gateway) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	var query url.Values
	if filter.Status != nil {
		query = url.Values{"status": []string{filter.Status.String()}}
	}

	body, err := g.list(ctx, "ListOrders", pathOrders, query)
	if err != nil {
		return []entities.Order{}, fmt.Errorf("gateway backend, list orders: %w", err)
	}

	dtos, err := envelope.List[orderDTO](body)
	if err != nil {
		GatewayShapeErrorsTotal.WithLabelValues(serviceName, "ListOrders").Inc()
		return []entities.Order{}, fmt.Errorf("gateway backend, list orders: %w", err)
	}

	return toOrderList(dtos), nil
}

// UpdateOrderStatus возвращает обновлённый заказ, если бэкенд его прислал,
// и nil при пустом успешном ответе.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	var body any

	err := g.executeWithMetrics(ctx, "UpdateOrderStatus", func(ctx context.Context) error {
		var err error
		body, err = g.client.Request(ctx, pathOrders+"/"+url.PathEscape(orderID)+"/status", restclient.Options{
			Method: http.MethodPatch,
			Body:   statusUpdateRequest{Status: status.String()},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway backend, update order %s status: %w", orderID, err)
	}

	return singleOrder(body), nil
}

// CreateOrder сохраняет оплаченный заказ. Созданный заказ в ответе необязателен.
func (g *Gateway) CreateOrder(ctx context.Context, order entities.NewOrder) (*entities.Order, error) {
	var body any

	err := g.executeWithMetrics(ctx, "CreateOrder", func(ctx context.Context) error {
		var err error
		body, err = g.client.Request(ctx, pathOrders, restclient.Options{
			Method: http.MethodPost,
			Body:   toNewOrderRequest(order),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway backend, create order: %w", err)
	}

	return singleOrder(body), nil
}

func (g *Gateway) list(ctx context.Context, method, path string, query url.Values) (any, error) {
	var body any

	err := g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		var err error
		body, err = g.client.Request(ctx, path, restclient.Options{Query: query})
		return err
	})
	return body, err
}

// singleOrder достаёт заказ из ответа: сам объект, {"data": {...}} или {"order": {...}}.
func singleOrder(body any) *entities.Order {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range []string{envelope.DataField, "order"} {
		if nested, ok := obj[key].(map[string]any); ok {
			obj = nested
			break
		}
	}
	if _, ok := obj["id"]; !ok {
		if _, ok := obj["_id"]; !ok {
			return nil
		}
	}

	raw, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	var dto orderDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil
	}

	order := toOrder(dto)
	return &order
}

// Ретраев нет: каждая операция ровно один запрос.
func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome(err)).Observe(time.Since(start).Seconds())

	return err
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	var reqErr *restclient.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Transport() {
			return "transport_error"
		}
		return strconv.Itoa(reqErr.Status)
	}
	return "unknown"
}
