package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               string
	CustomerID       string
	CustomerName     string
	Total            decimal.Decimal
	Status           OrderStatusType
	CreatedAt        time.Time
	Items            []LineItem
	PaymentReference string
}

type LineItem struct {
	ProductID string
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderPaid       OrderStatusType = "paid"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

// OrderStatuses в порядке жизненного цикла, так же их показывает фильтр.
var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderPaid,
	OrderProcessing,
	OrderShipped,
	OrderCompleted,
	OrderCancelled,
}

func (s OrderStatusType) String() string {
	return string(s)
}

// IsKnown: статус вне перечисления не ошибка, он только отображается.
func (s OrderStatusType) IsKnown() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type BadgeTone string

const (
	ToneSuccess BadgeTone = "success"
	ToneDanger  BadgeTone = "danger"
	ToneInfo    BadgeTone = "info"
	ToneWarning BadgeTone = "warning"
	ToneNeutral BadgeTone = "neutral"
)

func (s OrderStatusType) Tone() BadgeTone {
	switch s {
	case OrderCompleted, OrderPaid:
		return ToneSuccess
	case OrderCancelled:
		return ToneDanger
	case OrderShipped:
		return ToneInfo
	case OrderProcessing:
		return ToneWarning
	default:
		return ToneNeutral
	}
}

// OrderFilter: Status == nil означает все заказы.
type OrderFilter struct {
	Status *OrderStatusType
}

// OrderModify - частичное изменение заказа, nil поля не трогаются.
type OrderModify struct {
	Status *OrderStatusType
}

// Apply возвращает копию заказа с применёнными изменениями.
func (m OrderModify) Apply(o Order) Order {
	if m.Status != nil {
		o.Status = *m.Status
	}
	return o
}
