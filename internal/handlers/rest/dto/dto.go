package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Error struct {
	Error          string   `json:"error"`
	Message        string   `json:"message,omitempty"`
	Fields         []string `json:"fields,omitempty"`
	Reconciliation bool     `json:"reconciliation,omitempty"`
}

type BackendHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type Address struct {
	Complex  string `json:"complex"`
	Street   string `json:"street"`
	Town     string `json:"town"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
}

type Customer struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	Address    string     `json:"address"`
	Postal     *Address   `json:"postal_address,omitempty"`
	OrderCount int        `json:"order_count"`
	CreatedAt  *time.Time `json:"created_at"`
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customer_id,omitempty"`
	CustomerName     string     `json:"customer_name,omitempty"`
	Total            string     `json:"total"`
	Status           string     `json:"status"`
	StatusKnown      bool       `json:"status_known"`
	Tone             string     `json:"tone"`
	CreatedAt        *time.Time `json:"created_at"`
	Items            []LineItem `json:"items"`
	PaymentReference string     `json:"payment_reference,omitempty"`
}

// View - состояние экрана: либо содержимое, либо одно сообщение об ошибке.
type View[T any] struct {
	ViewID     string `json:"view_id,omitempty"`
	Phase      string `json:"phase"`
	Target     string `json:"target,omitempty"`
	Items      []T    `json:"items"`
	Message    string `json:"message,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
	EmptyText  string `json:"empty_text,omitempty"`
}

type OrderBoard struct {
	View[Order]
	Filters []string `json:"filters"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type OrderStatusUpdateResponse struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	View   *View[Order] `json:"view,omitempty"`
}

type CartItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type CheckoutRequest struct {
	SessionID string     `json:"session_id,omitempty"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Address   Address    `json:"address"`
	Items     []CartItem `json:"items"`
}

type PaymentCustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

type PaymentMetadata struct {
	CustomFields []PaymentCustomField `json:"custom_fields"`
}

// PaymentSetup повторяет параметры inline виджета, браузер передаёт их как есть.
type PaymentSetup struct {
	Key         string          `json:"key"`
	Email       string          `json:"email"`
	Amount      int64           `json:"amount"`
	AmountMajor string          `json:"amount_display"`
	Currency    string          `json:"currency"`
	Ref         string          `json:"ref"`
	Metadata    PaymentMetadata `json:"metadata"`
	ScriptURL   string          `json:"script_url"`
}

type CheckoutSession struct {
	ID               string        `json:"id"`
	State            string        `json:"state"`
	History          []string      `json:"history"`
	Message          string        `json:"message,omitempty"`
	Payment          *PaymentSetup `json:"payment,omitempty"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	Order            *Order        `json:"order,omitempty"`
}

type PaymentOutcome struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

type CheckoutFailure struct {
	Error
	Session *CheckoutSession `json:"session,omitempty"`
}
