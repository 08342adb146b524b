package checkout_session

import "time"

type SessionRedis struct {
	ID               string          `json:"id"`
	State            string          `json:"state"`
	Form             FormRedis       `json:"form"`
	Cart             []CartItemRedis `json:"cart"`
	Payment          PaymentRedis    `json:"payment"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	Order            *OrderRedis     `json:"order,omitempty"`
	Message          string          `json:"message,omitempty"`
	History          []string        `json:"history"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type FormRedis struct {
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Address   AddressRedis `json:"address"`
}

type AddressRedis struct {
	Complex  string `json:"complex,omitempty"`
	Street   string `json:"street,omitempty"`
	Town     string `json:"town,omitempty"`
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

type CartItemRedis struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type PaymentRedis struct {
	PublicKey    string             `json:"public_key"`
	Email        string             `json:"email"`
	Amount       string             `json:"amount"`
	AmountMinor  int64              `json:"amount_minor"`
	Currency     string             `json:"currency"`
	Reference    string             `json:"reference"`
	CustomFields []CustomFieldRedis `json:"custom_fields,omitempty"`
}

type CustomFieldRedis struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

type OrderRedis struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customer_id,omitempty"`
	CustomerName     string          `json:"customer_name,omitempty"`
	Total            string          `json:"total"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []LineItemRedis `json:"items,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
}

type LineItemRedis struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}
