package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

var null = []byte("null")

// opaqueID: бэкенд присылает id то числом, то строкой.
type opaqueID string

func (id *opaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = opaqueID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %s", data)
	}
	*id = opaqueID(n.String())
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime: RFC3339 и близкие форматы или unix (секунды/миллисекунды).
// Нераспознанное значение даёт нулевое время, дата только отображается.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) || len(data) == 0 {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				*t = flexTime(parsed.UTC())
				return nil
			}
		}
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil
	}
	if n > 1e12 {
		*t = flexTime(time.UnixMilli(n).UTC())
	} else {
		*t = flexTime(time.Unix(n, 0).UTC())
	}
	return nil
}

func (t flexTime) Time() time.Time {
	return time.Time(t)
}

// money: число, строка с числом или витринная строка вида "R1,299.99".
type money decimal.Decimal

func (m *money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*m = money(decimal.Zero)
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if d, err := decimal.NewFromString(s); err == nil {
			*m = money(d)
			return nil
		}
		d, err := entities.ParsePrice(s)
		if err != nil {
			return err
		}
		*m = money(d)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", entities.ErrInvalidPrice, data)
	}
	*m = money(d)
	return nil
}

func (m money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

type postalDTO struct {
	Complex    string `json:"complex"`
	Street     string `json:"street"`
	Line1      string `json:"line1"`
	Town       string `json:"town"`
	City       string `json:"city"`
	Province   string `json:"province"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	PostalCode string `json:"postal_code"`
}

// addressDTO: объект с полями адреса или просто строка.
type addressDTO struct {
	postal *postalDTO
	text   string
}

func (a *addressDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, null) || len(data) == 0:
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &a.text)
	case data[0] == '{':
		var p postalDTO
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		a.postal = &p
		return nil
	default:
		return fmt.Errorf("address must be an object or a string: %s", data)
	}
}

// customerRefDTO: заказ ссылается на клиента объектом {id, name} или одним id.
type customerRefDTO struct {
	ID   opaqueID `json:"id"`
	Name string   `json:"name"`
}

func (c *customerRefDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain customerRefDTO
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*c = customerRefDTO(p)
		return nil
	}
	return c.ID.UnmarshalJSON(data)
}

type customerDTO struct {
	ID             opaqueID   `json:"id"`
	MongoID        opaqueID   `json:"_id"`
	Name           string     `json:"name"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Address        addressDTO `json:"address"`
	TotalOrders    *int       `json:"total_orders"`
	OrderCount     *int       `json:"order_count"`
	CreatedAt      flexTime   `json:"created_at"`
	CreatedAtCamel flexTime   `json:"createdAt"`
}

type lineItemDTO struct {
	ID        opaqueID `json:"id"`
	ProductID opaqueID `json:"product_id"`
	Title     string   `json:"title"`
	Price     money    `json:"price"`
	Quantity  int      `json:"quantity"`
}

type orderDTO struct {
	ID               opaqueID        `json:"id"`
	MongoID          opaqueID        `json:"_id"`
	CustomerID       opaqueID        `json:"customer_id"`
	CustomerName     string          `json:"customer_name"`
	Customer         *customerRefDTO `json:"customer"`
	Name             string          `json:"name"`
	Total            money           `json:"total"`
	Status           string          `json:"status"`
	Items            []lineItemDTO   `json:"items"`
	PaymentReference string          `json:"payment_reference"`
	CreatedAt        flexTime        `json:"created_at"`
	CreatedAtCamel   flexTime        `json:"createdAt"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type postalRequest struct {
	Complex  string `json:"complex"`
	Street   string `json:"street"`
	Town     string `json:"town"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
}

type cartItemRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type newOrderRequest struct {
	Email            string            `json:"email"`
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	Address          postalRequest     `json:"address"`
	Items            []cartItemRequest `json:"items"`
	Total            json.Number       `json:"total"`
	PaymentReference string            `json:"payment_reference"`
}
