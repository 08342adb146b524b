package checkout

import (
	"strings"

	"storefront/internal/entities"
)

func validate(form entities.CheckoutForm, cart entities.Cart) *ValidationError {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"email", form.Email},
		{"phone", form.Phone},
		{"first_name", form.FirstName},
		{"last_name", form.LastName},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Message: MessageMissingFields}
	}

	if len(cart) == 0 {
		return &ValidationError{Fields: []string{"cart"}, Message: MessageEmptyCart}
	}
	for _, item := range cart {
		if _, err := entities.ParsePrice(item.Price); err != nil {
			return &ValidationError{Fields: []string{"cart"}, Message: MessageInvalidPrice}
		}
		if item.Quantity <= 0 {
			return &ValidationError{Fields: []string{"cart"}, Message: MessageInvalidQuantity}
		}
	}

	return nil
}
