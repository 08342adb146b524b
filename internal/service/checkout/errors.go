package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("checkout validation failed")
	ErrReconciliation  = errors.New("payment succeeded but order was not saved")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrSessionResolved = errors.New("checkout session is not awaiting payment")
	ErrInvalidOutcome  = errors.New("invalid payment outcome")

	ErrReferenceMismatch = fmt.Errorf("%w: payment reference does not match session", ErrInvalidOutcome)
)

const (
	MessageMissingFields   = "Please fill in all required fields."
	MessageEmptyCart       = "Your cart is empty."
	MessageInvalidPrice    = "Some cart prices could not be read."
	MessageInvalidQuantity = "Some cart quantities are not valid."
	MessagePaymentClosed   = "Payment window closed."
	MessageReconciliation  = "Order could not be saved, but payment was successful. Please contact support."
)

// ValidationError - форма неполная, до оплаты и до любых запросов.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ReconciliationError: деньги списаны, заказа на бэкенде нет.
// Причину не разворачиваем через Unwrap, чтобы ошибку нельзя было
// спутать с обычной транспортной.
type ReconciliationError struct {
	SessionID string
	Reference string
	Cause     error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s: session %s, payment reference %s: %v", ErrReconciliation, e.SessionID, e.Reference, e.Cause)
}

func (e *ReconciliationError) Is(target error) bool {
	return target == ErrReconciliation
}
