package restclient

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport - ответа не было: нет соединения, таймаут, отмена.
	ErrTransport = errors.New("transport failure")
	// ErrHTTPStatus - ответ получен, но статус не 2xx.
	ErrHTTPStatus = errors.New("http status failure")
)

const transportMessage = "no response received from server"

// RequestError возвращается адаптером на любую неудачу запроса.
// Status == 0 означает что ответа не было вовсе.
type RequestError struct {
	Method  string
	URL     string
	Message string
	Status  int
	Payload any
	Err     error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Status == 0
	case ErrHTTPStatus:
		return e.Status != 0
	default:
		return false
	}
}

// Transport сообщает, что запрос не получил ответа.
func (e *RequestError) Transport() bool {
	return e.Status == 0
}

func newStatusError(method, url string, status int, payload any) *RequestError {
	return &RequestError{
		Method:  method,
		URL:     url,
		Message: messageFromPayload(payload, status),
		Status:  status,
		Payload: payload,
	}
}

func newTransportError(method, url string, cause error) *RequestError {
	msg := transportMessage
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", transportMessage, cause)
	}
	return &RequestError{
		Method:  method,
		URL:     url,
		Message: msg,
		Err:     cause,
	}
}

// messageFromPayload берёт message (или error) из тела ответа сервера,
// иначе "HTTP <status>".
func messageFromPayload(payload any, status int) string {
	if obj, ok := payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
