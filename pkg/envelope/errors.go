package envelope

import "errors"

var ErrShape = errors.New("unexpected response shape")

// ShapeError - ответ успешный, но не в ожидаемой структуре.
type ShapeError struct {
	Diagnostic string
	Raw        any
}

func newShapeError(raw any, diagnostic string) *ShapeError {
	return &ShapeError{Diagnostic: diagnostic, Raw: raw}
}

func (e *ShapeError) Error() string {
	return ErrShape.Error() + ": " + e.Diagnostic
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}
