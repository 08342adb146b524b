package entities

import "errors"

var ErrInvalidPrice = errors.New("invalid price")
