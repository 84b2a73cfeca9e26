package common

import "errors"

// common errors
var (
	ErrInvalidAddressFormat = errors.New("invalid address format")
)
