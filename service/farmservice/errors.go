package farmservice

import "errors"

// errors
var (
	ErrInvalidResult = errors.New("invalid result")
)
