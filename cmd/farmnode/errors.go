package main

import "errors"

// errors
var (
	ErrUnknownToken   = errors.New("unknown token")
	ErrExistToken     = errors.New("exist token")
	ErrUnknownName    = errors.New("unknown name")
	ErrStepHeight     = errors.New("step height already passed")
	ErrInvalidGenesis = errors.New("invalid genesis")
)
