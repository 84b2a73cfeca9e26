package types

import "errors"

// context errors
var (
	ErrExistContractType = errors.New("exist contract type")
	ErrInvalidClassID    = errors.New("invalid class id")
	ErrNotExistContract  = errors.New("not exist contract")
	ErrExistAddress      = errors.New("exist address")
	ErrMethodNotGiven    = errors.New("method not given")
	ErrMethodNotExist    = errors.New("method not exist")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrExpiredInteractor = errors.New("expired")
	ErrContractPanic     = errors.New("contract panic")
)
