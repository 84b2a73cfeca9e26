package farm

import "errors"

// errors
var (
	ErrNotOwner        = errors.New("Ownable: caller is not the owner")
	ErrZeroOwner       = errors.New("Ownable: new owner is the zero address")
	ErrNotDev          = errors.New("dev: wut?")
	ErrWithdrawNotGood = errors.New("withdraw: not good")
	ErrReentrantCall   = errors.New("ReentrancyGuard: reentrant call")
	ErrInvalidPool     = errors.New("farm: invalid pool id")
	ErrInvalidAmount   = errors.New("farm: invalid amount")
	ErrInvalidResult   = errors.New("farm: invalid token result")
)
