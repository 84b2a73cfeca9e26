package chain

import "errors"

// errors
var (
	ErrStoreClosed   = errors.New("store closed")
	ErrChainClosed   = errors.New("chain closed")
	ErrInvalidHeight = errors.New("invalid height")
	ErrNotExistKey   = errors.New("not exist key")
	ErrDirtyContext  = errors.New("dirty context")
)
