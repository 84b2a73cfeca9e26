package token

import "errors"

// errors
var (
	ErrNotOwner           = errors.New("Ownable: caller is not the owner")
	ErrZeroOwner          = errors.New("Ownable: new owner is the zero address")
	ErrExceedsBalance     = errors.New("ERC20: transfer amount exceeds balance")
	ErrExceedsAllowance   = errors.New("ERC20: transfer amount exceeds allowance")
	ErrBurnExceedsBalance = errors.New("ERC20: burn amount exceeds balance")
	ErrTransferFromZero   = errors.New("ERC20: transfer from the zero address")
	ErrTransferToZero     = errors.New("ERC20: transfer to the zero address")
	ErrMintToZero         = errors.New("ERC20: mint to the zero address")
	ErrApproveToZero      = errors.New("ERC20: approve to the zero address")
	ErrNegativeAmount     = errors.New("ERC20: negative amount")
)
