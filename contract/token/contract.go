package token

import (
	"bytes"
	"math/big"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
)

// Decimals of every token of the contract
const Decimals = 18

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	cc.SetContractData([]byte{tagTokenOwner}, cont.master[:])
	for k, v := range data.InitialSupplyMap {
		if err := cont.mint(cc, k, v); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) setBalance(cc *types.ContractContext, addr common.Address, bal *amount.Amount) {
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}
}

func (cont *TokenContract) setTotalSupply(cc *types.ContractContext, total *amount.Amount) {
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
}

func (cont *TokenContract) mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.WithStack(ErrMintToZero)
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	cont.setTotalSupply(cc, cont.TotalSupply(cc).Add(Amount))
	cont.setBalance(cc, To, cont.BalanceOf(cc, To).Add(Amount))
	cc.EmitEvent("Transfer", "from", common.ZeroAddr.String(), "to", To.String(), "value", Amount.Int.String())
	return nil
}

func (cont *TokenContract) transfer(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if From == common.ZeroAddr {
		return errors.WithStack(ErrTransferFromZero)
	}
	if To == common.ZeroAddr {
		return errors.WithStack(ErrTransferToZero)
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	fromBalance := cont.BalanceOf(cc, From)
	if fromBalance.Less(Amount) {
		return errors.Wrapf(ErrExceedsBalance, "%v has %v, sends %v", From.String(), fromBalance.String(), Amount.String())
	}
	cont.setBalance(cc, From, fromBalance.Sub(Amount))
	cont.setBalance(cc, To, cont.BalanceOf(cc, To).Add(Amount))
	cc.EmitEvent("Transfer", "from", From.String(), "to", To.String(), "value", Amount.Int.String())
	return nil
}

func (cont *TokenContract) approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) error {
	if spender == common.ZeroAddr {
		return errors.WithStack(ErrApproveToZero)
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	if Amount.IsZero() {
		cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), nil)
	} else {
		cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), Amount.Bytes())
	}
	cc.EmitEvent("Approval", "owner", owner.String(), "spender", spender.String(), "value", Amount.Int.String())
	return nil
}

func (cont *TokenContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.Owner(cc) {
		return errors.WithStack(ErrNotOwner)
	}
	return nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return cont.transfer(cc, cc.From(), To, Amount)
}

// TransferFrom moves the amount of From using the allowance given to the caller
func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if err := cont.transfer(cc, From, To, Amount); err != nil {
		return err
	}
	allowance := cont.Allowance(cc, From, cc.From())
	if allowance.Less(Amount) {
		return errors.Wrapf(ErrExceedsAllowance, "%v allows %v, spends %v", From.String(), allowance.String(), Amount.String())
	}
	return cont.approve(cc, From, cc.From(), allowance.Sub(Amount))
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	return cont.approve(cc, cc.From(), spender, Amount)
}

// Mint creates the amount to the address, only the owner can mint
func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	return cont.mint(cc, To, Amount)
}

func (cont *TokenContract) Burn(cc *types.ContractContext, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	bal := cont.BalanceOf(cc, cc.From())
	if bal.Less(Amount) {
		return errors.WithStack(ErrBurnExceedsBalance)
	}
	cont.setBalance(cc, cc.From(), bal.Sub(Amount))
	cont.setTotalSupply(cc, cont.TotalSupply(cc).Sub(Amount))
	cc.EmitEvent("Transfer", "from", cc.From().String(), "to", common.ZeroAddr.String(), "value", Amount.Int.String())
	return nil
}

func (cont *TokenContract) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newOwner == common.ZeroAddr {
		return errors.WithStack(ErrZeroOwner)
	}
	prev := cont.Owner(cc)
	cc.SetContractData([]byte{tagTokenOwner}, newOwner[:])
	cc.EmitEvent("OwnershipTransferred", "previousOwner", prev.String(), "newOwner", newOwner.String())
	return nil
}

func (cont *TokenContract) RenounceOwnership(cc *types.ContractContext) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	prev := cont.Owner(cc)
	cc.SetContractData([]byte{tagTokenOwner}, nil)
	cc.EmitEvent("OwnershipTransferred", "previousOwner", prev.String(), "newOwner", common.ZeroAddr.String())
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(Decimals)
}

func (cont *TokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply}))
}

func (cont *TokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(from, []byte{tagTokenAmount}))
}

func (cont *TokenContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(_owner, makeTokenKey(_spender, tagTokenApprove)))
}

func (cont *TokenContract) Owner(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagTokenOwner})
	if len(bs) == 0 {
		return common.ZeroAddr
	}
	return common.BytesToAddress(bs)
}
