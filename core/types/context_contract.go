package types

import (
	"github.com/meverselabs/yfacfarm/common"
)

// ExecFunc calls the method of the contract at the address
type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	Exec ExecFunc
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// From returns the caller address, a contract address for nested calls
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Contract returns the address of the executing contract
func (cc *ContractContext) Contract() common.Address {
	return cc.cont
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.IsContract(addr)
}

// EmitEvent records the event of the executing contract as key value pairs
func (cc *ContractContext) EmitEvent(name string, kvs ...string) {
	e := &Event{
		Contract: cc.cont,
		Name:     name,
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		e.Attrs = append(e.Attrs, EventAttr{Key: kvs[i], Value: kvs[i+1]})
	}
	cc.ctx.EmitEvent(e)
}
