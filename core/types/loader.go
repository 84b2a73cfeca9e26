package types

import (
	"github.com/meverselabs/yfacfarm/common"
)

// Loader defines functions that loads state data from the target chain
type Loader interface {
	TargetHeight() uint32
	ContractDefine(addr common.Address) *ContractDefine
	Data(cont common.Address, addr common.Address, name []byte) []byte
}

// ContractLoader defines functions that loads state data of the contract
type ContractLoader interface {
	TargetHeight() uint32
	From() common.Address
	ContractData(name []byte) []byte
	AccountData(addr common.Address, name []byte) []byte
}

type emptyLoader struct{}

func newEmptyLoader() Loader {
	return &emptyLoader{}
}

func (st *emptyLoader) TargetHeight() uint32 {
	return 0
}

func (st *emptyLoader) ContractDefine(addr common.Address) *ContractDefine {
	return nil
}

func (st *emptyLoader) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return nil
}
