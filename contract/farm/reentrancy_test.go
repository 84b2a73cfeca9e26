package farm_test

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/types"

	. "github.com/meverselabs/yfacfarm/extern/test/util"

	. "github.com/onsi/gomega"
)

// reentrantToken calls Deposit of the engine back from TransferFrom
type reentrantToken struct {
	addr   common.Address
	master common.Address
}

func (cont *reentrantToken) Address() common.Address { return cont.addr }
func (cont *reentrantToken) Master() common.Address  { return cont.master }
func (cont *reentrantToken) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *reentrantToken) OnCreate(cc *types.ContractContext, Args []byte) error {
	cc.SetContractData([]byte{0x01}, Args)
	return nil
}
func (cont *reentrantToken) Front() interface{} { return &reentrantFront{} }

type reentrantFront struct{}

func (f *reentrantFront) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) (bool, error) {
	target := common.BytesToAddress(cc.ContractData([]byte{0x01}))
	if _, err := cc.Exec(cc, target, "Deposit", []interface{}{uint64(0), Amount}); err != nil {
		return false, err
	}
	return true, nil
}

func (f *reentrantFront) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	return true, nil
}

func deployReentrantToken(target common.Address) common.Address {
	addr, err := tc.Cn.Deploy(Bob, &reentrantToken{}, target[:])
	Expect(err).To(Succeed())
	return addr
}
