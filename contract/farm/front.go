package farm

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/types"
)

func (cont *FarmContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FarmContract
}

func (f *front) Add(cc *types.ContractContext, allocPoint uint64, want common.Address, withUpdate bool) (uint64, error) {
	return f.cont.Add(cc, allocPoint, want, withUpdate)
}

func (f *front) Set(cc *types.ContractContext, pid uint64, allocPoint uint64, withUpdate bool) error {
	return f.cont.Set(cc, pid, allocPoint, withUpdate)
}

func (f *front) SetRewardPerBlock(cc *types.ContractContext, rewardPerBlock *amount.Amount) error {
	return f.cont.SetRewardPerBlock(cc, rewardPerBlock)
}

func (f *front) SetMaxSupply(cc *types.ContractContext, maxSupply *amount.Amount) error {
	return f.cont.SetMaxSupply(cc, maxSupply)
}

func (f *front) SetHalvingSupply(cc *types.ContractContext, halvingSupply *amount.Amount) error {
	return f.cont.SetHalvingSupply(cc, halvingSupply)
}

func (f *front) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	return f.cont.TransferOwnership(cc, newOwner)
}

func (f *front) Dev(cc *types.ContractContext, devAddr common.Address) error {
	return f.cont.Dev(cc, devAddr)
}

func (f *front) MassUpdatePools(cc *types.ContractContext) error {
	return f.cont.MassUpdatePools(cc)
}

func (f *front) UpdatePool(cc *types.ContractContext, pid uint64) error {
	return f.cont.UpdatePool(cc, pid)
}

func (f *front) Deposit(cc *types.ContractContext, pid uint64, amt *amount.Amount) error {
	return f.cont.Deposit(cc, pid, amt)
}

func (f *front) Withdraw(cc *types.ContractContext, pid uint64, amt *amount.Amount) error {
	return f.cont.Withdraw(cc, pid, amt)
}

func (f *front) EmergencyWithdraw(cc *types.ContractContext, pid uint64) error {
	return f.cont.EmergencyWithdraw(cc, pid)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) PendingReward(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, error) {
	return f.cont.PendingReward(cc, pid, user)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) FarmToken(cc types.ContractLoader) common.Address {
	return f.cont.FarmToken(cc)
}

func (f *front) DevAddr(cc types.ContractLoader) common.Address {
	return f.cont.DevAddr(cc)
}

func (f *front) RewardPerBlock(cc types.ContractLoader) *amount.Amount {
	return f.cont.RewardPerBlock(cc)
}

func (f *front) StartBlock(cc types.ContractLoader) uint32 {
	return f.cont.StartBlock(cc)
}

func (f *front) BonusEndBlock(cc types.ContractLoader) uint32 {
	return f.cont.BonusEndBlock(cc)
}

func (f *front) BonusMultiplier(cc types.ContractLoader) uint64 {
	return BonusMultiplier
}

func (f *front) MaxSupply(cc types.ContractLoader) *amount.Amount {
	return f.cont.MaxSupply(cc)
}

func (f *front) HalvingSupply(cc types.ContractLoader) *amount.Amount {
	return f.cont.HalvingSupply(cc)
}

func (f *front) TotalAllocPoint(cc types.ContractLoader) uint64 {
	return f.cont.TotalAllocPoint(cc)
}

func (f *front) PoolLength(cc types.ContractLoader) uint64 {
	return f.cont.PoolLength(cc)
}

func (f *front) PoolInfo(cc types.ContractLoader, pid uint64) (*PoolInfo, error) {
	return f.cont.PoolInfo(cc, pid)
}

func (f *front) UserInfo(cc types.ContractLoader, pid uint64, user common.Address) (*UserInfo, error) {
	return f.cont.UserInfo(cc, pid, user)
}

func (f *front) GetMultiplier(cc types.ContractLoader, from uint32, to uint32) uint64 {
	return f.cont.GetMultiplier(cc, from, to)
}

func (f *front) Config(cc types.ContractLoader) *Config {
	return f.cont.Config(cc)
}
