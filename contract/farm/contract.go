package farm

import (
	"bytes"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
)

// FarmContract distributes the minted farm token to the stakers of its pools
type FarmContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FarmContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmContract) Master() common.Address {
	return cont.master
}

func (cont *FarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.RewardPerBlock == nil {
		data.RewardPerBlock = amount.Zero()
	}

	cc.SetContractData([]byte{tagOwner}, cont.master[:])
	cc.SetContractData([]byte{tagFarmToken}, data.FarmToken[:])
	cc.SetContractData([]byte{tagDevAddr}, data.DevAddr[:])
	cc.SetContractData([]byte{tagRewardPerBlock}, data.RewardPerBlock.Bytes())
	cc.SetContractData([]byte{tagStartBlock}, bin.Uint32Bytes(data.StartBlock))
	cc.SetContractData([]byte{tagBonusEndBlock}, bin.Uint32Bytes(data.BonusEndBlock))
	cc.SetContractData([]byte{tagMaxSupply}, DefaultMaxSupply.Bytes())
	cc.SetContractData([]byte{tagHalvingSupply}, DefaultHalvingSupply.Bytes())
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmContract) Owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}

func (cont *FarmContract) FarmToken(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFarmToken}))
}

func (cont *FarmContract) DevAddr(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagDevAddr}))
}

func (cont *FarmContract) RewardPerBlock(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagRewardPerBlock}))
}

func (cont *FarmContract) StartBlock(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagStartBlock})
	if len(bs) == 4 {
		return bin.Uint32(bs)
	}
	return 0
}

func (cont *FarmContract) BonusEndBlock(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagBonusEndBlock})
	if len(bs) == 4 {
		return bin.Uint32(bs)
	}
	return 0
}

func (cont *FarmContract) MaxSupply(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMaxSupply}))
}

func (cont *FarmContract) HalvingSupply(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagHalvingSupply}))
}

func (cont *FarmContract) TotalAllocPoint(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagTotalAllocPoint})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (cont *FarmContract) PoolLength(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagPoolLength})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (cont *FarmContract) PoolInfo(cc types.ContractLoader, pid uint64) (*PoolInfo, error) {
	return cont._poolInfo(cc, pid)
}

func (cont *FarmContract) UserInfo(cc types.ContractLoader, pid uint64, user common.Address) (*UserInfo, error) {
	if pid >= cont.PoolLength(cc) {
		return nil, errors.Wrapf(ErrInvalidPool, "pid %v", pid)
	}
	return cont._userInfo(cc, pid, user)
}

// GetMultiplier returns the reward multiplier over the given from to to block
func (cont *FarmContract) GetMultiplier(cc types.ContractLoader, from uint32, to uint32) uint64 {
	return bonusMultiplier(from, to, cont.StartBlock(cc), cont.BonusEndBlock(cc))
}

// Config returns every configuration value of the engine
func (cont *FarmContract) Config(cc types.ContractLoader) *Config {
	return &Config{
		Owner:           cont.Owner(cc),
		FarmToken:       cont.FarmToken(cc),
		DevAddr:         cont.DevAddr(cc),
		RewardPerBlock:  cont.RewardPerBlock(cc),
		StartBlock:      cont.StartBlock(cc),
		BonusEndBlock:   cont.BonusEndBlock(cc),
		BonusMultiplier: BonusMultiplier,
		TotalAllocPoint: cont.TotalAllocPoint(cc),
		MaxSupply:       cont.MaxSupply(cc),
		HalvingSupply:   cont.HalvingSupply(cc),
		PoolLength:      cont.PoolLength(cc),
	}
}
