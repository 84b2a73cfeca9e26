package farm

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

// Add appends a pool of the want token, settling every pool first when withUpdate is set
func (cont *FarmContract) Add(cc *types.ContractContext, allocPoint uint64, want common.Address, withUpdate bool) (uint64, error) {
	if err := cont.onlyOwner(cc); err != nil {
		return 0, err
	}
	if withUpdate {
		if err := cont.MassUpdatePools(cc); err != nil {
			return 0, err
		}
	}
	lastRewardBlock := cont.StartBlock(cc)
	if cc.TargetHeight() > lastRewardBlock {
		lastRewardBlock = cc.TargetHeight()
	}

	cont.setTotalAllocPoint(cc, cont.TotalAllocPoint(cc)+allocPoint)
	pid := cont.addPoolLength(cc) - 1
	if err := cont.setPoolInfo(cc, pid, &PoolInfo{
		Want:              want,
		AllocPoint:        allocPoint,
		LastRewardBlock:   lastRewardBlock,
		AccRewardPerShare: NewPerShare(nil),
		TotalStaked:       amount.Zero(),
	}); err != nil {
		return 0, err
	}
	logger().Info("pool added",
		zap.Uint64("pid", pid),
		zap.String("want", want.String()),
		zap.Uint64("allocPoint", allocPoint),
		zap.Uint32("lastRewardBlock", lastRewardBlock),
	)
	return pid, nil
}

// Set changes the allocation point of the pool, settling every pool first when withUpdate is set
func (cont *FarmContract) Set(cc *types.ContractContext, pid uint64, allocPoint uint64, withUpdate bool) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if withUpdate {
		if err := cont.MassUpdatePools(cc); err != nil {
			return err
		}
	}
	pool, err := cont._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	cont.setTotalAllocPoint(cc, cont.TotalAllocPoint(cc)-pool.AllocPoint+allocPoint)
	prev := pool.AllocPoint
	pool.AllocPoint = allocPoint
	if err := cont.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	logger().Info("pool allocation changed",
		zap.Uint64("pid", pid),
		zap.Uint64("from", prev),
		zap.Uint64("to", allocPoint),
	)
	return nil
}

// SetRewardPerBlock changes the emission rate after settling every pool
func (cont *FarmContract) SetRewardPerBlock(cc *types.ContractContext, rewardPerBlock *amount.Amount) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if rewardPerBlock.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	if err := cont.MassUpdatePools(cc); err != nil {
		return err
	}
	cont.setRewardPerBlock(cc, rewardPerBlock)
	return nil
}

// SetMaxSupply caps the total supply the engine mints up to
func (cont *FarmContract) SetMaxSupply(cc *types.ContractContext, maxSupply *amount.Amount) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if maxSupply.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	cc.SetContractData([]byte{tagMaxSupply}, maxSupply.Bytes())
	return nil
}

// SetHalvingSupply sets the total supply at which the next settlement halves the rate
func (cont *FarmContract) SetHalvingSupply(cc *types.ContractContext, halvingSupply *amount.Amount) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if halvingSupply.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	cont.setHalvingSupply(cc, halvingSupply)
	return nil
}

// TransferOwnership hands the owner role over to a non zero address
func (cont *FarmContract) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newOwner == common.ZeroAddr {
		return errors.WithStack(ErrZeroOwner)
	}
	prev := cont.Owner(cc)
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	cc.EmitEvent("OwnershipTransferred", "previousOwner", prev.String(), "newOwner", newOwner.String())
	return nil
}

//////////////////////////////////////////////////
// Public Writer only dev Functions
//////////////////////////////////////////////////

// Dev hands the dev role over, only the current dev can call it
func (cont *FarmContract) Dev(cc *types.ContractContext, devAddr common.Address) error {
	prev := cont.DevAddr(cc)
	if cc.From() != prev {
		return errors.WithStack(ErrNotDev)
	}
	cc.SetContractData([]byte{tagDevAddr}, devAddr[:])
	logger().Info("dev changed", zap.String("from", prev.String()), zap.String("to", devAddr.String()))
	return nil
}
