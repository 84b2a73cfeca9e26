package farm

import (
	"bytes"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func logger() *zap.Logger {
	return rlog.Named("farm")
}

func (cont *FarmContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.Owner(cc) {
		return errors.WithStack(ErrNotOwner)
	}
	return nil
}

// nonReentrant locks the engine until the returned release is called
func (cont *FarmContract) nonReentrant(cc *types.ContractContext) (func(), error) {
	if len(cc.ContractData([]byte{tagLocked})) > 0 {
		return nil, errors.WithStack(ErrReentrantCall)
	}
	cc.SetContractData([]byte{tagLocked}, []byte{1})
	return func() {
		cc.SetContractData([]byte{tagLocked}, nil)
	}, nil
}

func (cont *FarmContract) _poolInfo(cc types.ContractLoader, pid uint64) (*PoolInfo, error) {
	if pid >= cont.PoolLength(cc) {
		return nil, errors.Wrapf(ErrInvalidPool, "pid %v", pid)
	}
	bs := cc.ContractData(makePoolInfoKey(pid))
	data := &PoolInfo{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

func (cont *FarmContract) _userInfo(cc types.ContractLoader, pid uint64, user common.Address) (*UserInfo, error) {
	bs := cc.AccountData(user, makeUserInfoKey(pid))
	if len(bs) == 0 {
		return &UserInfo{
			Amount:     amount.Zero(),
			RewardDebt: amount.Zero(),
		}, nil
	}
	data := &UserInfo{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

func (cont *FarmContract) setPoolInfo(cc *types.ContractContext, pid uint64, pool *PoolInfo) error {
	bs, _, err := bin.WriterToBytes(pool)
	if err != nil {
		return err
	}
	cc.SetContractData(makePoolInfoKey(pid), bs)
	return nil
}

func (cont *FarmContract) setUserInfo(cc *types.ContractContext, pid uint64, user common.Address, userInfo *UserInfo) error {
	bs, _, err := bin.WriterToBytes(userInfo)
	if err != nil {
		return err
	}
	cc.SetAccountData(user, makeUserInfoKey(pid), bs)
	return nil
}

func (cont *FarmContract) setTotalAllocPoint(cc *types.ContractContext, totalAllocPoint uint64) {
	cc.SetContractData([]byte{tagTotalAllocPoint}, bin.Uint64Bytes(totalAllocPoint))
}

func (cont *FarmContract) setRewardPerBlock(cc *types.ContractContext, rewardPerBlock *amount.Amount) {
	cc.SetContractData([]byte{tagRewardPerBlock}, rewardPerBlock.Bytes())
}

func (cont *FarmContract) setHalvingSupply(cc *types.ContractContext, halvingSupply *amount.Amount) {
	cc.SetContractData([]byte{tagHalvingSupply}, halvingSupply.Bytes())
}

func (cont *FarmContract) addPoolLength(cc *types.ContractContext) uint64 {
	pl := cont.PoolLength(cc)
	pl++
	cc.SetContractData([]byte{tagPoolLength}, bin.Uint64Bytes(pl))
	return pl
}

// pending returns the unpaid reward of the stake at the accumulated reward per share
func pending(acc PerShare, user *UserInfo) *amount.Amount {
	if !user.Amount.IsPlus() {
		return amount.Zero()
	}
	p := acc.Of(user.Amount).Sub(user.RewardDebt)
	if p.IsMinus() {
		return amount.Zero()
	}
	return p
}

// updatePool settles the pool at the current height and returns the stored pool
func (cont *FarmContract) updatePool(cc *types.ContractContext, pid uint64) (*PoolInfo, error) {
	pool, err := cont._poolInfo(cc, pid)
	if err != nil {
		return nil, err
	}
	height := cc.TargetHeight()
	if height <= pool.LastRewardBlock {
		return pool, nil
	}

	farmToken := cont.FarmToken(cc)
	supply, err := cont.callContAmountValue(cc, farmToken, "TotalSupply")
	if err != nil {
		return nil, err
	}
	cfg := cont.Config(cc)
	st := settle(cfg, pool, height, supply)
	if st.Halving {
		rewardPerBlock := cfg.RewardPerBlock.DivC(2)
		halvingSupply := cfg.HalvingSupply.Add(cfg.MaxSupply).DivC(2)
		cont.setRewardPerBlock(cc, rewardPerBlock)
		cont.setHalvingSupply(cc, halvingSupply)
		cc.EmitEvent("Halving",
			"rewardPerBlock", rewardPerBlock.Int.String(),
			"halvingSupply", halvingSupply.Int.String(),
		)
		logger().Info("reward halved",
			zap.Uint32("height", height),
			zap.String("rewardPerBlock", rewardPerBlock.Int.String()),
			zap.String("halvingSupply", halvingSupply.Int.String()),
		)
	}
	if st.DevMint.IsPlus() {
		if _, err := cc.Exec(cc, farmToken, "Mint", []interface{}{cfg.DevAddr, st.DevMint}); err != nil {
			return nil, err
		}
	}
	if st.EngineMint.IsPlus() {
		if _, err := cc.Exec(cc, farmToken, "Mint", []interface{}{cont.addr, st.EngineMint}); err != nil {
			return nil, err
		}
	}
	pool.AccRewardPerShare = st.Acc
	pool.LastRewardBlock = height
	if err := cont.setPoolInfo(cc, pid, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// safeFarmTokenTransfer sends at most the engine balance of the farm token
func (cont *FarmContract) safeFarmTokenTransfer(cc *types.ContractContext, to common.Address, amt *amount.Amount) error {
	farmToken := cont.FarmToken(cc)
	balanceOf, err := cont.callContAmountValue(cc, farmToken, "BalanceOf", cont.addr)
	if err != nil {
		return err
	}
	sendAmt := amount.Min(amt, balanceOf)
	if !sendAmt.IsPlus() {
		return nil
	}
	if _, err := cc.Exec(cc, farmToken, "Transfer", []interface{}{to, sendAmt}); err != nil {
		return err
	}
	return nil
}

func (cont *FarmContract) callContAmountValue(cc *types.ContractContext, conAddr common.Address, method string, params ...interface{}) (*amount.Amount, error) {
	ins, err := cc.Exec(cc, conAddr, method, params)
	if err != nil {
		return nil, err
	}
	if len(ins) == 0 {
		return nil, errors.Wrapf(ErrInvalidResult, "%v of %v", method, conAddr.String())
	}
	val, ok := ins[0].(*amount.Amount)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidResult, "%v of %v", method, conAddr.String())
	}
	return val, nil
}
