package farm

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// MassUpdatePools settles every pool
func (cont *FarmContract) MassUpdatePools(cc *types.ContractContext) error {
	length := cont.PoolLength(cc)
	for pid := uint64(0); pid < length; pid++ {
		if err := cont.UpdatePool(cc, pid); err != nil {
			return err
		}
	}
	return nil
}

// UpdatePool settles the given pool to the current height
func (cont *FarmContract) UpdatePool(cc *types.ContractContext, pid uint64) error {
	_, err := cont.updatePool(cc, pid)
	return err
}

// Deposit stakes the amount of the want token, a zero amount only claims the pending reward
func (cont *FarmContract) Deposit(cc *types.ContractContext, pid uint64, amt *amount.Amount) error {
	if amt.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	release, err := cont.nonReentrant(cc)
	if err != nil {
		return err
	}
	defer release()

	pool, err := cont.updatePool(cc, pid)
	if err != nil {
		return err
	}
	user, err := cont._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	reward := pending(pool.AccRewardPerShare, user)

	user.Amount = user.Amount.Add(amt)
	user.RewardDebt = pool.AccRewardPerShare.Of(user.Amount)
	pool.TotalStaked = pool.TotalStaked.Add(amt)
	if err := cont.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := cont.setUserInfo(cc, pid, cc.From(), user); err != nil {
		return err
	}

	if reward.IsPlus() {
		if err := cont.safeFarmTokenTransfer(cc, cc.From(), reward); err != nil {
			return err
		}
	}
	if amt.IsPlus() {
		if _, err := cc.Exec(cc, pool.Want, "TransferFrom", []interface{}{cc.From(), cont.addr, amt}); err != nil {
			return err
		}
	}
	cc.EmitEvent("Deposit", "user", cc.From().String(), "pid", uint64String(pid), "amount", amt.Int.String())
	return nil
}

// Withdraw unstakes the amount of the want token and pays the pending reward
func (cont *FarmContract) Withdraw(cc *types.ContractContext, pid uint64, amt *amount.Amount) error {
	if amt.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	release, err := cont.nonReentrant(cc)
	if err != nil {
		return err
	}
	defer release()

	if pid >= cont.PoolLength(cc) {
		return errors.Wrapf(ErrInvalidPool, "pid %v", pid)
	}
	user, err := cont._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	if user.Amount.Less(amt) {
		return errors.WithStack(ErrWithdrawNotGood)
	}
	pool, err := cont.updatePool(cc, pid)
	if err != nil {
		return err
	}
	reward := pending(pool.AccRewardPerShare, user)

	user.Amount = user.Amount.Sub(amt)
	user.RewardDebt = pool.AccRewardPerShare.Of(user.Amount)
	pool.TotalStaked = pool.TotalStaked.Sub(amt)
	if err := cont.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := cont.setUserInfo(cc, pid, cc.From(), user); err != nil {
		return err
	}

	if reward.IsPlus() {
		if err := cont.safeFarmTokenTransfer(cc, cc.From(), reward); err != nil {
			return err
		}
	}
	if amt.IsPlus() {
		if _, err := cc.Exec(cc, pool.Want, "Transfer", []interface{}{cc.From(), amt}); err != nil {
			return err
		}
	}
	cc.EmitEvent("Withdraw", "user", cc.From().String(), "pid", uint64String(pid), "amount", amt.Int.String())
	return nil
}

// EmergencyWithdraw returns the whole stake without settlement, the pending reward is forfeited
func (cont *FarmContract) EmergencyWithdraw(cc *types.ContractContext, pid uint64) error {
	release, err := cont.nonReentrant(cc)
	if err != nil {
		return err
	}
	defer release()

	pool, err := cont._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	user, err := cont._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	amt := user.Amount
	pool.TotalStaked = pool.TotalStaked.Sub(amt)
	if err := cont.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := cont.setUserInfo(cc, pid, cc.From(), &UserInfo{
		Amount:     amount.Zero(),
		RewardDebt: amount.Zero(),
	}); err != nil {
		return err
	}

	if amt.IsPlus() {
		if _, err := cc.Exec(cc, pool.Want, "Transfer", []interface{}{cc.From(), amt}); err != nil {
			return err
		}
	}
	cc.EmitEvent("EmergencyWithdraw", "user", cc.From().String(), "pid", uint64String(pid), "amount", amt.Int.String())
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// PendingReward returns the reward that a claim at the current height would pay
func (cont *FarmContract) PendingReward(cc *types.ContractContext, pid uint64, _user common.Address) (*amount.Amount, error) {
	pool, err := cont._poolInfo(cc, pid)
	if err != nil {
		return nil, err
	}
	user, err := cont._userInfo(cc, pid, _user)
	if err != nil {
		return nil, err
	}
	acc := pool.AccRewardPerShare
	if height := cc.TargetHeight(); height > pool.LastRewardBlock {
		supply, err := cont.callContAmountValue(cc, cont.FarmToken(cc), "TotalSupply")
		if err != nil {
			return nil, err
		}
		acc = settle(cont.Config(cc), pool, height, supply).Acc
	}
	return pending(acc, user), nil
}
