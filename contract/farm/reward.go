package farm

import (
	"math/big"

	"github.com/meverselabs/yfacfarm/common/amount"
)

const (
	// BonusMultiplier counts every block of the bonus window this many times
	BonusMultiplier = 10
	// DevFeeDivisor gives the dev address reward/DevFeeDivisor on every settlement
	DevFeeDivisor = 10
)

var (
	// DefaultMaxSupply is 1e9 tokens
	DefaultMaxSupply = amount.NewAmount(1000000000, 0)
	// DefaultHalvingSupply is 5e8 tokens
	DefaultHalvingSupply = amount.NewAmount(500000000, 0)
)

// bonusMultiplier returns the blocks of [from, to) with the blocks of [start, end) counted BonusMultiplier times
func bonusMultiplier(from uint32, to uint32, start uint32, end uint32) uint64 {
	if to <= from {
		return 0
	}
	total := uint64(to - from)
	lo, hi := from, to
	if start > lo {
		lo = start
	}
	if end < hi {
		hi = end
	}
	if hi > lo {
		total += uint64(hi-lo) * (BonusMultiplier - 1)
	}
	return total
}

// splitMint returns the dev and engine mints of the reward under the supply cap
// When the headroom is smaller than both mints they are reduced in proportion, rounding down
func splitMint(reward *amount.Amount, supply *amount.Amount, maxSupply *amount.Amount) (*amount.Amount, *amount.Amount) {
	devMint := reward.DivC(DevFeeDivisor)
	engineMint := reward.Clone()
	requested := engineMint.Add(devMint)
	headroom := amount.Zero()
	if supply.Less(maxSupply) {
		headroom = maxSupply.Sub(supply)
	}
	if headroom.Less(requested) {
		engineMint = engineMint.Mul(headroom).Div(requested)
		devMint = devMint.Mul(headroom).Div(requested)
	}
	return devMint, engineMint
}

type settlement struct {
	Halving    bool
	DevMint    *amount.Amount
	EngineMint *amount.Amount
	Acc        PerShare
}

// settle computes the settlement of the pool at the height on top of the token supply
// the caller guarantees height > pool.LastRewardBlock
func settle(cfg *Config, pool *PoolInfo, height uint32, supply *amount.Amount) *settlement {
	st := &settlement{
		DevMint:    amount.Zero(),
		EngineMint: amount.Zero(),
		Acc:        NewPerShare(pool.AccRewardPerShare.Int),
	}
	if cfg.HalvingSupply.Less(cfg.MaxSupply) && !supply.Less(cfg.HalvingSupply) {
		st.Halving = true
		return st
	}
	if pool.TotalStaked.IsZero() || cfg.TotalAllocPoint == 0 {
		return st
	}
	multiplier := bonusMultiplier(pool.LastRewardBlock, height, cfg.StartBlock, cfg.BonusEndBlock)
	reward := cfg.RewardPerBlock.Mul(amount.NewAmountFromBig(new(big.Int).SetUint64(multiplier)))
	reward = reward.Mul(amount.NewAmountFromBig(new(big.Int).SetUint64(pool.AllocPoint)))
	reward = reward.Div(amount.NewAmountFromBig(new(big.Int).SetUint64(cfg.TotalAllocPoint)))
	st.DevMint, st.EngineMint = splitMint(reward, supply, cfg.MaxSupply)
	st.Acc = st.Acc.Accrue(st.EngineMint, pool.TotalStaked)
	return st
}
