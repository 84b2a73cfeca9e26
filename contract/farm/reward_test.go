package farm

import (
	"math/big"
	"testing"

	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/stretchr/testify/assert"
)

func units(v int64) *amount.Amount {
	return amount.NewAmountFromBig(big.NewInt(v))
}

func TestBonusMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		from, to uint32
		want     uint64
	}{
		{"before start", 10, 20, 10},
		{"straddles start", 95, 105, 5 + 5*BonusMultiplier},
		{"inside", 100, 200, 100 * BonusMultiplier},
		{"straddles end", 195, 205, 5*BonusMultiplier + 5},
		{"straddles both", 90, 210, 10 + 100*BonusMultiplier + 10},
		{"after end", 200, 210, 10},
		{"last bonus block", 199, 200, BonusMultiplier},
		{"empty", 150, 150, 0},
		{"reversed", 160, 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bonusMultiplier(tt.from, tt.to, 100, 200))
		})
	}
	assert.Equal(t, uint64(15), bonusMultiplier(100, 115, 100, 10))
}

func TestSplitMint(t *testing.T) {
	dev, eng := splitMint(units(1000), units(0), units(1000000))
	assert.Equal(t, "100", dev.Int.String())
	assert.Equal(t, "1000", eng.Int.String())

	// 1100 requested with 550 left
	dev, eng = splitMint(units(1000), units(450), units(1000))
	assert.Equal(t, "50", dev.Int.String())
	assert.Equal(t, "500", eng.Int.String())

	dev, eng = splitMint(units(1000), units(1000), units(1000))
	assert.True(t, dev.IsZero())
	assert.True(t, eng.IsZero())

	dev, eng = splitMint(units(1000), units(2000), units(1000))
	assert.True(t, dev.IsZero())
	assert.True(t, eng.IsZero())
}

func TestSettle(t *testing.T) {
	cfg := &Config{
		RewardPerBlock:  units(100),
		StartBlock:      0,
		BonusEndBlock:   0,
		TotalAllocPoint: 2,
		MaxSupply:       DefaultMaxSupply,
		HalvingSupply:   DefaultHalvingSupply,
	}
	pool := &PoolInfo{
		AllocPoint:        1,
		LastRewardBlock:   10,
		AccRewardPerShare: NewPerShare(nil),
		TotalStaked:       units(50),
	}

	st := settle(cfg, pool, 20, units(0))
	assert.False(t, st.Halving)
	assert.Equal(t, "500", st.EngineMint.Int.String())
	assert.Equal(t, "50", st.DevMint.Int.String())
	assert.Equal(t, "10000000000000", st.Acc.String())
	assert.Equal(t, "0", pool.AccRewardPerShare.String())

	pool.TotalStaked = units(0)
	st = settle(cfg, pool, 20, units(0))
	assert.True(t, st.EngineMint.IsZero())
	assert.Equal(t, "0", st.Acc.String())

	pool.TotalStaked = units(50)
	st = settle(cfg, pool, 20, DefaultHalvingSupply)
	assert.True(t, st.Halving)
	assert.True(t, st.EngineMint.IsZero())

	// no halving once the threshold reached the cap
	cfg.HalvingSupply = DefaultMaxSupply
	st = settle(cfg, pool, 20, DefaultMaxSupply)
	assert.False(t, st.Halving)
	assert.True(t, st.EngineMint.IsZero())
}

func TestPerShare(t *testing.T) {
	ps := NewPerShare(nil).Accrue(units(1000), units(3))
	assert.Equal(t, "333333333333333", ps.String())
	assert.Equal(t, "999", ps.Of(units(3)).Int.String())
	assert.Equal(t, ps.String(), ps.Accrue(units(10), units(0)).String())
}
