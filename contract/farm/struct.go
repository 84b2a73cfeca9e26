package farm

import (
	"io"
	"math/big"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
)

// AccPrecision scales the accumulated reward per staked unit
var AccPrecision = big.NewInt(1e12)

// PerShare is a reward per staked unit scaled by AccPrecision
type PerShare struct {
	*big.Int
}

func NewPerShare(v *big.Int) PerShare {
	if v == nil {
		return PerShare{Int: big.NewInt(0)}
	}
	return PerShare{Int: new(big.Int).Set(v)}
}

// Accrue returns ps + reward * AccPrecision / staked
func (ps PerShare) Accrue(reward *amount.Amount, staked *amount.Amount) PerShare {
	if staked.IsZero() {
		return NewPerShare(ps.Int)
	}
	inc := new(big.Int).Mul(reward.Int, AccPrecision)
	inc.Div(inc, staked.Int)
	return PerShare{Int: inc.Add(inc, ps.Int)}
}

// Of returns am * ps / AccPrecision
func (ps PerShare) Of(am *amount.Amount) *amount.Amount {
	v := new(big.Int).Mul(am.Int, ps.Int)
	return amount.NewAmountFromBig(v.Div(v, AccPrecision))
}

type PoolInfo struct {
	Want              common.Address `json:"want"`
	AllocPoint        uint64         `json:"allocPoint"`
	LastRewardBlock   uint32         `json:"lastRewardBlock"`
	AccRewardPerShare PerShare       `json:"accRewardPerShare"`
	TotalStaked       *amount.Amount `json:"totalStaked"`
}

func (s *PoolInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Want); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.AllocPoint); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.LastRewardBlock); err != nil {
		return sum, err
	}
	if sum, err := sw.BigInt(w, s.AccRewardPerShare.Int); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.TotalStaked); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *PoolInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Want); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.AllocPoint); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.LastRewardBlock); err != nil {
		return sum, err
	}
	var acc *big.Int
	if sum, err := sr.BigInt(r, &acc); err != nil {
		return sum, err
	}
	s.AccRewardPerShare = NewPerShare(acc)
	if sum, err := sr.Amount(r, &s.TotalStaked); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

type UserInfo struct {
	Amount     *amount.Amount `json:"amount"`
	RewardDebt *amount.Amount `json:"rewardDebt"`
}

func (s *UserInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Amount(w, s.Amount); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.RewardDebt); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *UserInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Amount(r, &s.Amount); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.RewardDebt); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// Config is the engine configuration read at once
type Config struct {
	Owner           common.Address `json:"owner"`
	FarmToken       common.Address `json:"farmToken"`
	DevAddr         common.Address `json:"devAddr"`
	RewardPerBlock  *amount.Amount `json:"rewardPerBlock"`
	StartBlock      uint32         `json:"startBlock"`
	BonusEndBlock   uint32         `json:"bonusEndBlock"`
	BonusMultiplier uint64         `json:"bonusMultiplier"`
	TotalAllocPoint uint64         `json:"totalAllocPoint"`
	MaxSupply       *amount.Amount `json:"maxSupply"`
	HalvingSupply   *amount.Amount `json:"halvingSupply"`
	PoolLength      uint64         `json:"poolLength"`
}
