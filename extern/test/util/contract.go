package util

import (
	"io"
	"math/big"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/contract/farm"
	"github.com/meverselabs/yfacfarm/contract/token"
	"github.com/meverselabs/yfacfarm/core/types"
)

// Units returns the amount of raw base units
func Units(v int64) *amount.Amount {
	return amount.NewAmountFromBig(big.NewInt(v))
}

// UnitsString parses the decimal base units
func UnitsString(v string) *amount.Amount {
	am, err := amount.ParseBaseUnits(v)
	if err != nil {
		panic(err)
	}
	return am
}

func (tc *TestContext) DeployContract(cont types.Contract, owner common.Address, contArgs io.WriterTo) common.Address {
	var bs []byte
	if contArgs != nil {
		var err error
		bs, _, err = bin.WriterToBytes(contArgs)
		if err != nil {
			panic(err)
		}
	}
	addr, err := tc.Cn.Deploy(owner, cont, bs)
	if err != nil {
		panic(err)
	}
	return addr
}

func (tc *TestContext) MakeToken(owner common.Address, name string, symbol string, supply map[common.Address]*amount.Amount) common.Address {
	if supply == nil {
		supply = map[common.Address]*amount.Amount{}
	}
	return tc.DeployContract(&token.TokenContract{}, owner, &token.TokenContractConstruction{
		Name:             name,
		Symbol:           symbol,
		InitialSupplyMap: supply,
	})
}

// MakeFarm deploys the engine of the farm token owned by the owner
func (tc *TestContext) MakeFarm(owner common.Address, farmToken common.Address, dev common.Address, rewardPerBlock int64, startBlock uint32, bonusEndBlock uint32) common.Address {
	return tc.DeployContract(&farm.FarmContract{}, owner, &farm.FarmContractConstruction{
		FarmToken:      farmToken,
		DevAddr:        dev,
		RewardPerBlock: Units(rewardPerBlock),
		StartBlock:     startBlock,
		BonusEndBlock:  bonusEndBlock,
	})
}
