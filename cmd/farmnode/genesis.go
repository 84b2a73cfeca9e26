package main

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/contract/farm"
	"github.com/meverselabs/yfacfarm/contract/token"
	"github.com/meverselabs/yfacfarm/core/chain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	farmTokenName   = "YFACool"
	farmTokenSymbol = "YFAC"
)

// TokenGenesis is a staking token created at genesis, amounts are in token units
type TokenGenesis struct {
	Name   string            `toml:"name" yaml:"name"`
	Symbol string            `toml:"symbol" yaml:"symbol"`
	Supply map[string]string `toml:"supply" yaml:"supply"`
}

// PoolGenesis adds the pool of the token symbol
type PoolGenesis struct {
	Token      string `toml:"token" yaml:"token"`
	AllocPoint uint64 `toml:"alloc_point" yaml:"alloc_point"`
}

// Genesis describes the contracts deployed on an empty chain
type Genesis struct {
	Owner          string         `toml:"owner" yaml:"owner"`
	Dev            string         `toml:"dev" yaml:"dev"`
	RewardPerBlock string         `toml:"reward_per_block" yaml:"reward_per_block"`
	StartBlock     uint32         `toml:"start_block" yaml:"start_block"`
	BonusEndBlock  uint32         `toml:"bonus_end_block" yaml:"bonus_end_block"`
	MaxSupply      string         `toml:"max_supply" yaml:"max_supply"`
	HalvingSupply  string         `toml:"halving_supply" yaml:"halving_supply"`
	Tokens         []TokenGenesis `toml:"token" yaml:"tokens"`
	Pools          []PoolGenesis  `toml:"pool" yaml:"pools"`
}

// Deployment holds the addresses made by the genesis
type Deployment struct {
	Owner     common.Address
	FarmToken common.Address
	Engine    common.Address
	Tokens    map[string]common.Address
}

// resolver maps a configured account to its address
type resolver func(string) (common.Address, error)

// deployGenesis creates the farm token, the engine and the staking tokens and pools
// The engine becomes the owner of the farm token so that it can mint rewards
func deployGenesis(cn *chain.Chain, gen *Genesis, resolve resolver) (*Deployment, error) {
	owner, err := resolve(gen.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "genesis owner")
	}
	dev, err := resolve(gen.Dev)
	if err != nil {
		return nil, errors.Wrap(err, "genesis dev")
	}
	reward, err := amount.ParseAmount(gen.RewardPerBlock)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidGenesis, "reward_per_block %q", gen.RewardPerBlock)
	}

	dep := &Deployment{
		Owner:  owner,
		Tokens: map[string]common.Address{},
	}
	if dep.FarmToken, err = deployToken(cn, owner, &token.TokenContractConstruction{
		Name:             farmTokenName,
		Symbol:           farmTokenSymbol,
		InitialSupplyMap: map[common.Address]*amount.Amount{},
	}); err != nil {
		return nil, err
	}
	bs, _, err := bin.WriterToBytes(&farm.FarmContractConstruction{
		FarmToken:      dep.FarmToken,
		DevAddr:        dev,
		RewardPerBlock: reward,
		StartBlock:     gen.StartBlock,
		BonusEndBlock:  gen.BonusEndBlock,
	})
	if err != nil {
		return nil, err
	}
	if dep.Engine, err = cn.Deploy(owner, &farm.FarmContract{}, bs); err != nil {
		return nil, errors.Wrap(err, "deploy engine")
	}
	if _, err := cn.ExecuteTx(owner, dep.FarmToken, "TransferOwnership", dep.Engine); err != nil {
		return nil, errors.Wrap(err, "hand over farm token")
	}

	if len(gen.MaxSupply) > 0 {
		if err := sendAmount(cn, owner, dep.Engine, "SetMaxSupply", gen.MaxSupply); err != nil {
			return nil, err
		}
	}
	if len(gen.HalvingSupply) > 0 {
		if err := sendAmount(cn, owner, dep.Engine, "SetHalvingSupply", gen.HalvingSupply); err != nil {
			return nil, err
		}
	}

	for _, tg := range gen.Tokens {
		if _, has := dep.Tokens[tg.Symbol]; has || tg.Symbol == farmTokenSymbol {
			return nil, errors.Wrap(ErrExistToken, tg.Symbol)
		}
		supply := map[common.Address]*amount.Amount{}
		for k, v := range tg.Supply {
			addr, err := resolve(k)
			if err != nil {
				return nil, errors.Wrapf(err, "supply of %v", tg.Symbol)
			}
			am, err := amount.ParseAmount(v)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidGenesis, "supply of %v: %q", tg.Symbol, v)
			}
			supply[addr] = am
		}
		addr, err := deployToken(cn, owner, &token.TokenContractConstruction{
			Name:             tg.Name,
			Symbol:           tg.Symbol,
			InitialSupplyMap: supply,
		})
		if err != nil {
			return nil, err
		}
		dep.Tokens[tg.Symbol] = addr
	}

	for _, pg := range gen.Pools {
		addr, has := dep.Tokens[pg.Token]
		if !has {
			return nil, errors.Wrap(ErrUnknownToken, pg.Token)
		}
		if _, err := cn.ExecuteTx(owner, dep.Engine, "Add", pg.AllocPoint, addr, false); err != nil {
			return nil, errors.Wrapf(err, "add pool %v", pg.Token)
		}
	}

	rlog.Named("genesis").Info("deployed",
		zap.Uint32("height", cn.Height()),
		zap.String("farm_token", dep.FarmToken.String()),
		zap.String("engine", dep.Engine.String()),
		zap.Int("pools", len(gen.Pools)),
	)
	return dep, nil
}

func deployToken(cn *chain.Chain, owner common.Address, args *token.TokenContractConstruction) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(args)
	if err != nil {
		return common.ZeroAddr, err
	}
	addr, err := cn.Deploy(owner, &token.TokenContract{}, bs)
	if err != nil {
		return common.ZeroAddr, errors.Wrapf(err, "deploy token %v", args.Symbol)
	}
	return addr, nil
}

func sendAmount(cn *chain.Chain, from common.Address, to common.Address, method string, v string) error {
	am, err := amount.ParseAmount(v)
	if err != nil {
		return errors.Wrapf(ErrInvalidGenesis, "%v %q", method, v)
	}
	if _, err := cn.ExecuteTx(from, to, method, am); err != nil {
		return errors.Wrap(err, method)
	}
	return nil
}
