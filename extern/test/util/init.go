package util

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/hash"
	"github.com/meverselabs/yfacfarm/contract/farm"
	"github.com/meverselabs/yfacfarm/contract/token"
	"github.com/meverselabs/yfacfarm/core/types"
)

var (
	Alice  = AccountAddress("alice")
	Bob    = AccountAddress("bob")
	Carol  = AccountAddress("carol")
	Dev    = AccountAddress("dev")
	Minter = AccountAddress("minter")
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&token.TokenContract{}, "Token")
	RegisterContractClass(&farm.FarmContract{}, "Farm")
}

// AccountAddress returns the fixed test address of the name
func AccountAddress(name string) common.Address {
	h := hash.Hash([]byte(name))
	return common.BytesToAddress(h[12:])
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
