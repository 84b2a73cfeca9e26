package util

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/backend"
	"github.com/meverselabs/yfacfarm/core/backend/leveldb_driver"
	"github.com/meverselabs/yfacfarm/core/chain"
)

// TestContext runs a chain on an in-memory store
// Every transaction is executed at the next height like a single-tx block
type TestContext struct {
	Cn *chain.Chain
}

func NewTestContext() *TestContext {
	db, err := backend.Create("leveldb", leveldb_driver.MemoryPath)
	if err != nil {
		panic(err)
	}
	st, err := chain.NewStore(db)
	if err != nil {
		panic(err)
	}
	return &TestContext{
		Cn: chain.NewChain(st),
	}
}

func (tc *TestContext) Close() {
	tc.Cn.Close()
}

func (tc *TestContext) Height() uint32 {
	return tc.Cn.Height()
}

// AdvanceBlockTo moves the chain to the height, the next transaction executes at height+1
func (tc *TestContext) AdvanceBlockTo(height uint32) {
	if err := tc.Cn.AdvanceTo(height); err != nil {
		panic(err)
	}
}

func (tc *TestContext) SendTx(from common.Address, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	return tc.Cn.ExecuteTx(from, to, method, args...)
}

func (tc *TestContext) MustSendTx(from common.Address, to common.Address, method string, args ...interface{}) []interface{} {
	is, err := tc.SendTx(from, to, method, args...)
	if err != nil {
		panic(err)
	}
	return is
}

func (tc *TestContext) Call(to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	return tc.Cn.Call(common.ZeroAddr, to, method, args...)
}

func (tc *TestContext) MustCall(to common.Address, method string, args ...interface{}) []interface{} {
	is, err := tc.Call(to, method, args...)
	if err != nil {
		panic(err)
	}
	return is
}

// BalanceOf returns the token balance in base units
func (tc *TestContext) BalanceOf(tokenAddr common.Address, addr common.Address) string {
	return tc.MustCall(tokenAddr, "BalanceOf", addr)[0].(*amount.Amount).Int.String()
}

// TotalSupply returns the token supply in base units
func (tc *TestContext) TotalSupply(tokenAddr common.Address) string {
	return tc.MustCall(tokenAddr, "TotalSupply")[0].(*amount.Amount).Int.String()
}
