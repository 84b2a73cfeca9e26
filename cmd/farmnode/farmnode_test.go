package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/core/backend/leveldb_driver"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
genesis:
  owner: alice
  dev: dev
  reward_per_block: "100"
  tokens:
    - name: LPToken
      symbol: LP
      supply:
        bob: "1000"
  pools:
    - token: LP
      alloc_point: 1
steps:
  - from: bob
    to: LP
    method: Approve
    args: ["@farm", "1000"]
  - at: 10
    from: bob
    to: farm
    method: Deposit
    args: ["0", "10"]
  - at: 12
    from: carol
    to: farm
    method: Withdraw
    args: ["0", "1"]
  - at: 15
    from: bob
    to: farm
    method: Withdraw
    args: ["0", "10"]
  - to: farm
    method: PendingReward
    args: ["0", "@bob"]
    view: true
report: [bob, dev]
`

func TestSimulate(t *testing.T) {
	sc, err := parseScenario([]byte(testScenario))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc))
	out := buf.String()

	assert.Contains(t, out, "10 bob farm.Deposit ok\n  bob 0\n  dev 0\n")
	assert.Contains(t, out, "12 carol farm.Withdraw error:")
	assert.Contains(t, out, "15 bob farm.Withdraw ok\n  bob 500\n  dev 50\n")
	assert.Contains(t, out, "15  farm.PendingReward 0\n")
	assert.True(t, strings.HasSuffix(out, "height 15 YFAC total 550\n"), out)
}

func TestSimulateErrors(t *testing.T) {
	_, err := parseScenario([]byte("stepz: []"))
	assert.Error(t, err)

	sc, err := parseScenario([]byte(`
genesis:
  owner: alice
  dev: dev
  reward_per_block: "100"
steps:
  - at: 2
    from: alice
    to: farm
    method: MassUpdatePools
`))
	require.NoError(t, err)
	var buf bytes.Buffer
	err = runScenario(&buf, sc)
	assert.True(t, errors.Is(err, ErrStepHeight), "%v", err)
}

func TestGenesis(t *testing.T) {
	cn, err := openChain("leveldb", leveldb_driver.MemoryPath)
	require.NoError(t, err)
	defer cn.Close()

	gen := &Genesis{
		Owner:          accountAddress("alice").String(),
		Dev:            accountAddress("dev").String(),
		RewardPerBlock: "10",
		StartBlock:     100,
		BonusEndBlock:  200,
		MaxSupply:      "1000000",
		Tokens: []TokenGenesis{
			{Name: "LPToken", Symbol: "LP", Supply: map[string]string{accountAddress("bob").String(): "50"}},
			{Name: "LPToken2", Symbol: "LP2"},
		},
		Pools: []PoolGenesis{
			{Token: "LP", AllocPoint: 10},
			{Token: "LP2", AllocPoint: 20},
		},
	}
	dep, err := deployGenesis(cn, gen, common.ParseAddress)
	require.NoError(t, err)

	is, err := cn.Call(common.ZeroAddr, dep.FarmToken, "Owner")
	require.NoError(t, err)
	assert.Equal(t, dep.Engine, is[0])

	is, err = cn.Call(common.ZeroAddr, dep.Engine, "TotalAllocPoint")
	require.NoError(t, err)
	assert.Equal(t, uint64(30), is[0])

	is, err = cn.Call(common.ZeroAddr, dep.Engine, "MaxSupply")
	require.NoError(t, err)
	assert.Equal(t, "1000000", format(is[0]))

	is, err = cn.Call(common.ZeroAddr, dep.Tokens["LP"], "BalanceOf", accountAddress("bob"))
	require.NoError(t, err)
	assert.Equal(t, "50", format(is[0]))

	var buf bytes.Buffer
	require.NoError(t, dumpStore(&buf, cn.Store(), &dep.Engine))
	assert.Contains(t, buf.String(), "FarmContract")
	assert.NotContains(t, buf.String(), "TokenContract")
}

func TestGenesisErrors(t *testing.T) {
	cn, err := openChain("leveldb", leveldb_driver.MemoryPath)
	require.NoError(t, err)
	defer cn.Close()

	_, err = deployGenesis(cn, &Genesis{Dev: "dev", RewardPerBlock: "1"}, common.ParseAddress)
	assert.Error(t, err)

	_, err = deployGenesis(cn, &Genesis{
		Owner:          "alice",
		Dev:            "dev",
		RewardPerBlock: "1",
		Pools:          []PoolGenesis{{Token: "NOPE", AllocPoint: 1}},
	}, nameResolver)
	assert.True(t, errors.Is(err, ErrUnknownToken), "%v", err)

	_, err = deployGenesis(cn, &Genesis{
		Owner:          "alice",
		Dev:            "dev",
		RewardPerBlock: "1",
		Tokens:         []TokenGenesis{{Name: "A", Symbol: "A"}, {Name: "B", Symbol: "A"}},
	}, nameResolver)
	assert.True(t, errors.Is(err, ErrExistToken), "%v", err)

	_, err = deployGenesis(cn, &Genesis{Owner: "alice", Dev: "dev", RewardPerBlock: "x"}, nameResolver)
	assert.True(t, errors.Is(err, ErrInvalidGenesis), "%v", err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
store_driver = "bolt"
store_path = "./_bolt"
api_bind = ":48001"

[genesis]
owner = "0x0000000000000000000000000000000000000001"
dev = "0x0000000000000000000000000000000000000002"
reward_per_block = "100"
start_block = 10

[[genesis.token]]
name = "LPToken"
symbol = "LP"
[genesis.token.supply]
"0x0000000000000000000000000000000000000003" = "1000"

[[genesis.pool]]
token = "LP"
alloc_point = 1
`), 0644))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("FARM_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("FARM_LOG_LEVEL") })
	t.Setenv("FARM_STORE_PATH", "./_override")

	cfg, err := loadConfig(path, envPath)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "./_override", cfg.StorePath)
	assert.Equal(t, ":48001", cfg.APIBind)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.APIWorkers)
	assert.Equal(t, uint32(10), cfg.Genesis.StartBlock)
	require.Len(t, cfg.Genesis.Tokens, 1)
	assert.Equal(t, "1000", cfg.Genesis.Tokens[0].Supply["0x0000000000000000000000000000000000000003"])
	require.Len(t, cfg.Genesis.Pools, 1)
	assert.Equal(t, uint64(1), cfg.Genesis.Pools[0].AllocPoint)

	cfg, err = loadConfig(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "./_override", cfg.StorePath)

	_, err = loadConfig(filepath.Join(dir, "missing.toml"), "")
	assert.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	carol := accountAddress("carol")

	addr, err := parseAddress(carol.String())
	require.NoError(t, err)
	assert.Equal(t, carol, addr)

	addr, err = parseAddress(common.ShortString(carol))
	require.NoError(t, err)
	assert.Equal(t, carol, addr)

	_, err = parseAddress("carol")
	assert.Error(t, err)

	addr, err = nameResolver(common.ShortString(carol))
	require.NoError(t, err)
	assert.Equal(t, carol, addr)

	addr, err = nameResolver("bob")
	require.NoError(t, err)
	assert.Equal(t, accountAddress("bob"), addr)
}
