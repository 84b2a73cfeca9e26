package farmservice_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/service/apiserver"
	"github.com/meverselabs/yfacfarm/service/farmservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/meverselabs/yfacfarm/extern/test/util"
)

type fixture struct {
	tc     *TestContext
	srv    *httptest.Server
	api    *apiserver.APIServer
	yfac   common.Address
	lp     common.Address
	engine common.Address
}

func newFixture(t *testing.T) *fixture {
	tc := NewTestContext()
	f := &fixture{tc: tc}
	f.yfac = tc.MakeToken(Alice, "YFACool", "YFAC", nil)
	f.lp = tc.MakeToken(Minter, "LPToken", "LP", map[common.Address]*amount.Amount{Bob: Units(1000)})
	f.engine = tc.MakeFarm(Alice, f.yfac, Dev, 100, 0, 0)
	tc.MustSendTx(Alice, f.yfac, "TransferOwnership", f.engine)
	tc.MustSendTx(Alice, f.engine, "Add", uint64(1), f.lp, false)
	tc.MustSendTx(Bob, f.lp, "Approve", f.engine, Units(1000))

	f.api = apiserver.NewAPIServer(tc.Cn.Registry(), 4)
	require.NoError(t, farmservice.NewFarmService(tc.Cn).Register(f.api))
	f.srv = httptest.NewServer(f.api.Handler())
	t.Cleanup(func() {
		f.srv.Close()
		f.api.Close()
		tc.Close()
	})
	return f
}

type response struct {
	ID     interface{}     `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (f *fixture) rpc(t *testing.T, method string, params ...interface{}) response {
	bs, err := json.Marshal(&apiserver.JRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	require.NoError(t, err)
	res, err := http.Post(f.srv.URL+"/api/endpoints/http", "application/json", bytes.NewReader(bs))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var r response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&r))
	return r
}

func (f *fixture) rpcString(t *testing.T, method string, params ...interface{}) string {
	r := f.rpc(t, method, params...)
	require.Empty(t, r.Error)
	var s string
	require.NoError(t, json.Unmarshal(r.Result, &s))
	return s
}

func TestDepositAndClaimOverRPC(t *testing.T) {
	f := newFixture(t)

	r := f.rpc(t, "farm.deposit", f.engine.String(), Bob.String(), 0, "10")
	require.Empty(t, r.Error)
	h := f.tc.Height()

	r = f.rpc(t, "chain.advance", h+4)
	require.Empty(t, r.Error)
	assert.Equal(t, "400", f.rpcString(t, "farm.pendingReward", f.engine.String(), 0, Bob.String()))

	r = f.rpc(t, "farm.withdraw", f.engine.String(), Bob.String(), 0, "10")
	require.Empty(t, r.Error)
	assert.Equal(t, "500", f.rpcString(t, "token.balanceOf", f.yfac.String(), Bob.String()))
	assert.Equal(t, "550", f.rpcString(t, "token.totalSupply", f.yfac.String()))
	assert.Equal(t, "1000", f.rpcString(t, "token.balanceOf", f.lp.String(), Bob.String()))

	r = f.rpc(t, "chain.height")
	var height uint32
	require.NoError(t, json.Unmarshal(r.Result, &height))
	assert.Equal(t, h+5, height)

	r = f.rpc(t, "chain.receipts", height)
	require.Empty(t, r.Error)
	assert.Contains(t, string(r.Result), `"method":"Withdraw"`)
}

func TestRPCErrors(t *testing.T) {
	f := newFixture(t)

	r := f.rpc(t, "farm.withdraw", f.engine.String(), Bob.String(), 0, "10")
	assert.Contains(t, r.Error, "withdraw: not good")

	r = f.rpc(t, "farm.poolInfo", f.engine.String(), 7)
	assert.Contains(t, r.Error, "invalid pool")

	r = f.rpc(t, "farm.nothing")
	assert.Equal(t, apiserver.ErrInvalidMethod.Error(), r.Error)
	r = f.rpc(t, "nosub")
	assert.Equal(t, apiserver.ErrInvalidMethod.Error(), r.Error)

	r = f.rpc(t, "token.balanceOf", "not an address", Bob.String())
	assert.Contains(t, r.Error, apiserver.ErrInvalidArgumentType.Error())
	r = f.rpc(t, "token.balanceOf", f.yfac.String())
	assert.Contains(t, r.Error, apiserver.ErrInvalidArgumentIndex.Error())

	r = f.rpc(t, "chain.advance", 0)
	assert.NotEmpty(t, r.Error)
}

func TestGenericCallAndSend(t *testing.T) {
	f := newFixture(t)

	r := f.rpc(t, "chain.call", f.engine.String(), "PoolLength")
	require.Empty(t, r.Error)
	assert.JSONEq(t, `[1]`, string(r.Result))

	r = f.rpc(t, "chain.sendTx", Bob.String(), f.lp.String(), "Transfer", Carol.String(), "0x05")
	require.Empty(t, r.Error)
	assert.Equal(t, "5", f.rpcString(t, "token.balanceOf", f.lp.String(), Carol.String()))
}

func TestWebsocket(t *testing.T) {
	f := newFixture(t)

	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/api/endpoints/websocket"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(&apiserver.JRPCRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "farm.poolLength",
		Params:  []interface{}{f.engine.String()},
	}))
	var r response
	require.NoError(t, conn.ReadJSON(&r))
	assert.Equal(t, float64(7), r.ID)
	assert.JSONEq(t, `1`, string(r.Result))
}

func TestMetrics(t *testing.T) {
	f := newFixture(t)

	res, err := http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	bs, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "farm_chain_height")
	assert.Contains(t, string(bs), `farm_chain_txs_total{result="success"}`)
}
