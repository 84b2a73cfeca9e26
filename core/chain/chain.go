package chain

import (
	"sync"

	"github.com/bluele/gcache"
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const receiptCacheSize = 256

// Chain executes transactions one height at a time on top of the store
type Chain struct {
	sync.Mutex
	store        *Store
	receiptCache gcache.Cache
	registry     *prometheus.Registry
	txCounter    *prometheus.CounterVec
	heightGauge  prometheus.Gauge
	observers    []func(r *Receipt)
	isClose      bool
}

// NewChain returns a Chain
func NewChain(store *Store) *Chain {
	cn := &Chain{
		store:    store,
		registry: prometheus.NewRegistry(),
		txCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_chain_txs_total",
			Help: "executed transactions by result",
		}, []string{"result"}),
		heightGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "farm_chain_height",
			Help: "last stored height",
		}),
	}
	cn.registry.MustRegister(cn.txCounter, cn.heightGauge)
	cn.heightGauge.Set(float64(store.Height()))
	cn.receiptCache = gcache.New(receiptCacheSize).LRU().LoaderFunc(func(key interface{}) (interface{}, error) {
		return cn.store.Receipts(key.(uint32))
	}).Build()
	return cn
}

// Close terminates the chain and its store
func (cn *Chain) Close() {
	cn.Lock()
	defer cn.Unlock()

	if cn.isClose {
		return
	}
	cn.isClose = true
	cn.store.Close()
	rlog.Logger().Info("chain closed", zap.Uint32("height", cn.store.Height()))
}

// Store returns the store of the chain
func (cn *Chain) Store() *Store {
	return cn.store
}

// Registry returns the metrics registry of the chain
func (cn *Chain) Registry() *prometheus.Registry {
	return cn.registry
}

// Height returns the last executed height
func (cn *Chain) Height() uint32 {
	return cn.store.Height()
}

// AddObserver registers the function called with every stored receipt
func (cn *Chain) AddObserver(fn func(r *Receipt)) {
	cn.Lock()
	defer cn.Unlock()

	cn.observers = append(cn.observers, fn)
}

// Deploy creates the contract at the next height and returns its address
func (cn *Chain) Deploy(owner common.Address, cont types.Contract, Args []byte) (common.Address, error) {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		return common.ZeroAddr, err
	}

	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	if cn.isClosed() {
		return common.ZeroAddr, errors.WithStack(ErrChainClosed)
	}
	ctx := cn.nextContext()
	receipt := &Receipt{
		Height: ctx.TargetHeight(),
		From:   owner,
		Method: "deploy:" + types.ContractName(ClassID),
	}
	var addr common.Address
	created, err := ctx.DeployContract(owner, ClassID, Args)
	if err == nil {
		addr = created.Address()
		receipt.To = addr
	}
	if serr := cn.commit(ctx, receipt, err); serr != nil {
		return common.ZeroAddr, serr
	}
	if err != nil {
		return common.ZeroAddr, err
	}
	return addr, nil
}

// ExecuteTx runs the method of the contract at the next height
// A failed transaction leaves no state change but still consumes the height
func (cn *Chain) ExecuteTx(from common.Address, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	if cn.isClosed() {
		return nil, errors.WithStack(ErrChainClosed)
	}
	ctx := cn.nextContext()
	receipt := &Receipt{
		Height: ctx.TargetHeight(),
		From:   from,
		To:     to,
		Method: method,
	}
	result, err := execute(ctx, from, to, method, args)
	if serr := cn.commit(ctx, receipt, err); serr != nil {
		return nil, serr
	}
	return result, err
}

// Call runs the method on the latest state and discards every change
func (cn *Chain) Call(from common.Address, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	if cn.isClosed() {
		return nil, errors.WithStack(ErrChainClosed)
	}
	ctx := types.NewContext(cn.store)
	return execute(ctx, from, to, method, args)
}

// AdvanceTo moves the height forward without transactions
func (cn *Chain) AdvanceTo(height uint32) error {
	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	if cn.isClosed() {
		return errors.WithStack(ErrChainClosed)
	}
	if err := cn.store.StoreHeight(height); err != nil {
		return err
	}
	cn.heightGauge.Set(float64(height))
	return nil
}

// Receipts returns the receipts of the stored height
func (cn *Chain) Receipts(height uint32) (Receipts, error) {
	if height > cn.store.Height() {
		return nil, errors.Wrapf(ErrInvalidHeight, "receipts of %v", height)
	}
	v, err := cn.receiptCache.Get(height)
	if err != nil {
		return nil, err
	}
	return v.(Receipts), nil
}

func (cn *Chain) isClosed() bool {
	cn.Lock()
	defer cn.Unlock()

	return cn.isClose
}

func (cn *Chain) nextContext() *types.Context {
	return types.NewContext(cn.store).WithHeight(cn.store.Height() + 1)
}

func (cn *Chain) commit(ctx *types.Context, receipt *Receipt, txErr error) error {
	receipt.Success = txErr == nil
	if txErr != nil {
		receipt.Error = txErr.Error()
	}
	receipt.Events = ctx.Events()
	if err := cn.store.StoreContext(ctx, Receipts{receipt}); err != nil {
		return err
	}
	cn.receiptCache.Remove(receipt.Height)

	result := "success"
	if txErr != nil {
		result = "failure"
	}
	cn.txCounter.WithLabelValues(result).Inc()
	cn.heightGauge.Set(float64(receipt.Height))
	rlog.Logger().Debug("tx stored",
		zap.Uint32("height", receipt.Height),
		zap.String("to", receipt.To.String()),
		zap.String("method", receipt.Method),
		zap.Bool("success", receipt.Success),
	)

	cn.Lock()
	observers := cn.observers
	cn.Unlock()
	for _, fn := range observers {
		fn(receipt)
	}
	return nil
}

func execute(ctx *types.Context, from common.Address, to common.Address, method string, args []interface{}) ([]interface{}, error) {
	cont, err := ctx.Contract(to)
	if err != nil {
		return nil, errors.Wrapf(err, "call %v", to.String())
	}
	cc := ctx.ContractContext(cont, from)
	intr := types.NewInteractor(ctx, cont)
	defer intr.Distroy()
	cc.Exec = intr.Exec
	return intr.Exec(cc, to, method, args)
}
