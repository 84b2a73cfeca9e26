package chain

import (
	"bytes"
	"sync"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/core/backend"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/pkg/errors"
)

// Store saves the target chain state
// All updates of a height are executed in one backend transaction
type Store struct {
	sync.Mutex
	db        backend.StoreBackend
	closeLock sync.RWMutex
	isClose   bool
	cache     storecache
}

type storecache struct {
	cached bool
	height uint32
}

// NewStore returns a Store
func NewStore(db backend.StoreBackend) (*Store, error) {
	st := &Store{
		db: db,
	}
	if err := st.db.View(func(txn backend.StoreReader) error {
		value, err := txn.Get(tagHeight)
		if err != nil {
			if errors.Is(err, backend.ErrNotExistKey) {
				return nil
			}
			return err
		}
		st.cache.height = bin.Uint32(value)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "load height")
	}
	st.cache.cached = true
	return st, nil
}

// Close terminates and cleans the store
func (st *Store) Close() {
	st.closeLock.Lock()
	defer st.closeLock.Unlock()

	st.isClose = true
	st.db.Close()
}

// TargetHeight returns the height that the loaded state belongs to
func (st *Store) TargetHeight() uint32 {
	return st.Height()
}

// Height returns the last stored height
func (st *Store) Height() uint32 {
	st.Lock()
	defer st.Unlock()

	return st.cache.height
}

// ContractDefine returns the contract define of the address or nil
func (st *Store) ContractDefine(addr common.Address) *types.ContractDefine {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil
	}

	var cd *types.ContractDefine
	if err := st.db.View(func(txn backend.StoreReader) error {
		value, err := txn.Get(toContractKey(addr))
		if err != nil {
			return err
		}
		cd = &types.ContractDefine{}
		_, err = bin.ReadFromBytes(cd, value)
		return err
	}); err != nil {
		return nil
	}
	return cd
}

// Contracts returns the defines of every deployed contract
func (st *Store) Contracts() ([]*types.ContractDefine, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil, errors.WithStack(ErrStoreClosed)
	}

	list := []*types.ContractDefine{}
	if err := st.db.View(func(txn backend.StoreReader) error {
		return txn.Iterate(tagContract, func(key []byte, value []byte) error {
			cd := &types.ContractDefine{}
			if _, err := bin.ReadFromBytes(cd, value); err != nil {
				return err
			}
			list = append(list, cd)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return list, nil
}

// Data returns the contract data from the store
func (st *Store) Data(cont common.Address, addr common.Address, name []byte) []byte {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil
	}

	var data []byte
	if err := st.db.View(func(txn backend.StoreReader) error {
		value, err := txn.Get(toDataKey(types.DataKey(cont, addr, name)))
		if err != nil {
			return err
		}
		data = value
		return nil
	}); err != nil {
		return nil
	}
	return data
}

// EachData iterates the stored data of the contract in key order
func (st *Store) EachData(cont common.Address, fn func(addr common.Address, name []byte, value []byte) error) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(ErrStoreClosed)
	}

	prefix := toDataKey(string(cont[:]))
	return st.db.View(func(txn backend.StoreReader) error {
		return txn.Iterate(prefix, func(key []byte, value []byte) error {
			_, addr, name := types.SplitDataKey(string(key[len(tagData):]))
			return fn(addr, name, value)
		})
	})
}

// Receipts returns the receipts stored at the height
func (st *Store) Receipts(height uint32) (Receipts, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil, errors.WithStack(ErrStoreClosed)
	}

	var rs Receipts
	if err := st.db.View(func(txn backend.StoreReader) error {
		value, err := txn.Get(toReceiptsKey(height))
		if err != nil {
			return err
		}
		_, err = bin.ReadFromBytes(&rs, value)
		return err
	}); err != nil {
		if errors.Is(err, backend.ErrNotExistKey) {
			return Receipts{}, nil
		}
		return nil, err
	}
	return rs, nil
}

// StoreContext applies the base layer of the context and its receipts as the height of the context
func (st *Store) StoreContext(ctx *types.Context, receipts Receipts) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(ErrStoreClosed)
	}
	if ctx.StackSize() != 1 {
		return errors.WithStack(ErrDirtyContext)
	}

	st.Lock()
	defer st.Unlock()

	height := ctx.TargetHeight()
	if height <= st.cache.height {
		return errors.Wrapf(ErrInvalidHeight, "store %v on %v", height, st.cache.height)
	}
	if err := st.db.Update(func(txn backend.StoreWriter) error {
		if err := applyContextData(txn, ctx.Top()); err != nil {
			return err
		}
		if len(receipts) > 0 {
			bs, _, err := bin.WriterToBytes(receipts)
			if err != nil {
				return err
			}
			if err := txn.Set(toReceiptsKey(height), bs); err != nil {
				return err
			}
		}
		return txn.Set(tagHeight, bin.Uint32Bytes(height))
	}); err != nil {
		return err
	}
	st.cache.height = height
	return nil
}

// StoreHeight moves the stored height forward without state changes
func (st *Store) StoreHeight(height uint32) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(ErrStoreClosed)
	}

	st.Lock()
	defer st.Unlock()

	if height < st.cache.height {
		return errors.Wrapf(ErrInvalidHeight, "advance %v to %v", st.cache.height, height)
	}
	if err := st.db.Update(func(txn backend.StoreWriter) error {
		return txn.Set(tagHeight, bin.Uint32Bytes(height))
	}); err != nil {
		return err
	}
	st.cache.height = height
	return nil
}

func applyContextData(txn backend.StoreWriter, ctd *types.ContextData) error {
	for _, cd := range ctd.ContractDefineMap {
		bs, _, err := bin.WriterToBytes(cd)
		if err != nil {
			return err
		}
		if err := txn.Set(toContractKey(cd.Address), bs); err != nil {
			return err
		}
	}
	var inErr error
	ctd.EachData(func(key string, value []byte, deleted bool) bool {
		if deleted {
			inErr = txn.Delete(toDataKey(key))
		} else {
			inErr = txn.Set(toDataKey(key), bytes.Clone(value))
		}
		return inErr == nil
	})
	return inErr
}
