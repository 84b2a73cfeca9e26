package badger_driver

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/core/backend"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func init() {
	backend.RegisterDriver("badger", NewStoreBackendBadger)
}

type StoreBackendBadger struct {
	db *badger.DB
}

func NewStoreBackendBadger(path string) (backend.StoreBackend, error) {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, errors.WithStack(err)
	}
	opts := badger.DefaultOptions(path)
	opts.Truncate = true
	opts.SyncWrites = true
	os.Remove(filepath.Join(opts.Dir, "LOCK"))

	start := time.Now()
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %v", path)
	}
	rlog.Logger().Debug("badger opened", zap.String("path", path), zap.Duration("elapsed", time.Since(start)))
	return &StoreBackendBadger{
		db: db,
	}, nil
}

func (st *StoreBackendBadger) gc(ratio float64) {
	for i := 0; i < 10; i++ {
		if err := st.db.RunValueLogGC(ratio); err != nil {
			return
		}
	}
}

func (st *StoreBackendBadger) Shrink() {
	st.gc(0.5)
}

func (st *StoreBackendBadger) Close() {
	start := time.Now()
	st.gc(0.9)
	st.db.Close()
	rlog.Logger().Debug("badger closed", zap.Duration("elapsed", time.Since(start)))
}

func (st *StoreBackendBadger) View(fn func(txn backend.StoreReader) error) error {
	return st.db.View(func(txn *badger.Txn) error {
		return fn(&storeBackendBadgerTx{txn: txn})
	})
}

func (st *StoreBackendBadger) Update(fn func(txn backend.StoreWriter) error) error {
	return st.db.Update(func(txn *badger.Txn) error {
		return fn(&storeBackendBadgerTx{txn: txn})
	})
}

type storeBackendBadgerTx struct {
	txn *badger.Txn
}

func (r *storeBackendBadgerTx) Get(key []byte) ([]byte, error) {
	item, err := r.txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, backend.ErrNotExistKey
		}
		return nil, errors.WithStack(err)
	}
	if item.IsDeletedOrExpired() {
		return nil, backend.ErrNotExistKey
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return value, nil
}

func (r *storeBackendBadgerTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	opts := badger.DefaultIteratorOptions
	it := r.txn.NewIterator(opts)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		if item.IsDeletedOrExpired() {
			continue
		}
		value, err := item.ValueCopy(nil)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := fn(item.KeyCopy(nil), value); err != nil {
			return err
		}
	}
	return nil
}

func (r *storeBackendBadgerTx) Set(key []byte, value []byte) error {
	return errors.WithStack(r.txn.Set(key, value))
}

func (r *storeBackendBadgerTx) Delete(key []byte) error {
	return errors.WithStack(r.txn.Delete(key))
}
