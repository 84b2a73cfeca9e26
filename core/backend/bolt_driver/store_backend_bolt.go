package bolt_driver

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/core/backend"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileName is the bolt file created inside the store directory
const FileName = "store.bolt"

var bucketName = []byte{0}

func init() {
	backend.RegisterDriver("bolt", NewStoreBackendBolt)
}

type StoreBackendBolt struct {
	db *bolt.DB
}

func NewStoreBackendBolt(path string) (backend.StoreBackend, error) {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, errors.WithStack(err)
	}

	start := time.Now()
	db, err := bolt.Open(filepath.Join(path, FileName), 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt %v", path)
	}
	if err := db.Update(func(txn *bolt.Tx) error {
		_, err := txn.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, errors.WithStack(err)
	}
	rlog.Logger().Debug("bolt opened", zap.String("path", path), zap.Duration("elapsed", time.Since(start)))
	return &StoreBackendBolt{
		db: db,
	}, nil
}

func (st *StoreBackendBolt) Shrink() {
}

func (st *StoreBackendBolt) Close() {
	start := time.Now()
	st.db.Close()
	rlog.Logger().Debug("bolt closed", zap.Duration("elapsed", time.Since(start)))
}

func (st *StoreBackendBolt) View(fn func(txn backend.StoreReader) error) error {
	return st.db.View(func(txn *bolt.Tx) error {
		return fn(&storeBackendBoltTx{bucket: txn.Bucket(bucketName)})
	})
}

func (st *StoreBackendBolt) Update(fn func(txn backend.StoreWriter) error) error {
	return st.db.Update(func(txn *bolt.Tx) error {
		return fn(&storeBackendBoltTx{bucket: txn.Bucket(bucketName)})
	})
}

type storeBackendBoltTx struct {
	bucket *bolt.Bucket
}

func (r *storeBackendBoltTx) Get(key []byte) ([]byte, error) {
	value := r.bucket.Get(key)
	if value == nil {
		return nil, backend.ErrNotExistKey
	}
	c := make([]byte, len(value))
	copy(c, value)
	return c, nil
}

func (r *storeBackendBoltTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	c := r.bucket.Cursor()
	var key, value []byte
	if len(prefix) > 0 {
		key, value = c.Seek(prefix)
	} else {
		key, value = c.First()
	}
	for ; key != nil && bytes.HasPrefix(key, prefix); key, value = c.Next() {
		k := make([]byte, len(key))
		copy(k, key)
		v := make([]byte, len(value))
		copy(v, value)
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *storeBackendBoltTx) Set(key []byte, value []byte) error {
	return errors.WithStack(r.bucket.Put(key, value))
}

func (r *storeBackendBoltTx) Delete(key []byte) error {
	return errors.WithStack(r.bucket.Delete(key))
}
