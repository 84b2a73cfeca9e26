package backend

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// StoreBackend is a transactional ordered key value store
type StoreBackend interface {
	Shrink()
	Close()
	View(fn func(txn StoreReader) error) error
	Update(fn func(txn StoreWriter) error) error
}

type StoreReader interface {
	Get(key []byte) ([]byte, error)
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error
}

type StoreWriter interface {
	StoreReader
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

// CreateBackend opens the store at the path
type CreateBackend func(Path string) (StoreBackend, error)

var (
	gDriverLock sync.RWMutex
	gDriverMap  = map[string]CreateBackend{}
)

// RegisterDriver adds the driver, drivers call it from their init
func RegisterDriver(Name string, fn CreateBackend) {
	gDriverLock.Lock()
	defer gDriverLock.Unlock()
	gDriverMap[Name] = fn
}

// Drivers returns the registered driver names
func Drivers() []string {
	gDriverLock.RLock()
	defer gDriverLock.RUnlock()
	names := make([]string, 0, len(gDriverMap))
	for name := range gDriverMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create opens the store of the path using the named driver
func Create(Name string, Path string) (StoreBackend, error) {
	gDriverLock.RLock()
	fn, has := gDriverMap[Name]
	gDriverLock.RUnlock()
	if !has {
		return nil, errors.Wrapf(ErrNotExistDriver, "%v", Name)
	}
	return fn(Path)
}

// PrefixEnd returns the smallest key greater than every key with the prefix
func PrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
