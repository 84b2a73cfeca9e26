package types

import (
	"reflect"
	"sync"

	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/common/hash"
	"github.com/pkg/errors"
)

var (
	gContractLock    sync.RWMutex
	gContractTypeMap = map[uint64]reflect.Type{}
	gContractNameMap = map[uint64]string{}
)

// RegisterContractType registers the contract type and returns its class id.
// Registering the same type twice returns the same id.
func RegisterContractType(cont Contract) (uint64, error) {
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	ClassID := bin.Uint64(h[len(h)-8:])

	gContractLock.Lock()
	defer gContractLock.Unlock()

	if v, has := gContractNameMap[ClassID]; has {
		if name != v {
			return 0, errors.WithStack(ErrExistContractType)
		}
		return ClassID, nil
	}
	gContractNameMap[ClassID] = name
	gContractTypeMap[ClassID] = rt
	return ClassID, nil
}

// MustRegisterContractType panics when the registration fails
func MustRegisterContractType(cont Contract) uint64 {
	ClassID, err := RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	return ClassID
}

// CreateContract returns a new instance of the defined contract
func CreateContract(cd *ContractDefine) (Contract, error) {
	gContractLock.RLock()
	rt, has := gContractTypeMap[cd.ClassID]
	gContractLock.RUnlock()
	if !has {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	cont := reflect.New(rt).Interface().(Contract)
	cont.Init(cd.Address, cd.Owner)
	return cont, nil
}

func IsValidClassID(ClassID uint64) bool {
	gContractLock.RLock()
	defer gContractLock.RUnlock()
	_, has := gContractTypeMap[ClassID]
	return has
}

func ContractName(ClassID uint64) string {
	gContractLock.RLock()
	defer gContractLock.RUnlock()
	return gContractNameMap[ClassID]
}
