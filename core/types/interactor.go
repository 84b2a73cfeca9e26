package types

import (
	"encoding/hex"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/pkg/errors"
)

// ExecLock serializes transaction execution on a chain
var ExecLock sync.Mutex

var errType = reflect.TypeOf((*error)(nil)).Elem()

var (
	bigIntType  = reflect.TypeOf(&big.Int{})
	amountType  = reflect.TypeOf(&amount.Amount{})
	addressType = reflect.TypeOf(common.Address{})
	ccType      = reflect.TypeOf(&ContractContext{})
)

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
}

type interactor struct {
	ctx    *Context
	cont   Contract
	conMap map[common.Address]Contract
	exit   bool
}

// NewInteractor returns the interactor of the call tree that starts at the contract
func NewInteractor(ctx *Context, cont Contract) IInteractor {
	i := &interactor{
		ctx:    ctx,
		cont:   cont,
		conMap: map[common.Address]Contract{},
	}
	if cont != nil {
		i.conMap[cont.Address()] = cont
	}
	return i
}

func (i *interactor) Distroy() {
	i.exit = true
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	if i.exit {
		return nil, errors.WithStack(ErrExpiredInteractor)
	}
	if MethodName == "" {
		return nil, errors.WithStack(ErrMethodNotGiven)
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(MethodName[:1]) + MethodName[1:]
	ecc := i.currentContractContext(Cc, ContAddr)
	return _exec(ecc, cont, MethodName, Args)
}

func (i *interactor) getContract(Addr common.Address) (Contract, error) {
	if cont, has := i.conMap[Addr]; has {
		return cont, nil
	}
	cont, err := i.ctx.Contract(Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "contract %v", Addr.String())
	}
	i.conMap[Addr] = cont
	return cont, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if i.cont != nil && i.cont.Address() == Addr && Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		Exec: i.Exec,
	}
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, err error) {
	ContAddr := cont.Address()
	rMethod, err := contractMethod(cont.Front(), ContAddr, MethodName)
	if err != nil {
		return nil, err
	}
	in, err := ContractInputsConv(Args, rMethod)
	if err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()
	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = errors.Wrapf(ErrContractPanic, "call method(%v) of contract(%v): %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}
	result, err = getResults(rMethod.Type(), vs)
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}
	ecc.ctx.Commit(sn)
	return result, nil
}

func contractMethod(front interface{}, addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(front)
	if !vo.IsValid() || (vo.Kind() == reflect.Ptr && vo.IsNil()) {
		return reflect.Value{}, errors.New("nil contract")
	}
	method := vo.MethodByName(MethodName)
	if !method.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotExist, "%v of %v", MethodName, addr.String())
	}
	if method.Type().NumIn() < 1 || !ccType.AssignableTo(method.Type().In(0)) {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotExist, "%v of %v is not callable", MethodName, addr.String())
	}
	return method, nil
}

func getResults(mType reflect.Type, vs []reflect.Value) (result []interface{}, err error) {
	result = []interface{}{}
	for i, v := range vs {
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if _err, ok := v.Interface().(error); ok && _err != nil {
				err = _err
			}
			continue
		}
		result = append(result, v.Interface())
	}
	return
}

// ContractInputsConv converts the arguments to the parameter types of the method
func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "inputs count got %v want %v", len(Args), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		mType := mt.In(i + 1)
		param, err := convertInput(v, mType)
		if err != nil {
			return nil, errors.Wrapf(err, "input(%v)", i)
		}
		in[i] = param
	}
	return in, nil
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func convertInput(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "nil want %v", mType)
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	if param.Type().AssignableTo(mType) {
		nv := reflect.New(mType).Elem()
		nv.Set(param)
		return nv, nil
	}

	switch pv := v.(type) {
	case *big.Int:
		switch {
		case mType == amountType:
			return reflect.ValueOf(amount.NewAmountFromBig(pv)), nil
		case isIntKind(mType.Kind()):
			if pv.Sign() < 0 && isUintKind(mType.Kind()) {
				break
			}
			return reflect.ValueOf(pv.Int64()).Convert(mType), nil
		case mType == addressType:
			return reflect.ValueOf(common.BigToAddress(pv)), nil
		}
	case *amount.Amount:
		if mType == bigIntType {
			return reflect.ValueOf(new(big.Int).Set(pv.Int)), nil
		}
	case string:
		switch {
		case mType == addressType:
			if addr, err := common.ParseAddress(pv); err == nil {
				return reflect.ValueOf(addr), nil
			}
		case mType == amountType:
			if strings.HasPrefix(pv, "0x") {
				if am, err := amount.ParseBaseUnits(pv); err == nil {
					return reflect.ValueOf(am), nil
				}
			} else if am, err := amount.ParseAmount(pv); err == nil {
				return reflect.ValueOf(am), nil
			}
		case mType == bigIntType:
			if bi, ok := new(big.Int).SetString(pv, 0); ok {
				return reflect.ValueOf(bi), nil
			}
		case mType.Kind() == reflect.Bool:
			return reflect.ValueOf(strings.ToLower(pv) == "true"), nil
		case mType.Kind() == reflect.Slice && mType.Elem().Kind() == reflect.Uint8:
			if bs, err := hex.DecodeString(strings.TrimPrefix(pv, "0x")); err == nil {
				return reflect.ValueOf(bs), nil
			}
		case isIntKind(mType.Kind()):
			if bi, ok := new(big.Int).SetString(pv, 0); ok && bi.IsInt64() {
				if bi.Sign() < 0 && isUintKind(mType.Kind()) {
					break
				}
				return reflect.ValueOf(bi.Int64()).Convert(mType), nil
			}
		}
	case float64:
		if isIntKind(mType.Kind()) && pv == float64(int64(pv)) {
			if pv < 0 && isUintKind(mType.Kind()) {
				break
			}
			return reflect.ValueOf(int64(pv)).Convert(mType), nil
		}
	case []byte:
		switch {
		case mType == addressType:
			return reflect.ValueOf(common.BytesToAddress(pv)), nil
		case mType == amountType:
			return reflect.ValueOf(amount.NewAmountFromBytes(pv)), nil
		}
	default:
		if isIntKind(param.Kind()) && isIntKind(mType.Kind()) {
			if param.Kind() >= reflect.Int && param.Kind() <= reflect.Int64 && param.Int() < 0 && isUintKind(mType.Kind()) {
				break
			}
			return param.Convert(mType), nil
		}
	}
	return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "get %v want %v", param.Type(), mType)
}
