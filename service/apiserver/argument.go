package apiserver

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/pkg/errors"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

func (arg *Argument) at(index int) (interface{}, error) {
	if index < 0 || index >= len(arg.args) {
		return nil, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return a, nil
}

// Uint32 returns a uint32 value of the index
func (arg *Argument) Uint32(index int) (uint32, error) {
	a, err := arg.at(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgumentType, "argument(%v): %v", index, err)
	}
	return uint32(n), nil
}

// Uint64 returns a uint64 value of the index
func (arg *Argument) Uint64(index int) (uint64, error) {
	a, err := arg.at(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgumentType, "argument(%v): %v", index, err)
	}
	return n, nil
}

// Bool returns a bool value of the index
func (arg *Argument) Bool(index int) (bool, error) {
	a, err := arg.at(index)
	if err != nil {
		return false, err
	}
	if b, ok := a.(bool); ok {
		return b, nil
	}
	b, err := strconv.ParseBool(fmt.Sprintf("%v", a))
	if err != nil {
		return false, errors.Wrapf(ErrInvalidArgumentType, "argument(%v): %v", index, err)
	}
	return b, nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	a, err := arg.at(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", a), nil
}

// Address returns the hex address of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	s, err := arg.String(index)
	if err != nil {
		return common.ZeroAddr, err
	}
	addr, err := common.ParseAddress(s)
	if err != nil {
		return common.ZeroAddr, errors.Wrapf(ErrInvalidArgumentType, "argument(%v): %v", index, err)
	}
	return addr, nil
}

// Amount returns the amount of the index given in base units, decimal or 0x hex
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	s, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	am, err := amount.ParseBaseUnits(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgumentType, "argument(%v): %v", index, err)
	}
	return am, nil
}

// Array returns a slice value of the index
func (arg *Argument) Array(index int) ([]interface{}, error) {
	a, err := arg.at(index)
	if err != nil {
		return nil, err
	}
	switch reflect.TypeOf(a).Kind() {
	case reflect.Slice:
		s := reflect.ValueOf(a)

		r := []interface{}{}
		for i := 0; i < s.Len(); i++ {
			r = append(r, s.Index(i).Interface())
		}
		return r, nil
	}
	return nil, errors.WithStack(ErrInvalidArgumentType)
}

// Rest returns the arguments from the index as strings
func (arg *Argument) Rest(index int) []interface{} {
	if index >= len(arg.args) {
		return []interface{}{}
	}
	rs := make([]interface{}, 0, len(arg.args)-index)
	for _, a := range arg.args[index:] {
		rs = append(rs, fmt.Sprintf("%v", a))
	}
	return rs
}
