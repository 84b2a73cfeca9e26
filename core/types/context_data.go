package types

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/common/hash"
	"github.com/tidwall/btree"
)

const btreeDegrees = 32

type dataKey string

func (k dataKey) Less(than btree.Item, ctx interface{}) bool {
	return k < than.(dataKey)
}

// DataKey returns the store key of the contract data
func DataKey(cont common.Address, addr common.Address, name []byte) string {
	return string(cont[:]) + string(addr[:]) + string(name)
}

// SplitDataKey splits the store key made by DataKey
func SplitDataKey(key string) (common.Address, common.Address, []byte) {
	bs := []byte(key)
	cont := common.BytesToAddress(bs[:common.AddressLength])
	addr := common.BytesToAddress(bs[common.AddressLength : common.AddressLength*2])
	return cont, addr, bs[common.AddressLength*2:]
}

// ContextData is a state data of the context
type ContextData struct {
	ctx               *Context
	Parent            *ContextData
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	Events            []*Event
	keys              *btree.BTree
	isTop             bool
	seq               uint32
}

// NewContextData returns a ContextData
func NewContextData(ctx *Context, Parent *ContextData) *ContextData {
	ctd := &ContextData{
		ctx:               ctx,
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		keys:              btree.New(btreeDegrees, nil),
		isTop:             true,
	}
	if Parent != nil {
		ctd.seq = Parent.seq
	}
	return ctd
}

// ContractDefine returns the contract define of the address or nil
func (ctd *ContextData) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return cd
	} else if ctd.Parent != nil {
		return ctd.Parent.ContractDefine(addr)
	} else {
		return ctd.ctx.loader.ContractDefine(addr)
	}
}

// IsContract returns the address is a deployed contract or not
func (ctd *ContextData) IsContract(addr common.Address) bool {
	return ctd.ContractDefine(addr) != nil
}

// Contract returns the contract instance of the address
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	cd := ctd.ContractDefine(addr)
	if cd == nil {
		return nil, ErrNotExistContract
	}
	return CreateContract(cd)
}

// NextSeq returns the next deploy sequence of the block
func (ctd *ContextData) NextSeq() uint32 {
	ctd.seq++
	return ctd.seq
}

// DeployContract derives the contract address from the sender and runs OnCreate
func (ctd *ContextData) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, ErrInvalidClassID
	}

	base := make([]byte, 0, 1+common.AddressLength+8+4+4)
	base = append(base, 0xff)
	base = append(base, sender[:]...)
	base = append(base, bin.Uint64Bytes(ClassID)...)
	base = append(base, bin.Uint32Bytes(ctd.NextSeq())...)
	base = append(base, bin.Uint32Bytes(ctd.ctx.TargetHeight())...)
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[12:])
	if ctd.IsContract(addr) {
		return nil, ErrExistAddress
	}

	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	cc := ctd.ctx.ContractContext(cont, sender)
	cc.Exec = NewInteractor(ctd.ctx, cont).Exec
	if err := cont.OnCreate(cc, Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// Data returns the data of the key from the nearest layer that has it
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := DataKey(cont, addr, name)
	return ctd.data(cont, addr, name, key)
}

func (ctd *ContextData) data(cont common.Address, addr common.Address, name []byte, key string) []byte {
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	var value []byte
	if v, has := ctd.DataMap[key]; has {
		return v
	} else if ctd.Parent != nil {
		value = ctd.Parent.data(cont, addr, name, key)
	} else {
		value = ctd.ctx.loader.Data(cont, addr, name)
	}
	if len(value) == 0 {
		return nil
	}
	if ctd.isTop {
		nvalue := make([]byte, len(value))
		copy(nvalue, value)
		return nvalue
	}
	return value
}

// SetData sets the data of the key, an empty value deletes the key
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := DataKey(cont, addr, name)
	ctd.keys.ReplaceOrInsert(dataKey(key))
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// EmitEvent appends the event to the layer
func (ctd *ContextData) EmitEvent(e *Event) {
	ctd.Events = append(ctd.Events, e)
}

// EachData iterates the keys changed in this layer in key order
func (ctd *ContextData) EachData(fn func(key string, value []byte, deleted bool) bool) {
	ctd.keys.Ascend(func(item btree.Item) bool {
		key := string(item.(dataKey))
		if ctd.DeletedDataMap[key] {
			return fn(key, nil, true)
		}
		return fn(key, ctd.DataMap[key], false)
	})
}

// DataCount returns the number of keys changed in this layer
func (ctd *ContextData) DataCount() int {
	return ctd.keys.Len()
}

// merge applies the changes of the child layer to this layer
func (ctd *ContextData) merge(child *ContextData) {
	for addr, cd := range child.ContractDefineMap {
		ctd.ContractDefineMap[addr] = cd
	}
	child.EachData(func(key string, value []byte, deleted bool) bool {
		ctd.keys.ReplaceOrInsert(dataKey(key))
		if deleted {
			delete(ctd.DataMap, key)
			ctd.DeletedDataMap[key] = true
		} else {
			delete(ctd.DeletedDataMap, key)
			ctd.DataMap[key] = value
		}
		return true
	})
	ctd.Events = append(ctd.Events, child.Events...)
	ctd.seq = child.seq
}

// Hash returns the hash of the changes in the layer
func (ctd *ContextData) Hash() hash.Hash256 {
	var buffer bytes.Buffer
	buffer.WriteString("Height")
	buffer.Write(bin.Uint32Bytes(ctd.ctx.TargetHeight()))
	buffer.WriteString("ContractDefineMap")
	for _, addr := range sortedDefineAddresses(ctd.ContractDefineMap) {
		buffer.Write(bin.MustWriterToBytes(ctd.ContractDefineMap[addr]))
	}
	buffer.WriteString("DataMap")
	ctd.EachData(func(key string, value []byte, deleted bool) bool {
		buffer.WriteString(key)
		if deleted {
			buffer.WriteByte(0)
		} else {
			buffer.WriteByte(1)
			buffer.Write(value)
		}
		return true
	})
	return hash.Hash(buffer.Bytes())
}

// Dump returns the readable form of the changes in the layer
func (ctd *ContextData) Dump() string {
	var buffer bytes.Buffer
	buffer.WriteString("Height\n")
	buffer.WriteString(strconv.FormatUint(uint64(ctd.ctx.TargetHeight()), 10))
	buffer.WriteString("\n")
	buffer.WriteString("ContractDefineMap\n")
	for _, addr := range sortedDefineAddresses(ctd.ContractDefineMap) {
		cd := ctd.ContractDefineMap[addr]
		buffer.WriteString(addr.String())
		buffer.WriteString(":")
		buffer.WriteString(ContractName(cd.ClassID))
		buffer.WriteString("\n")
	}
	buffer.WriteString("DataMap\n")
	ctd.EachData(func(key string, value []byte, deleted bool) bool {
		buffer.WriteString(hex.EncodeToString([]byte(key)))
		if deleted {
			buffer.WriteString(":deleted\n")
		} else {
			buffer.WriteString(":")
			buffer.WriteString(hex.EncodeToString(value))
			buffer.WriteString("\n")
		}
		return true
	})
	buffer.WriteString("Events\n")
	buffer.WriteString(spew.Sdump(ctd.Events))
	return buffer.String()
}
