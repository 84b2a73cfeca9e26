package chain

import (
	"encoding/binary"

	"github.com/meverselabs/yfacfarm/common"
)

var (
	tagHeight   = []byte{1, 0}
	tagContract = []byte{2, 0}
	tagData     = []byte{3, 0}
	tagReceipts = []byte{4, 0}
)

func toContractKey(addr common.Address) []byte {
	bs := make([]byte, 2+common.AddressLength)
	copy(bs, tagContract)
	copy(bs[2:], addr[:])
	return bs
}

func toDataKey(key string) []byte {
	bs := make([]byte, 2+len(key))
	copy(bs, tagData)
	copy(bs[2:], []byte(key))
	return bs
}

func toReceiptsKey(height uint32) []byte {
	bs := make([]byte, 6)
	copy(bs, tagReceipts)
	binary.BigEndian.PutUint32(bs[2:], height)
	return bs
}
