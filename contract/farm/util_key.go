package farm

import (
	"strconv"

	"github.com/meverselabs/yfacfarm/common/bin"
)

var (
	tagOwner          = byte(0x01)
	tagFarmToken      = byte(0x02)
	tagDevAddr        = byte(0x03)
	tagRewardPerBlock = byte(0x04)
	tagStartBlock     = byte(0x05)
	tagBonusEndBlock  = byte(0x06)
	tagMaxSupply      = byte(0x07)
	tagHalvingSupply  = byte(0x08)

	tagTotalAllocPoint = byte(0x09)

	tagPoolInfo   = byte(0x10)
	tagPoolLength = byte(0x11)
	tagUserInfo   = byte(0x12)

	tagLocked = byte(0x20)
)

func makeFarmKey(key byte, body []byte) []byte {
	bs := make([]byte, 1+len(body))
	bs[0] = key
	copy(bs[1:], body)
	return bs
}

func makePoolInfoKey(pid uint64) []byte {
	return makeFarmKey(tagPoolInfo, bin.Uint64BE(pid))
}

// user info is stored as the account data of the user
func makeUserInfoKey(pid uint64) []byte {
	return makeFarmKey(tagUserInfo, bin.Uint64BE(pid))
}

func uint64String(v uint64) string {
	return strconv.FormatUint(v, 10)
}
