package types

import (
	"bytes"
	"sort"

	"github.com/meverselabs/yfacfarm/common"
)

func sortedDefineAddresses(m map[common.Address]*ContractDefine) []common.Address {
	addrs := make([]common.Address, 0, len(m))
	for addr := range m {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}
