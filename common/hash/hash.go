package hash

import (
	"encoding/binary"

	ecommon "github.com/ethereum/go-ethereum/common"
	ecrypto "github.com/ethereum/go-ethereum/crypto"
)

type Hash256 = ecommon.Hash

// Lengths of hashes in bytes.
const (
	// HashLength is the expected length of the hash
	HashLength = ecommon.HashLength
)

// HexToHash sets byte representation of s to hash.
func HexToHash(s string) Hash256 {
	return ecommon.HexToHash(s)
}

// Hash calculates and returns the Keccak256 hash of the input data.
func Hash(data ...[]byte) Hash256 {
	return ecrypto.Keccak256Hash(data...)
}

// Uint64 calculates and returns uint64 from the Hash hash of the input data.
func Uint64(data ...[]byte) uint64 {
	h := Hash(data...)
	return binary.LittleEndian.Uint64(h[:])
}

// Hashes returns the result of Hash(h1+'h'+...)
func Hashes(hs ...Hash256) Hash256 {
	data := make([]byte, 0, (HashLength+1)*len(hs))
	for i, h := range hs {
		data = append(data, h[:]...)
		if i < len(hs)-1 {
			data = append(data, 'h')
		}
	}
	return Hash(data)
}
