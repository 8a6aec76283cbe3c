package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId uint64

func (i TokenId) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

// TxHash is a 0x-prefixed 32-byte transaction hash
type TxHash string

const txHashLength = 66 // 0x + 64 hex chars

func (h TxHash) IsValid() bool {
	if len(h) != txHashLength || !strings.HasPrefix(string(h), "0x") {
		return false
	}
	for _, c := range h[2:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

func ParseTokenId(s string) (TokenId, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() <= 0 || !id.IsUint64() {
		return 0, xerrors.Errorf("invalid token id %q: %w", s, ErrBadParamInput)
	}
	return TokenId(id.Uint64()), nil
}
