// Package chain implements the Plasma MoreVP transaction core: the
// canonical transaction data model, its RLP encoding and hashing,
// ECDSA signing/recovery, and UTXO-driven transaction construction.
//
// The package is pure and synchronous. No function here performs I/O,
// retains private key material past the call that used it, or mutates
// a value after it has been returned to the caller.
package chain

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a 20-byte opaque identifier: an account, or (when all
// zero) the null address used both as "no output" and as the native
// currency tag.
type Address [20]byte

// Currency is an Address used to mean "which asset", not "which
// owner". The wire representation is byte-identical to Address (the
// null value denotes the parent chain's native asset). Currency is a
// type alias, so it is the same type as Address: the compiler accepts
// a Currency wherever an Address is expected, and vice versa, with no
// conversion.
type Currency = Address

// ZeroAddress returns the all-zero 20-byte sentinel.
func ZeroAddress() Address {
	return Address{}
}

// IsAccountAddress reports whether a holds a non-null 20-byte value.
func IsAccountAddress(a Address) bool {
	return a != ZeroAddress()
}

// Hex renders the address as a 0x-prefixed lowercase hex string.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

// ToCommon converts to go-ethereum's common.Address, useful at the
// boundary with collaborators (UTXO lookups, chain clients) that speak
// go-ethereum types.
func (a Address) ToCommon() common.Address {
	return common.Address(a)
}

// AddressFromCommon converts a go-ethereum common.Address into an
// Address.
func AddressFromCommon(a common.Address) Address {
	return Address(a)
}

// AddressFromHex parses a 0x-prefixed or bare hex string into an
// Address. It returns an error if the decoded value is not exactly 20
// bytes.
func AddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(trim0x(s))
	if err != nil {
		return Address{}, err
	}
	if len(b) != 20 {
		return Address{}, &TxError{Kind: ErrKindMalformedTransaction, msg: "address must be 20 bytes"}
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
