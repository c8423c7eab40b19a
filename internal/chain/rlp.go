package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// decodeList decodes data as a top-level RLP list and checks it holds
// exactly n items, translating go-ethereum/rlp's errors into this
// package's enumerated decoder failure modes.
func decodeList(data []byte, n int) ([]rlp.RawValue, error) {
	var items []rlp.RawValue
	if err := rlp.DecodeBytes(data, &items); err != nil {
		if err == rlp.ErrMoreThanOneValue {
			return nil, wrapErr(ErrKindTrailingBytes, err)
		}
		return nil, wrapErr(ErrKindMalformedRLP, err)
	}
	if len(items) != n {
		return nil, newErr(ErrKindBadArity, fmt.Sprintf("expected %d items, got %d", n, len(items)))
	}
	return items, nil
}

func decodeUint64(item rlp.RawValue) (uint64, error) {
	var v uint64
	if err := rlp.DecodeBytes(item, &v); err != nil {
		return 0, wrapErr(ErrKindBadFieldType, err)
	}
	return v, nil
}

// decodeOindex decodes an output-index field and checks it falls in
// {0, 1}; a syntactically valid but out-of-range integer is a
// malformed_transaction, not a bad_field_type (it decoded fine as an
// integer, it just isn't a valid oindex).
func decodeOindex(item rlp.RawValue) (uint8, error) {
	var v uint8
	if err := rlp.DecodeBytes(item, &v); err != nil {
		return 0, wrapErr(ErrKindBadFieldType, err)
	}
	if v > 1 {
		return 0, newErr(ErrKindMalformedTransaction, "oindex must be 0 or 1")
	}
	return v, nil
}

func decodeAddress(item rlp.RawValue) (Address, error) {
	var b []byte
	if err := rlp.DecodeBytes(item, &b); err != nil {
		return Address{}, wrapErr(ErrKindBadFieldType, err)
	}
	if len(b) != 20 {
		return Address{}, newErr(ErrKindBadFieldType, fmt.Sprintf("address must be 20 bytes, got %d", len(b)))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// decodeSignature decodes a signature field. A wrong length is a
// malformed_transaction, not a bad_field_type — the RLP string
// decoded fine, it's just the wrong size for a signature (signatures
// are always exactly 65 bytes: r||s||v).
func decodeSignature(item rlp.RawValue) ([65]byte, error) {
	var b []byte
	if err := rlp.DecodeBytes(item, &b); err != nil {
		return [65]byte{}, wrapErr(ErrKindBadFieldType, err)
	}
	if len(b) != 65 {
		return [65]byte{}, newErr(ErrKindMalformedTransaction, fmt.Sprintf("signature must be 65 bytes, got %d", len(b)))
	}
	var s [65]byte
	copy(s[:], b)
	return s, nil
}
