package chain

import (
	"sync"

	"github.com/ethereum/go-ethereum/rlp"
)

// signedWire is the RLP shape of a signed transaction: a 3-item list
// of [raw_tx_as_list, sig1, sig2]. Raw nests as a sublist because
// RawTransaction is itself an RLP-struct.
type signedWire struct {
	Raw  RawTransaction
	Sig1 [65]byte
	Sig2 [65]byte
}

// SignedTransaction wraps an immutable RawTransaction with its two
// slot signatures. It never mutates raw; re-signing produces a new
// *SignedTransaction. The encoded byte form is memoized on first
// Encode (or populated directly by Decode, from its exact input):
// modeled here as a pointer receiver with a guarded cache rather than
// two separate Encoded/Unencoded types, since Go has no sum types —
// the guard makes the memoization race-free without forcing every
// caller to match on a variant.
type SignedTransaction struct {
	Raw  RawTransaction
	Sig1 [65]byte
	Sig2 [65]byte

	encodeOnce sync.Once
	encoded    []byte
	encodeErr  error
}

// SignTransaction computes h = hash(raw) and signs it with priv1 and
// priv2, producing sig1 and sig2. A SignerKey in its None arm yields
// the null signature for that slot without invoking ECDSA. This
// transaction-level signing builds on the single-slot primitive,
// chain.Sign.
func SignTransaction(raw RawTransaction, priv1, priv2 SignerKey) (*SignedTransaction, error) {
	h, err := raw.Hash()
	if err != nil {
		return nil, err
	}
	sig1, err := Sign(h, priv1)
	if err != nil {
		return nil, err
	}
	sig2, err := Sign(h, priv2)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{Raw: raw, Sig1: sig1, Sig2: sig2}, nil
}

// Encode RLP-encodes [raw_as_list, sig1, sig2] and caches the result;
// subsequent calls return the cached bytes without re-encoding.
func (s *SignedTransaction) Encode() ([]byte, error) {
	s.encodeOnce.Do(func() {
		b, err := rlp.EncodeToBytes(signedWire{Raw: s.Raw, Sig1: s.Sig1, Sig2: s.Sig2})
		if err != nil {
			s.encodeErr = wrapErr(ErrKindMalformedTransaction, err)
			return
		}
		s.encoded = b
	})
	return s.encoded, s.encodeErr
}

// DecodeSignedTransaction parses bytes as a signed transaction,
// enforcing the outer 3-item and inner 12-item list arities and
// validating signature lengths. The returned value's cached bytes are
// exactly the input, so re-encoding after a round trip is free and
// byte-identical to what was decoded.
func DecodeSignedTransaction(data []byte) (*SignedTransaction, error) {
	outer, err := decodeList(data, 3)
	if err != nil {
		return nil, err
	}
	raw, err := decodeRawTransaction(outer[0])
	if err != nil {
		return nil, err
	}
	sig1, err := decodeSignature(outer[1])
	if err != nil {
		return nil, err
	}
	sig2, err := decodeSignature(outer[2])
	if err != nil {
		return nil, err
	}

	s := &SignedTransaction{Raw: raw, Sig1: sig1, Sig2: sig2}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.encodeOnce.Do(func() { s.encoded = cp })
	return s, nil
}

// RecoverSpenders recovers the address that produced each input
// slot's signature. A padding input slot (the zero input) must carry
// a null signature and recovers to nil; a non-padding slot must carry
// a real signature and recovers to a concrete address. Any mismatch
// fails with input_missing_for_signature; a malformed non-null
// signature fails with signature_corrupt.
func (s *SignedTransaction) RecoverSpenders() (*Address, *Address, error) {
	h, err := s.Raw.Hash()
	if err != nil {
		return nil, nil, err
	}
	a1, err := recoverSlot(h, s.Raw.Input1(), s.Sig1)
	if err != nil {
		return nil, nil, err
	}
	a2, err := recoverSlot(h, s.Raw.Input2(), s.Sig2)
	if err != nil {
		return nil, nil, err
	}
	return a1, a2, nil
}

func recoverSlot(h [32]byte, in Input, sig [65]byte) (*Address, error) {
	null := isNullSignature(sig)
	if in.isPadding() {
		if !null {
			return nil, newErr(ErrKindInputMissingForSignature, "padding input carries a non-null signature")
		}
		return nil, nil
	}
	if null {
		return nil, newErr(ErrKindInputMissingForSignature, "non-padding input carries a null signature")
	}
	addr, err := Recover(h, sig)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}
