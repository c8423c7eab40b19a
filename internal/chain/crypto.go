package chain

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignerKey is a tagged private key: either Real(priv) or None. It
// replaces the source format's overload of the empty byte string to
// mean "don't sign" (spec Design Notes, "Empty-private-key sentinel")
// with an explicit variant so the null-signature path cannot be
// triggered by an accidentally-empty slice.
type SignerKey struct {
	priv *ecdsa.PrivateKey
}

// NewSignerKey wraps a real ECDSA private key.
func NewSignerKey(priv *ecdsa.PrivateKey) SignerKey {
	return SignerKey{priv: priv}
}

// NoSigner is the None arm: the input slot this key signs for carries
// no signer (a padding input, or an unused second input).
func NoSigner() SignerKey {
	return SignerKey{}
}

// IsNone reports whether k carries no private key.
func (k SignerKey) IsNone() bool {
	return k.priv == nil
}

// NullSignature is the all-zero 65-byte sentinel used for input slots
// that do not require signing.
func NullSignature() [65]byte {
	return [65]byte{}
}

func isNullSignature(sig [65]byte) bool {
	return sig == NullSignature()
}

// Keccak256 hashes data with Keccak-256, the hash function used
// throughout this package for both message digests and address
// derivation.
func Keccak256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}

// Sign produces a 65-byte ECDSA signature (r||s||v, v normalized to 27
// or 28) over msgHash using key. If key is the None arm, Sign returns
// the null signature without invoking ECDSA — this is the only path
// that produces a null signature.
func Sign(msgHash [32]byte, key SignerKey) ([65]byte, error) {
	if key.IsNone() {
		return NullSignature(), nil
	}
	sig, err := crypto.Sign(msgHash[:], key.priv)
	if err != nil {
		return [65]byte{}, wrapErr(ErrKindSignatureCorrupt, err)
	}
	var out [65]byte
	copy(out[:], sig)
	out[64] += 27 // go-ethereum's v is 0/1; the wire format wants 27/28
	return out, nil
}

// Recover recovers the 20-byte address that produced sig over
// msgHash. sig must carry v in {27, 28}.
func Recover(msgHash [32]byte, sig [65]byte) (Address, error) {
	normalized := sig
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	pub, err := crypto.SigToPub(msgHash[:], normalized[:])
	if err != nil {
		return Address{}, wrapErr(ErrKindSignatureCorrupt, err)
	}
	return AddressFromCommon(crypto.PubkeyToAddress(*pub)), nil
}

// AddressFromKey derives the Address corresponding to a private key's
// public half: the last 20 bytes of keccak256(uncompressed pubkey).
func AddressFromKey(priv *ecdsa.PrivateKey) Address {
	return AddressFromCommon(crypto.PubkeyToAddress(priv.PublicKey))
}
