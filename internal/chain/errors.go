package chain

import "fmt"

// ErrKind enumerates the exhaustive set of failure modes for the
// transaction core.
type ErrKind string

const (
	ErrKindTooManyUTXO               ErrKind = "too_many_utxo"
	ErrKindCurrencyMixingNotPossible ErrKind = "currency_mixing_not_possible"
	ErrKindAmountNegativeValue       ErrKind = "amount_negative_value"
	ErrKindFeeNegativeValue          ErrKind = "fee_negative_value"
	ErrKindMalformedRLP              ErrKind = "malformed_rlp"
	ErrKindBadArity                  ErrKind = "bad_arity"
	ErrKindBadFieldType              ErrKind = "bad_field_type"
	ErrKindTrailingBytes             ErrKind = "trailing_bytes"
	ErrKindMalformedTransaction      ErrKind = "malformed_transaction"
	ErrKindSignatureCorrupt          ErrKind = "signature_corrupt"
	ErrKindInputMissingForSignature  ErrKind = "input_missing_for_signature"
)

// TxError is the error type this package returns for every enumerated
// failure kind. A few precondition failures outside that enumeration
// (an empty UTXO list in CreateFromUTXOs, more than 2 inputs or outputs
// in New, a non-hex string in AddressFromHex) are plain errors instead.
// Callers should switch on Kind rather than match the error string.
type TxError struct {
	Kind ErrKind
	msg  string
	err  error
}

func (e *TxError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.err)
	}
	return string(e.Kind)
}

func (e *TxError) Unwrap() error {
	return e.err
}

func newErr(kind ErrKind, msg string) *TxError {
	return &TxError{Kind: kind, msg: msg}
}

func wrapErr(kind ErrKind, err error) *TxError {
	return &TxError{Kind: kind, err: err}
}

// Sentinel instances for errors.Is comparisons on the Kind alone.
// These carry no message; use (*TxError).Kind to inspect a returned
// error instead of comparing pointers.
var (
	ErrTooManyUTXO               = &TxError{Kind: ErrKindTooManyUTXO}
	ErrCurrencyMixingNotPossible = &TxError{Kind: ErrKindCurrencyMixingNotPossible}
	ErrAmountNegativeValue       = &TxError{Kind: ErrKindAmountNegativeValue}
	ErrFeeNegativeValue          = &TxError{Kind: ErrKindFeeNegativeValue}
	ErrMalformedRLP              = &TxError{Kind: ErrKindMalformedRLP}
	ErrBadArity                  = &TxError{Kind: ErrKindBadArity}
	ErrBadFieldType              = &TxError{Kind: ErrKindBadFieldType}
	ErrTrailingBytes             = &TxError{Kind: ErrKindTrailingBytes}
	ErrMalformedTransaction      = &TxError{Kind: ErrKindMalformedTransaction}
	ErrSignatureCorrupt          = &TxError{Kind: ErrKindSignatureCorrupt}
	ErrInputMissingForSignature  = &TxError{Kind: ErrKindInputMissingForSignature}
)

// Is lets errors.Is(err, chain.ErrTooManyUTXO) match any *TxError with
// the same Kind, regardless of attached message.
func (e *TxError) Is(target error) bool {
	t, ok := target.(*TxError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
