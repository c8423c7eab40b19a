package chain

import (
	"errors"
	"math"

	"github.com/ethereum/go-ethereum/rlp"
)

// Input is an input reference: the output produced by transaction
// Txindex in block Blknum, at output slot Oindex. The all-zero value
// is the padding sentinel, "no input".
type Input struct {
	Blknum  uint64
	Txindex uint64
	Oindex  uint8
}

func (i Input) isPadding() bool {
	return i == Input{}
}

// Output is a (owner, amount) pair. Amount is signed here so that
// New can detect and reject a caller-supplied negative amount before
// it is ever cast into the wire-ready unsigned representation; a
// constructed RawTransaction's Amount fields are always non-negative.
type Output struct {
	Owner  Address
	Amount int64
}

// RawTransaction is the fixed-arity, 12-field canonical transaction
// record: two input slots, a shared currency, two output slots, and a
// fee. Field declaration order is the canonical wire order: it is
// also the RLP list order produced by Encode.
type RawTransaction struct {
	Blknum1  uint64
	Txindex1 uint64
	Oindex1  uint8

	Blknum2  uint64
	Txindex2 uint64
	Oindex2  uint8

	Cur12 Currency

	Newowner1 Address
	Amount1   uint64

	Newowner2 Address
	Amount2   uint64

	Fee uint64
}

// errTooManyInputs and errTooManyOutputs guard New's arity
// precondition: at most 2 inputs and 2 outputs are representable in
// the fixed-size wire format. This precondition sits below the
// builder's too_many_utxo path and is not itself one of the
// enumerated decoder failure modes, so it is a plain error rather
// than a *TxError.
var (
	errTooManyInputs  = errors.New("chain: at most 2 inputs are representable")
	errTooManyOutputs = errors.New("chain: at most 2 outputs are representable")
)

// New builds a RawTransaction from up to 2 inputs and up to 2 outputs,
// padding absent slots with the zero input / zero output sentinel.
func New(inputs []Input, currency Currency, outputs []Output, fee int64) (RawTransaction, error) {
	if len(inputs) > 2 {
		return RawTransaction{}, errTooManyInputs
	}
	if len(outputs) > 2 {
		return RawTransaction{}, errTooManyOutputs
	}
	if fee < 0 {
		return RawTransaction{}, newErr(ErrKindFeeNegativeValue, "fee must be non-negative")
	}
	in := padInputs(inputs)
	out := padOutputs(outputs)
	for _, o := range out {
		if o.Amount < 0 {
			return RawTransaction{}, newErr(ErrKindAmountNegativeValue, "amount must be non-negative")
		}
	}

	tx := RawTransaction{
		Blknum1:  in[0].Blknum,
		Txindex1: in[0].Txindex,
		Oindex1:  in[0].Oindex,

		Blknum2:  in[1].Blknum,
		Txindex2: in[1].Txindex,
		Oindex2:  in[1].Oindex,

		Cur12: currency,

		Newowner1: out[0].Owner,
		Amount1:   uint64(out[0].Amount),

		Newowner2: out[1].Owner,
		Amount2:   uint64(out[1].Amount),

		Fee: uint64(fee),
	}
	if err := tx.Validate(); err != nil {
		return RawTransaction{}, err
	}
	return tx, nil
}

func padInputs(inputs []Input) [2]Input {
	var out [2]Input
	copy(out[:], inputs)
	return out
}

func padOutputs(outputs []Output) [2]Output {
	out := [2]Output{
		{Owner: ZeroAddress(), Amount: 0},
		{Owner: ZeroAddress(), Amount: 0},
	}
	copy(out[:], outputs)
	return out
}

// Validate checks the invariants an already built RawTransaction must
// hold: each oindex is in {0, 1}, and each amount/fee
// fits in the signed range a caller might reasonably reinterpret it
// in (a uint64 that overflows int64 is, for every practical downstream
// consumer, a negative value in disguise).
func (t RawTransaction) Validate() error {
	if t.Oindex1 > 1 || t.Oindex2 > 1 {
		return newErr(ErrKindMalformedTransaction, "oindex must be 0 or 1")
	}
	if t.Amount1 > math.MaxInt64 || t.Amount2 > math.MaxInt64 {
		return newErr(ErrKindAmountNegativeValue, "amount exceeds representable range")
	}
	if t.Fee > math.MaxInt64 {
		return newErr(ErrKindFeeNegativeValue, "fee exceeds representable range")
	}
	return nil
}

// Input1 and Input2 reconstruct the two input slots as Input values.
func (t RawTransaction) Input1() Input {
	return Input{Blknum: t.Blknum1, Txindex: t.Txindex1, Oindex: t.Oindex1}
}

func (t RawTransaction) Input2() Input {
	return Input{Blknum: t.Blknum2, Txindex: t.Txindex2, Oindex: t.Oindex2}
}

// Encode produces the canonical RLP encoding of the 12-field list:
// deterministic, and byte-identical for any two RawTransaction values
// with equal fields.
func (t RawTransaction) Encode() ([]byte, error) {
	b, err := rlp.EncodeToBytes(t)
	if err != nil {
		return nil, wrapErr(ErrKindMalformedTransaction, err)
	}
	return b, nil
}

// Hash is keccak256(Encode(t)) — the digest that both signatures in a
// SignedTransaction are computed over.
func (t RawTransaction) Hash() ([32]byte, error) {
	b, err := t.Encode()
	if err != nil {
		return [32]byte{}, err
	}
	return Keccak256(b), nil
}

func decodeRawTransaction(data []byte) (RawTransaction, error) {
	fields, err := decodeList(data, 12)
	if err != nil {
		return RawTransaction{}, err
	}

	blknum1, err := decodeUint64(fields[0])
	if err != nil {
		return RawTransaction{}, err
	}
	txindex1, err := decodeUint64(fields[1])
	if err != nil {
		return RawTransaction{}, err
	}
	oindex1, err := decodeOindex(fields[2])
	if err != nil {
		return RawTransaction{}, err
	}
	blknum2, err := decodeUint64(fields[3])
	if err != nil {
		return RawTransaction{}, err
	}
	txindex2, err := decodeUint64(fields[4])
	if err != nil {
		return RawTransaction{}, err
	}
	oindex2, err := decodeOindex(fields[5])
	if err != nil {
		return RawTransaction{}, err
	}
	cur12, err := decodeAddress(fields[6])
	if err != nil {
		return RawTransaction{}, err
	}
	newowner1, err := decodeAddress(fields[7])
	if err != nil {
		return RawTransaction{}, err
	}
	amount1, err := decodeUint64(fields[8])
	if err != nil {
		return RawTransaction{}, err
	}
	newowner2, err := decodeAddress(fields[9])
	if err != nil {
		return RawTransaction{}, err
	}
	amount2, err := decodeUint64(fields[10])
	if err != nil {
		return RawTransaction{}, err
	}
	fee, err := decodeUint64(fields[11])
	if err != nil {
		return RawTransaction{}, err
	}

	tx := RawTransaction{
		Blknum1: blknum1, Txindex1: txindex1, Oindex1: oindex1,
		Blknum2: blknum2, Txindex2: txindex2, Oindex2: oindex2,
		Cur12:     cur12,
		Newowner1: newowner1, Amount1: amount1,
		Newowner2: newowner2, Amount2: amount2,
		Fee: fee,
	}
	if err := tx.Validate(); err != nil {
		return RawTransaction{}, err
	}
	return tx, nil
}
