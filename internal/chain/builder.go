package chain

import "errors"

// errNoUTXOs guards the builder-level precondition that the lower
// constructor (New) does not itself enforce: an empty UTXO list is
// permitted only at the New/decode level, never through this builder,
// since a builder call with nothing to spend has no sender currency
// to infer.
var errNoUTXOs = errors.New("chain: CreateFromUTXOs requires at least one UTXO")

// UTXO describes one unspent output available to spend: its
// coordinate (Blknum, Txindex, Oindex) plus the value stored there.
// This is the shape the external UTXO-lookup collaborator returns for
// a coordinate.
type UTXO struct {
	Blknum   uint64
	Txindex  uint64
	Oindex   uint8
	Amount   uint64
	Currency Currency
}

func (u UTXO) input() Input {
	return Input{Blknum: u.Blknum, Txindex: u.Txindex, Oindex: u.Oindex}
}

// Receiver is the intent passed to the builder: pay Amount of the
// spent currency to Address.
type Receiver struct {
	Address Address
	Amount  uint64
}

// BuilderInput is the full input shape to CreateFromUTXOs: the
// caller's available UTXOs, where change should go, who receives the
// payment, and the flat sender-declared fee.
type BuilderInput struct {
	ChangeAddress Address
	UTXOs         []UTXO
	Receiver      Receiver
	Fee           uint64
}

// CreateFromUTXOs assembles a raw transaction from up to 2 UTXOs, a
// receiver, and a fee: it sums the spent UTXOs, places the receiver
// payment and the leftover change into the two output slots, and
// hands the result to New. It fails with too_many_utxo for more than
// 2 UTXOs, with
// currency_mixing_not_possible if the UTXOs carry different
// currencies, and (via New's non-negative amount check) with
// amount_negative_value if the receiver amount plus fee exceeds the
// sum of UTXO amounts.
func CreateFromUTXOs(in BuilderInput) (RawTransaction, error) {
	if len(in.UTXOs) == 0 {
		return RawTransaction{}, errNoUTXOs
	}
	if len(in.UTXOs) > 2 {
		return RawTransaction{}, newErr(ErrKindTooManyUTXO, "at most 2 UTXOs may be spent in one transaction")
	}

	var currency Currency
	var total uint64
	inputs := make([]Input, 0, len(in.UTXOs))
	for i, u := range in.UTXOs {
		if i == 0 {
			currency = u.Currency
		} else if u.Currency != currency {
			return RawTransaction{}, newErr(ErrKindCurrencyMixingNotPossible, "all spent UTXOs must share a currency")
		}
		total += u.Amount
		inputs = append(inputs, u.input())
	}

	change := int64(total) - int64(in.Receiver.Amount) - int64(in.Fee)

	outputs := []Output{
		{Owner: in.Receiver.Address, Amount: int64(in.Receiver.Amount)},
		{Owner: in.ChangeAddress, Amount: change},
	}

	return New(inputs, currency, outputs, int64(in.Fee))
}
