package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var tokenCurrency = Address{0xAA, 0xBB, 0xCC, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11}

func TestBuilderSingleInputDepositSpend(t *testing.T) {
	bob := testAddr(t, '7')
	alice := testAddr(t, '8')

	tx, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1000, Txindex: 0, Oindex: 0, Amount: 10, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: bob, Amount: 7},
		Fee:      0,
	})
	require.NoError(t, err)

	require.Equal(t, uint64(1000), tx.Blknum1)
	require.Equal(t, uint64(0), tx.Txindex1)
	require.Equal(t, uint8(0), tx.Oindex1)
	require.Equal(t, uint64(0), tx.Blknum2)
	require.Equal(t, uint64(0), tx.Txindex2)
	require.Equal(t, uint8(0), tx.Oindex2)
	require.Equal(t, ZeroAddress(), tx.Cur12)
	require.Equal(t, bob, tx.Newowner1)
	require.Equal(t, uint64(7), tx.Amount1)
	require.Equal(t, alice, tx.Newowner2)
	require.Equal(t, uint64(3), tx.Amount2)
	require.Equal(t, uint64(0), tx.Fee)
}

func TestBuilderDoubleInputMerge(t *testing.T) {
	alice := testAddr(t, '9')

	tx, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 500, Txindex: 0, Oindex: 0, Amount: 5, Currency: ZeroAddress()},
			{Blknum: 500, Txindex: 0, Oindex: 1, Amount: 5, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: alice, Amount: 10},
		Fee:      0,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), tx.Amount2)
	require.Equal(t, alice, tx.Newowner2)
	require.Equal(t, alice, tx.Newowner1)
	require.Equal(t, uint64(10), tx.Amount1)
}

func TestBuilderRejectsCurrencyMixing(t *testing.T) {
	alice := testAddr(t, 'c')
	_, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 5, Currency: ZeroAddress()},
			{Blknum: 1, Txindex: 0, Oindex: 1, Amount: 5, Currency: tokenCurrency},
		},
		Receiver: Receiver{Address: alice, Amount: 5},
		Fee:      0,
	})
	var txErr *TxError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, ErrKindCurrencyMixingNotPossible, txErr.Kind)
}

func TestBuilderInsufficientFunds(t *testing.T) {
	alice := testAddr(t, 'd')
	bob := testAddr(t, 'e')
	_, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 5, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: bob, Amount: 7},
		Fee:      0,
	})
	var txErr *TxError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, ErrKindAmountNegativeValue, txErr.Kind)
}

func TestBuilderTokenTransfer(t *testing.T) {
	bob := testAddr(t, 'f')
	alice := testAddr(t, '0')
	tx, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 10, Currency: tokenCurrency},
		},
		Receiver: Receiver{Address: bob, Amount: 8},
		Fee:      0,
	})
	require.NoError(t, err)
	require.Equal(t, tokenCurrency, tx.Cur12)
	require.Equal(t, uint64(10), tx.Amount1+tx.Amount2)
}

func TestBuilderTooManyUTXOs(t *testing.T) {
	alice := testAddr(t, '1')
	_, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Amount: 1, Currency: ZeroAddress()},
			{Blknum: 2, Amount: 1, Currency: ZeroAddress()},
			{Blknum: 3, Amount: 1, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: alice, Amount: 1},
	})
	var txErr *TxError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, ErrKindTooManyUTXO, txErr.Kind)
}

// Balance law: total in == total out + fee.
func TestBuilderBalanceLaw(t *testing.T) {
	alice := testAddr(t, '2')
	bob := testAddr(t, '3')
	tx, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 6, Currency: ZeroAddress()},
			{Blknum: 1, Txindex: 0, Oindex: 1, Amount: 4, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: bob, Amount: 3},
		Fee:      2,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(10), tx.Amount1+tx.Amount2+tx.Fee)
}

func TestBuilderReceiverZeroAmountIsAccepted(t *testing.T) {
	alice := testAddr(t, '4')
	bob := testAddr(t, '5')
	tx, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		UTXOs: []UTXO{
			{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 10, Currency: ZeroAddress()},
		},
		Receiver: Receiver{Address: bob, Amount: 0},
		Fee:      0,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), tx.Amount1)
	require.Equal(t, bob, tx.Newowner1)
}

func TestBuilderRejectsEmptyUTXOList(t *testing.T) {
	alice := testAddr(t, '6')
	_, err := CreateFromUTXOs(BuilderInput{
		ChangeAddress: alice,
		Receiver:      Receiver{Address: alice, Amount: 0},
	})
	require.ErrorIs(t, err, errNoUTXOs)
}
