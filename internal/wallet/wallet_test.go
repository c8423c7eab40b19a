package wallet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gipsh/plasma-txcore/internal/chain"
)

func TestNewOnFreshDirStartsEmpty(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "wallet-db"))
	require.NoError(t, err)
	defer w.Close()

	got, err := w.Available()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCreditLookupSpendRoundTrip(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "wallet-db"))
	require.NoError(t, err)
	defer w.Close()

	u := chain.UTXO{Blknum: 1000, Txindex: 0, Oindex: 0, Amount: 10, Currency: chain.ZeroAddress()}
	require.NoError(t, w.Credit(u))

	got, ok, err := w.Lookup(1000, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, u, got)

	require.NoError(t, w.Spend(1000, 0, 0))
	_, ok, err = w.Lookup(1000, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wallet-db")
	w, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, w.Credit(chain.UTXO{Blknum: 1, Txindex: 0, Oindex: 0, Amount: 5, Currency: chain.ZeroAddress()}))
	require.NoError(t, w.Credit(chain.UTXO{Blknum: 2, Txindex: 0, Oindex: 1, Amount: 7, Currency: chain.ZeroAddress()}))
	require.NoError(t, w.Close())

	reopened, err := New(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Available()
	require.NoError(t, err)
	require.Len(t, got, 2)
}
