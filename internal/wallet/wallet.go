// Package wallet tracks the set of UTXOs owned by a local key, the
// demo CLI's stand-in for the UTXO-lookup collaborator external to
// the transaction core. It persists to an embedded key-value store so
// the set survives restarts, the same storage technique the pack's
// companion blockchain node uses for its own UTXO index.
package wallet

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/gipsh/plasma-txcore/internal/chain"
)

var utxoPrefix = []byte("utxo-")

// Entry is one UTXO tracked by the wallet, in JSON-friendly form
// (chain.Address doesn't itself implement json.Marshaler, so Entry
// carries hex strings on the wire and converts at the boundary).
type Entry struct {
	Blknum   uint64 `json:"blknum"`
	Txindex  uint64 `json:"txindex"`
	Oindex   uint8  `json:"oindex"`
	Amount   uint64 `json:"amount"`
	Currency string `json:"currency"`
}

func (e Entry) toUTXO() (chain.UTXO, error) {
	cur, err := chain.AddressFromHex(e.Currency)
	if err != nil {
		return chain.UTXO{}, fmt.Errorf("wallet: entry currency %q: %w", e.Currency, err)
	}
	return chain.UTXO{
		Blknum: e.Blknum, Txindex: e.Txindex, Oindex: e.Oindex,
		Amount: e.Amount, Currency: cur,
	}, nil
}

func fromUTXO(u chain.UTXO) Entry {
	return Entry{
		Blknum: u.Blknum, Txindex: u.Txindex, Oindex: u.Oindex,
		Amount: u.Amount, Currency: u.Currency.Hex(),
	}
}

// coordKey builds the database key for a UTXO coordinate: the
// utxo- prefix followed by its blknum/txindex/oindex, so iterating
// utxoPrefix walks every tracked UTXO.
func coordKey(blknum, txindex uint64, oindex uint8) []byte {
	return append(append([]byte{}, utxoPrefix...), []byte(fmt.Sprintf("%d-%d-%d", blknum, txindex, oindex))...)
}

// Wallet is a badger-backed set of owned UTXOs, safe for concurrent
// use. It never retains a reference into internal/chain's signing
// path, so it carries no key material.
type Wallet struct {
	mu sync.Mutex
	db *badger.DB
}

// New opens (creating if necessary) a wallet database rooted at dir.
func New(dir string) (*Wallet, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("wallet: open %s: %w", dir, err)
	}
	return &Wallet{db: db}, nil
}

// Close releases the underlying database handle.
func (w *Wallet) Close() error {
	return w.db.Close()
}

// Credit records a newly-available UTXO, e.g. one produced by a
// transaction this wallet's owner just received.
func (w *Wallet) Credit(u chain.UTXO) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := json.Marshal(fromUTXO(u))
	if err != nil {
		return fmt.Errorf("wallet: marshal entry: %w", err)
	}
	err = w.db.Update(func(txn *badger.Txn) error {
		return txn.Set(coordKey(u.Blknum, u.Txindex, u.Oindex), b)
	})
	if err != nil {
		return fmt.Errorf("wallet: credit: %w", err)
	}
	return nil
}

// Spend removes a UTXO once its owner has built (and presumably
// submitted) a transaction spending it.
func (w *Wallet) Spend(blknum, txindex uint64, oindex uint8) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(coordKey(blknum, txindex, oindex))
	})
	if err != nil {
		return fmt.Errorf("wallet: spend: %w", err)
	}
	return nil
}

// Lookup implements the UTXO-lookup interface external to the
// transaction core: (blknum,txindex,oindex) → {amount, currency,
// owner} | not_found. owner is not tracked by this wallet (it only
// tracks UTXOs it believes it owns), so Lookup reports ok=false for
// any coordinate it hasn't Credited.
func (w *Wallet) Lookup(blknum, txindex uint64, oindex uint8) (chain.UTXO, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var (
		out   chain.UTXO
		found bool
	)
	err := w.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(coordKey(blknum, txindex, oindex))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var e Entry
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			u, err := e.toUTXO()
			if err != nil {
				return err
			}
			out, found = u, true
			return nil
		})
	})
	if err != nil {
		return chain.UTXO{}, false, fmt.Errorf("wallet: lookup: %w", err)
	}
	return out, found, nil
}

// Available returns a snapshot of every UTXO currently tracked, in no
// particular order.
func (w *Wallet) Available() ([]chain.UTXO, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []chain.UTXO
	err := w.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(utxoPrefix); it.ValidForPrefix(utxoPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var e Entry
				if err := json.Unmarshal(val, &e); err != nil {
					return err
				}
				u, err := e.toUTXO()
				if err != nil {
					return err
				}
				out = append(out, u)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wallet: list: %w", err)
	}
	return out, nil
}
