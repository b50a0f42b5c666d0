// Package memory implements the ledger persistence ports on plain maps and
// slices. A single store mutex is held for the whole unit of work, which
// serializes concurrent operations the way row locks do in the SQL-backed
// implementation; Rollback restores a snapshot taken at Begin.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

var errTxClosed = errors.New("memory: transaction already closed")

// Store holds all ledger state.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]domain.Account // keyed by ID
	numberToID   map[string]string
	transactions []domain.Transaction
	transfers    map[string]domain.Transfer
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]domain.Account),
		numberToID: make(map[string]string),
		transfers:  make(map[string]domain.Transfer),
	}
}

type snapshot struct {
	accounts         map[string]domain.Account
	numberToID       map[string]string
	transactionCount int
	transfers        map[string]domain.Transfer
}

func (s *Store) snapshot() snapshot {
	accounts := make(map[string]domain.Account, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	numberToID := make(map[string]string, len(s.numberToID))
	for k, v := range s.numberToID {
		numberToID[k] = v
	}
	transfers := make(map[string]domain.Transfer, len(s.transfers))
	for k, v := range s.transfers {
		transfers[k] = v
	}
	return snapshot{
		accounts:         accounts,
		numberToID:       numberToID,
		transactionCount: len(s.transactions),
		transfers:        transfers,
	}
}

func (s *Store) restore(snap snapshot) {
	s.accounts = snap.accounts
	s.numberToID = snap.numberToID
	s.transactions = s.transactions[:snap.transactionCount]
	s.transfers = snap.transfers
}

// Tx is a unit of work over the store. It owns the store mutex from Begin
// until Commit or Rollback.
type Tx struct {
	store *Store
	snap  snapshot
	done  bool
}

// Commit makes the unit's writes permanent and releases the store.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

// Rollback discards the unit's writes and releases the store. Calling it
// after Commit is a no-op, so it can be deferred unconditionally.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.store.restore(t.snap)
	t.done = true
	t.store.mu.Unlock()
	return nil
}

// TxManager implements usecase.TxManager over the store.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin locks the store and snapshots it for rollback.
func (m *TxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	m.store.mu.Lock()
	return &Tx{store: m.store, snap: m.store.snapshot()}, nil
}

// held asserts that tx is an open transaction over this store.
func held(store *Store, tx usecase.Tx) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok || mt.store != store {
		return nil, errors.New("memory: foreign transaction")
	}
	if mt.done {
		return nil, errTxClosed
	}
	return mt, nil
}
