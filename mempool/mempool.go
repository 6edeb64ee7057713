package mempool

import (
	"errors"
	"sync"

	"ledgerchain/transaction"
)

// DefaultMaxTxs bounds the pool when no configuration is supplied.
const DefaultMaxTxs = 1024

var ErrMempoolFull = errors.New("mempool is full")

// Mempool provides a thread-safe holding area for transactions that have not
// been packed into a block yet. The append/validate flow never consumes it.
type Mempool struct {
	mu     sync.Mutex
	maxTxs int
	txs    []*transaction.Transaction
}

// NewMempool creates a new, empty mempool holding at most maxTxs transactions.
func NewMempool(maxTxs int) *Mempool {
	if maxTxs <= 0 {
		maxTxs = DefaultMaxTxs
	}
	return &Mempool{
		maxTxs: maxTxs,
		txs:    make([]*transaction.Transaction, 0),
	}
}

// Add pushes a transaction into the mempool.
func (m *Mempool) Add(tx *transaction.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.txs) >= m.maxTxs {
		return ErrMempoolFull
	}
	m.txs = append(m.txs, tx)
	return nil
}

// Len returns the number of transactions in the mempool.
func (m *Mempool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txs)
}

// GetBatch returns up to max transactions without removing them.
func (m *Mempool) GetBatch(max int) []*transaction.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.txs) == 0 {
		return nil
	}
	if len(m.txs) < max {
		max = len(m.txs)
	}
	batch := make([]*transaction.Transaction, max)
	copy(batch, m.txs[:max])
	return batch
}

// RemoveBatch removes the first n transactions from the mempool.
func (m *Mempool) RemoveBatch(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n >= len(m.txs) {
		m.txs = m.txs[:0]
	} else {
		m.txs = m.txs[n:]
	}
}
