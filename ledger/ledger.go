package ledger

import (
	"crypto/ed25519"
	"fmt"

	"ledgerchain/block"
	"ledgerchain/chain"
	"ledgerchain/errors"
	"ledgerchain/logx"
	"ledgerchain/mempool"
	"ledgerchain/transaction"
	"ledgerchain/types"
)

// Blockchain owns the block chain, the account table and the transaction
// pool. It is the sole production implementation of the WorldState capability.
//
// The engine is single-writer: AppendBlock snapshots and restores the account
// table without any internal locking, so concurrent use requires an exclusive
// writer enforced by the caller.
type Blockchain struct {
	blocks   *chain.Chain[block.Block]
	accounts map[types.AccountID]*types.Account
	txPool   *mempool.Mempool
}

func NewBlockchain() *Blockchain {
	return NewBlockchainWithPool(mempool.NewMempool(mempool.DefaultMaxTxs))
}

func NewBlockchainWithPool(pool *mempool.Mempool) *Blockchain {
	return &Blockchain{
		blocks:   chain.New[block.Block](),
		accounts: make(map[types.AccountID]*types.Account),
		txPool:   pool,
	}
}

// Len returns the number of blocks in the chain.
func (bc *Blockchain) Len() int {
	return bc.blocks.Len()
}

// LastBlockHash returns the hash of the newest block, empty on an empty chain.
func (bc *Blockchain) LastBlockHash() string {
	head := bc.blocks.Head()
	if head == nil {
		return ""
	}
	return head.Hash()
}

// Blocks returns a newest-to-oldest iterator over the chain.
func (bc *Blockchain) Blocks() *chain.Iterator[block.Block] {
	return bc.blocks.Iter()
}

// SubmitTransaction parks a transaction in the pool. Pool contents are storage
// only; block producers pull from it, the append/validate flow does not.
func (bc *Blockchain) SubmitTransaction(tx *transaction.Transaction) error {
	return bc.txPool.Add(tx)
}

// PendingTransactions returns the number of pooled transactions.
func (bc *Blockchain) PendingTransactions() int {
	return bc.txPool.Len()
}

// AppendBlock verifies the block, executes its transactions in order and
// commits it to the chain. The block is an all-or-nothing unit: the first
// failing transaction restores the account table to its pre-block snapshot
// and no partial effect persists.
func (bc *Blockchain) AppendBlock(b *block.Block) error {
	if !b.Verify() {
		return errors.New(errors.CodeInvalidBlockHash, "block has invalid hash")
	}

	isGenesis := bc.blocks.Len() == 0

	if !isGenesis && b.TransactionsLen() == 0 {
		return errors.New(errors.CodeEmptyBlock, "block has no transactions")
	}

	snapshot := bc.snapshotAccounts()
	for _, tx := range b.Transactions() {
		if err := tx.Execute(bc, isGenesis); err != nil {
			bc.accounts = snapshot
			logx.Warn("LEDGER", fmt.Sprintf("block rejected, rolled back %d accounts: %v", len(snapshot), err))
			return fmt.Errorf("error executing block transactions: %w", err)
		}
	}

	bc.blocks.Append(*b)
	logx.Info("LEDGER", fmt.Sprintf("appended block %d with %d transactions", bc.blocks.Len(), b.TransactionsLen()))
	return nil
}

// Validate walks the chain from the newest block to genesis and returns the
// first violation found: a stale cached hash, a missing or unexpected
// predecessor hash, or a predecessor hash that does not match the next block
// toward genesis. Blocks are numbered downward from the chain length, genesis
// being block 1. Read-only; callers must re-run it after any in-place edit.
func (bc *Blockchain) Validate() error {
	blockNum := bc.blocks.Len()
	successorPrevHash := ""

	it := bc.blocks.Iter()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		isGenesis := blockNum == 1

		if !b.Verify() {
			return errors.New(errors.CodeInvalidBlockHash, "block %d has invalid hash", blockNum)
		}
		if b.PrevHash() == "" && !isGenesis {
			return errors.New(errors.CodeChainLinkageBroken, "block %d has no predecessor hash", blockNum)
		}
		if b.PrevHash() != "" && isGenesis {
			return errors.New(errors.CodeChainLinkageBroken, "genesis block must not have a predecessor hash")
		}
		if blockNum != bc.blocks.Len() && successorPrevHash != b.Hash() {
			return errors.New(errors.CodeChainLinkageBroken,
				"block %d predecessor hash does not match block %d hash", blockNum+1, blockNum)
		}

		successorPrevHash = b.PrevHash()
		blockNum--
	}
	return nil
}

func (bc *Blockchain) snapshotAccounts() map[types.AccountID]*types.Account {
	snapshot := make(map[types.AccountID]*types.Account, len(bc.accounts))
	for id, account := range bc.accounts {
		snapshot[id] = account.Clone()
	}
	return snapshot
}

// WorldState implementation

// AccountIDs enumerates every known account id.
func (bc *Blockchain) AccountIDs() []types.AccountID {
	ids := make([]types.AccountID, 0, len(bc.accounts))
	for id := range bc.accounts {
		ids = append(ids, id)
	}
	return ids
}

// GetAccount returns a read-only copy of the account with the given id.
func (bc *Blockchain) GetAccount(id types.AccountID) (types.Account, bool) {
	account, ok := bc.accounts[id]
	if !ok {
		return types.Account{}, false
	}
	return *account.Clone(), true
}

// GetAccountMut returns a mutable handle to the account with the given id.
func (bc *Blockchain) GetAccountMut(id types.AccountID) (*types.Account, bool) {
	account, ok := bc.accounts[id]
	return account, ok
}

// CreateAccount registers a new account, failing if the id is already taken.
func (bc *Blockchain) CreateAccount(id types.AccountID, accountType types.AccountType, publicKey ed25519.PublicKey) error {
	if _, exists := bc.accounts[id]; exists {
		return errors.New(errors.CodeAccountAlreadyExists, "account id already exists: %s", id)
	}
	bc.accounts[id] = types.NewAccount(accountType, publicKey)
	return nil
}
