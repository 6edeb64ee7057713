package block

import (
	"encoding/binary"

	"ledgerchain/crypto"
	"ledgerchain/transaction"
)

// Block is an ordered batch of transactions linked to its predecessor by
// hash. The cached hash is write-through: every structural mutator recomputes
// it immediately, so a block mutated through this API always verifies. The
// zero cached hash (empty string) means no mutation has happened yet.
type Block struct {
	nonce        uint64
	hash         string
	prevHash     string
	transactions []*transaction.Transaction
}

// New returns an empty block linked to prevHash. The genesis block passes an
// empty prevHash.
func New(prevHash string) *Block {
	return &Block{prevHash: prevHash}
}

// SetNonce records the proof value and recomputes the cached hash.
func (b *Block) SetNonce(nonce uint64) {
	b.nonce = nonce
	b.updateHash()
}

// AddTransaction appends tx to the ordered list and recomputes the cached hash.
func (b *Block) AddTransaction(tx *transaction.Transaction) {
	b.transactions = append(b.transactions, tx)
	b.updateHash()
}

// SetPrevHash relinks the block to a different predecessor and recomputes the
// cached hash.
func (b *Block) SetPrevHash(prevHash string) {
	b.prevHash = prevHash
	b.updateHash()
}

func (b *Block) Nonce() uint64 {
	return b.nonce
}

// PrevHash returns the predecessor hash, empty for the genesis block.
func (b *Block) PrevHash() string {
	return b.prevHash
}

// CachedHash returns the cached hash, empty if the block was never mutated.
func (b *Block) CachedHash() string {
	return b.hash
}

// Transactions exposes the underlying transaction pointers. Mutating a
// transaction through them bypasses the hash cache, which is exactly what
// chain-validation tooling relies on to corrupt a block in place.
func (b *Block) Transactions() []*transaction.Transaction {
	return b.transactions
}

func (b *Block) TransactionsLen() int {
	return len(b.transactions)
}

// Hash digests (prev hash, nonce) followed by every transaction hash in list
// order; reordering transactions changes the result.
func (b *Block) Hash() string {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, b.nonce)

	data := make([]byte, 0, len(b.prevHash)+8+len(b.transactions)*64)
	data = append(data, []byte(b.prevHash)...)
	data = append(data, buf...)
	for _, tx := range b.transactions {
		data = append(data, []byte(tx.Hash())...)
	}
	return crypto.DigestHex(data)
}

// Verify reports whether the cached hash matches a fresh recomputation. A
// block with no cached hash never verifies.
func (b *Block) Verify() bool {
	return b.hash != "" && b.hash == b.Hash()
}

func (b *Block) updateHash() {
	b.hash = b.Hash()
}
