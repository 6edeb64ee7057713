package transaction

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/holiman/uint256"

	"ledgerchain/common"
	"ledgerchain/crypto"
	"ledgerchain/errors"
	"ledgerchain/interfaces"
	"ledgerchain/jsonx"
	"ledgerchain/types"
)

const (
	TxTypeCreateAccount     int32 = 0
	TxTypeTransfer          int32 = 1
	TxTypeMintInitialSupply int32 = 2
)

// Transaction is a signed state-transition request. The variant is selected by
// Type; unused fields stay at their zero value. A transaction is immutable
// once built, except for signature attachment, and the signature is never part
// of the hashed preimage.
type Transaction struct {
	Type      int32        `json:"type"`
	Nonce     uint64       `json:"nonce"`
	Timestamp uint64       `json:"timestamp"`
	Sender    string       `json:"sender,omitempty"`
	Recipient string       `json:"recipient"`
	Amount    *uint256.Int `json:"amount,omitempty"`
	PubKey    string       `json:"pub_key,omitempty"`
	Signature string       `json:"signature,omitempty"`
}

// NewCreateAccount builds a transaction registering id under publicKey.
func NewCreateAccount(id types.AccountID, publicKey ed25519.PublicKey) *Transaction {
	return &Transaction{
		Type:      TxTypeCreateAccount,
		Timestamp: nowMillis(),
		Recipient: id,
		PubKey:    common.EncodeBytesToBase58(publicKey),
	}
}

// NewTransfer builds a transaction moving amount from sender to recipient.
func NewTransfer(from, to types.AccountID, amount *uint256.Int) *Transaction {
	return &Transaction{
		Type:      TxTypeTransfer,
		Timestamp: nowMillis(),
		Sender:    from,
		Recipient: to,
		Amount:    amount,
	}
}

// NewMintInitialSupply builds the genesis-only supply mint for to.
func NewMintInitialSupply(to types.AccountID, amount *uint256.Int) *Transaction {
	return &Transaction{
		Type:      TxTypeMintInitialSupply,
		Timestamp: nowMillis(),
		Recipient: to,
		Amount:    amount,
	}
}

func nowMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Serialize returns the deterministic hash preimage. String fields are length
// prefixed so an id containing the separator cannot collide two distinct
// preimages. The signature is deliberately excluded: it is computed over the
// hash, so hashing it back into the content would be circular.
func (tx *Transaction) Serialize() []byte {
	amount := "0"
	if tx.Amount != nil {
		amount = tx.Amount.Dec()
	}
	metadata := fmt.Sprintf(
		"%d|%d|%d|%d:%s|%d:%s|%s|%d:%s",
		tx.Type, tx.Nonce, tx.Timestamp,
		len(tx.Sender), tx.Sender,
		len(tx.Recipient), tx.Recipient,
		amount,
		len(tx.PubKey), tx.PubKey,
	)
	return []byte(metadata)
}

// Hash returns the hex-encoded content hash of the transaction.
func (tx *Transaction) Hash() string {
	return crypto.DigestHex(tx.Serialize())
}

// Bytes returns the wire form of the transaction.
func (tx *Transaction) Bytes() []byte {
	b, _ := jsonx.Marshal(tx)
	return b
}

// ParseTx decodes the wire form produced by Bytes.
func ParseTx(data []byte) (*Transaction, error) {
	var tx Transaction
	err := jsonx.Unmarshal(data, &tx)
	return &tx, err
}

// Sign signs the transaction hash with privKey and attaches the signature.
func (tx *Transaction) Sign(privKey ed25519.PrivateKey) {
	sig := crypto.Sign(privKey, []byte(tx.Hash()))
	tx.Signature = common.EncodeBytesToBase58(sig)
}

// Execute applies the transaction to state. Outside the genesis block every
// transaction except CreateAccount must carry a valid signature; CreateAccount
// is always exempt because no pre-existing key can authorize the first
// registration of an identity. A mint outside genesis can never succeed, so it
// reports NotGenesis before any signature concern.
func (tx *Transaction) Execute(state interfaces.WorldState, isGenesis bool) error {
	switch tx.Type {
	case TxTypeCreateAccount:
		publicKey, err := common.DecodeBase58ToBytes(tx.PubKey)
		if err != nil || len(publicKey) != crypto.PublicKeySize {
			return errors.New(errors.CodeInvalidAccount, "malformed public key for account %s", tx.Recipient)
		}
		return createAccount(state, tx.Recipient, publicKey)
	case TxTypeMintInitialSupply:
		return mintInitialSupply(state, tx.Recipient, tx.amountOrZero(), isGenesis)
	case TxTypeTransfer:
		if !isGenesis {
			if err := tx.CheckSignature(state); err != nil {
				return err
			}
		}
		return transfer(state, tx.Sender, tx.Recipient, tx.amountOrZero())
	default:
		return fmt.Errorf("unknown transaction type: %d", tx.Type)
	}
}

// CheckSignature verifies the attached signature over the transaction hash
// against the sender account's stored public key.
func (tx *Transaction) CheckSignature(state interfaces.WorldState) error {
	if tx.Signature == "" {
		return errors.New(errors.CodeSignatureMissing, "transaction has no signature")
	}
	if tx.Sender == "" {
		return errors.New(errors.CodeFromUnset, "transaction has no sender")
	}
	sender, ok := state.GetAccount(tx.Sender)
	if !ok {
		return errors.New(errors.CodeInvalidSenderAddress, "unknown sender account: %s", tx.Sender)
	}
	signature, err := common.DecodeBase58ToBytes(tx.Signature)
	if err != nil {
		return errors.New(errors.CodeSignatureInvalid, "failed to decode signature: %v", err)
	}
	if !crypto.Verify(sender.PublicKey, []byte(tx.Hash()), signature) {
		return errors.New(errors.CodeSignatureInvalid, "signature verification failed for sender %s", tx.Sender)
	}
	return nil
}

func (tx *Transaction) amountOrZero() *uint256.Int {
	if tx.Amount == nil {
		return uint256.NewInt(0)
	}
	return tx.Amount
}

// State transition functions

func createAccount(state interfaces.WorldState, id types.AccountID, publicKey ed25519.PublicKey) error {
	return state.CreateAccount(id, types.AccountTypeUser, publicKey)
}

func mintInitialSupply(state interfaces.WorldState, to types.AccountID, amount *uint256.Int, isGenesis bool) error {
	if !isGenesis {
		return errors.New(errors.CodeNotGenesis, "initial supply can be minted only in the genesis block")
	}
	account, ok := state.GetAccountMut(to)
	if !ok {
		return errors.New(errors.CodeInvalidAccount, "invalid account: %s", to)
	}
	sum, overflow := new(uint256.Int).AddOverflow(account.Balance, amount)
	if overflow {
		return errors.New(errors.CodeBalanceOverflow, "balance overflow minting to %s", to)
	}
	account.Balance = sum
	return nil
}

func transfer(state interfaces.WorldState, from, to types.AccountID, amount *uint256.Int) error {
	sender, ok := state.GetAccountMut(from)
	if !ok {
		return errors.New(errors.CodeInvalidSenderAddress, "invalid sender address: %s", from)
	}
	debited, underflow := new(uint256.Int).SubOverflow(sender.Balance, amount)
	if underflow {
		return errors.New(errors.CodeInsufficientBalance, "insufficient balance in account %s", from)
	}
	sender.Balance = debited

	recipient, ok := state.GetAccountMut(to)
	if !ok {
		// The debit above stays applied; the enclosing block rollback is
		// what makes the transfer all-or-nothing.
		return errors.New(errors.CodeInvalidReceiverAddress, "invalid receiver address: %s", to)
	}
	credited, overflow := new(uint256.Int).AddOverflow(recipient.Balance, amount)
	if overflow {
		return errors.New(errors.CodeBalanceOverflow, "balance overflow crediting %s", to)
	}
	recipient.Balance = credited
	return nil
}
