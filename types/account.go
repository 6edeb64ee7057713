package types

import (
	"crypto/ed25519"

	"github.com/holiman/uint256"
)

// AccountID is an opaque account identity, globally unique once created.
type AccountID = string

type AccountType int32

const (
	AccountTypeUser AccountType = iota
	AccountTypeContract
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeUser:
		return "user"
	case AccountTypeContract:
		return "contract"
	default:
		return "unknown"
	}
}

// Account is a single row of the ledger table. Accounts are created once and
// never deleted; the balance is only ever mutated through the WorldState
// capability.
type Account struct {
	Type      AccountType       `json:"type"`
	Balance   *uint256.Int      `json:"balance"`
	PublicKey ed25519.PublicKey `json:"public_key"`
}

func NewAccount(accountType AccountType, publicKey ed25519.PublicKey) *Account {
	return &Account{
		Type:      accountType,
		Balance:   uint256.NewInt(0),
		PublicKey: publicKey,
	}
}

// Clone returns a deep copy that shares no mutable state with the original.
func (a *Account) Clone() *Account {
	pub := make(ed25519.PublicKey, len(a.PublicKey))
	copy(pub, a.PublicKey)
	return &Account{
		Type:      a.Type,
		Balance:   new(uint256.Int).Set(a.Balance),
		PublicKey: pub,
	}
}
