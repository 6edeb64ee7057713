package interfaces

import (
	"crypto/ed25519"

	"ledgerchain/types"
)

// WorldState is the only capability transactions use to read and mutate the
// account table. The blockchain is the sole production implementation; tests
// may substitute a fake backed by any storage.
type WorldState interface {
	// AccountIDs enumerates every known account id.
	AccountIDs() []types.AccountID
	// GetAccount returns a read-only copy of the account with the given id.
	GetAccount(id types.AccountID) (types.Account, bool)
	// GetAccountMut returns a mutable handle to the account with the given id.
	// This is the only sanctioned path for balance mutation.
	GetAccountMut(id types.AccountID) (*types.Account, bool)
	// CreateAccount registers a new account under id.
	CreateAccount(id types.AccountID, accountType types.AccountType, publicKey ed25519.PublicKey) error
}
