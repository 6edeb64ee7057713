package ledger

import (
	"fmt"

	"github.com/holiman/uint256"

	"ledgerchain/block"
	"ledgerchain/common"
	"ledgerchain/config"
	"ledgerchain/crypto"
	"ledgerchain/transaction"
)

// GenesisBlockFromConfig builds the genesis block for the configured initial
// allocation: one CreateAccount per entry, followed by a MintInitialSupply for
// entries with a non-zero amount.
func GenesisBlockFromConfig(cfg *config.GenesisConfig) (*block.Block, error) {
	b := block.New("")
	for _, account := range cfg.Accounts {
		publicKey, err := common.DecodeBase58ToBytes(account.PubKey)
		if err != nil {
			return nil, fmt.Errorf("genesis account %s: %w", account.ID, err)
		}
		if len(publicKey) != crypto.PublicKeySize {
			return nil, fmt.Errorf("genesis account %s: invalid public key length %d", account.ID, len(publicKey))
		}
		b.AddTransaction(transaction.NewCreateAccount(account.ID, publicKey))
		if account.Amount > 0 {
			b.AddTransaction(transaction.NewMintInitialSupply(account.ID, uint256.NewInt(account.Amount)))
		}
	}
	b.SetNonce(cfg.Nonce)
	return b, nil
}
