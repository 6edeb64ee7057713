package wallet

import (
	"crypto/ed25519"

	"ledgerchain/common"
	"ledgerchain/crypto"
	"ledgerchain/transaction"
)

// Wallet represents a user's keypair and a base58 address derived from the
// public key.
type Wallet struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
	Address    string
}

// NewWallet generates a new wallet.
func NewWallet() (*Wallet, error) {
	_, privKey, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(privKey), nil
}

// FromPrivateKey rebuilds a wallet from an existing private key.
func FromPrivateKey(privKey ed25519.PrivateKey) *Wallet {
	pubKey := privKey.Public().(ed25519.PublicKey)
	return &Wallet{
		PrivateKey: privKey,
		PublicKey:  pubKey,
		Address:    common.EncodeBytesToBase58(pubKey),
	}
}

// SignTransaction signs the given transaction with the wallet's private key
// and attaches the signature.
func (w *Wallet) SignTransaction(tx *transaction.Transaction) {
	tx.Sign(w.PrivateKey)
}
