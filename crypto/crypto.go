package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

const (
	// PublicKeySize is the size of a public key in bytes.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the size of a signature in bytes.
	SignatureSize = ed25519.SignatureSize
)

// GenerateKeyPair returns a fresh ed25519 keypair.
func GenerateKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(rand.Reader)
}

// Sign signs message with privKey.
func Sign(privKey ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(privKey, message)
}

// Verify reports whether signature is a valid signature of message by pubKey.
func Verify(pubKey ed25519.PublicKey, message, signature []byte) bool {
	if len(pubKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(pubKey, message, signature)
}

// DigestHex returns the hex-encoded BLAKE2s-256 digest of data. Every hash in
// the chain (transaction and block alike) goes through here.
func DigestHex(data []byte) string {
	sum := blake2s.Sum256(data)
	return hex.EncodeToString(sum[:])
}
