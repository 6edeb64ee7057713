package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenesisConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yml")
	content := `config:
  nonce: 7
  accounts:
    - id: satoshi
      pubkey: 8LLHhrs6Gc3JLnJMsBLs1bhxCCdiBJoNNCjLH1P4nSTB
      amount: 100000000
    - id: alice
      pubkey: 8LLHhrs6Gc3JLnJMsBLs1bhxCCdiBJoNNCjLH1P4nSTB
      amount: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadGenesisConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Nonce)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "satoshi", cfg.Accounts[0].ID)
	assert.Equal(t, uint64(100_000_000), cfg.Accounts[0].Amount)
	assert.Equal(t, uint64(0), cfg.Accounts[1].Amount)
}

func TestLoadGenesisConfigMissingFile(t *testing.T) {
	_, err := LoadGenesisConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadPoolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mempool.ini")
	require.NoError(t, os.WriteFile(path, []byte("[mempool]\nmax_txs = 512\n"), 0o644))

	cfg, err := LoadPoolConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxTxs)
}

func TestLoadEd25519PrivKey(t *testing.T) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "node.key")
	require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString(privKey)), 0o600))

	loaded, err := LoadEd25519PrivKey(path)
	require.NoError(t, err)
	assert.Equal(t, privKey, loaded)
}

func TestLoadEd25519PrivKeyRejectsShortKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.key")
	require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString([]byte("short"))), 0o600))

	_, err := LoadEd25519PrivKey(path)
	assert.Error(t, err)
}
