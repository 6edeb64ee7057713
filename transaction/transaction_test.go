package transaction

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerchain/errors"
	"ledgerchain/interfaces"
	"ledgerchain/types"
)

// fakeState is a minimal WorldState backed by a plain map, proving the
// execution logic works against any storage implementing the capability.
type fakeState struct {
	accounts map[types.AccountID]*types.Account
}

var _ interfaces.WorldState = (*fakeState)(nil)

func newFakeState() *fakeState {
	return &fakeState{accounts: make(map[types.AccountID]*types.Account)}
}

func (s *fakeState) AccountIDs() []types.AccountID {
	ids := make([]types.AccountID, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	return ids
}

func (s *fakeState) GetAccount(id types.AccountID) (types.Account, bool) {
	account, ok := s.accounts[id]
	if !ok {
		return types.Account{}, false
	}
	return *account.Clone(), true
}

func (s *fakeState) GetAccountMut(id types.AccountID) (*types.Account, bool) {
	account, ok := s.accounts[id]
	return account, ok
}

func (s *fakeState) CreateAccount(id types.AccountID, accountType types.AccountType, publicKey ed25519.PublicKey) error {
	if _, exists := s.accounts[id]; exists {
		return errors.New(errors.CodeAccountAlreadyExists, "account id already exists: %s", id)
	}
	s.accounts[id] = types.NewAccount(accountType, publicKey)
	return nil
}

func newKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pubKey, privKey
}

func fundedState(t *testing.T, id types.AccountID, balance uint64) (*fakeState, ed25519.PrivateKey) {
	t.Helper()
	state := newFakeState()
	pubKey, privKey := newKeyPair(t)
	require.NoError(t, state.CreateAccount(id, types.AccountTypeUser, pubKey))
	state.accounts[id].Balance = uint256.NewInt(balance)
	return state, privKey
}

func TestHashChangesWithData(t *testing.T) {
	pubKey, _ := newKeyPair(t)
	aliceTx := NewCreateAccount("alice", pubKey)
	bobTx := NewCreateAccount("bob", pubKey)
	bobTx.Timestamp = aliceTx.Timestamp

	assert.NotEqual(t, aliceTx.Hash(), bobTx.Hash())
}

func TestHashExcludesSignature(t *testing.T) {
	_, privKey := newKeyPair(t)
	tx := NewTransfer("satoshi", "alice", uint256.NewInt(10))

	before := tx.Hash()
	tx.Sign(privKey)
	assert.Equal(t, before, tx.Hash())
	assert.NotEmpty(t, tx.Signature)
}

func TestPreimageUnambiguous(t *testing.T) {
	// without length prefixes these two would serialize identically
	first := NewTransfer("a|b", "c", uint256.NewInt(1))
	second := NewTransfer("a", "b|c", uint256.NewInt(1))
	second.Timestamp = first.Timestamp

	assert.NotEqual(t, first.Hash(), second.Hash())
}

func TestWireRoundTrip(t *testing.T) {
	_, privKey := newKeyPair(t)
	tx := NewTransfer("satoshi", "alice", uint256.NewInt(10))
	tx.Sign(privKey)

	decoded, err := ParseTx(tx.Bytes())
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
	assert.Equal(t, tx.Hash(), decoded.Hash())
}

func TestCreateAccountIsSignatureExempt(t *testing.T) {
	state := newFakeState()
	pubKey, _ := newKeyPair(t)
	tx := NewCreateAccount("alice", pubKey)

	// unsigned, outside genesis: still accepted
	require.NoError(t, tx.Execute(state, false))
	account, ok := state.GetAccount("alice")
	require.True(t, ok)
	assert.Equal(t, types.AccountTypeUser, account.Type)
	assert.Equal(t, "0", account.Balance.Dec())

	err := tx.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeAccountAlreadyExists))
}

func TestCreateAccountRejectsMalformedKey(t *testing.T) {
	state := newFakeState()
	tx := NewCreateAccount("alice", nil)
	tx.PubKey = "not-base58!!"

	err := tx.Execute(state, true)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidAccount))
}

func TestMintInitialSupply(t *testing.T) {
	state := newFakeState()
	pubKey, _ := newKeyPair(t)
	require.NoError(t, state.CreateAccount("satoshi", types.AccountTypeUser, pubKey))

	mint := NewMintInitialSupply("satoshi", uint256.NewInt(100_000_000))
	require.NoError(t, mint.Execute(state, true))

	account, _ := state.GetAccount("satoshi")
	assert.Equal(t, "100000000", account.Balance.Dec())
}

func TestMintFailsOutsideGenesis(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)

	mint := NewMintInitialSupply("satoshi", uint256.NewInt(1))
	err := mint.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeNotGenesis))

	// signing does not change the outcome: a mint can never leave genesis
	mint.Sender = "satoshi"
	mint.Sign(privKey)
	err = mint.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeNotGenesis))
}

func TestMintFailsForUnknownAccount(t *testing.T) {
	state := newFakeState()
	mint := NewMintInitialSupply("satoshi", uint256.NewInt(1))

	err := mint.Execute(state, true)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidAccount))
}

func TestMintChecksOverflow(t *testing.T) {
	state := newFakeState()
	pubKey, _ := newKeyPair(t)
	require.NoError(t, state.CreateAccount("satoshi", types.AccountTypeUser, pubKey))
	maxBalance := new(uint256.Int).SetAllOne()
	state.accounts["satoshi"].Balance = maxBalance

	mint := NewMintInitialSupply("satoshi", uint256.NewInt(1))
	err := mint.Execute(state, true)
	assert.True(t, errors.IsCode(err, errors.CodeBalanceOverflow))
}

func TestTransfer(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)
	pubKey, _ := newKeyPair(t)
	require.NoError(t, state.CreateAccount("alice", types.AccountTypeUser, pubKey))

	tx := NewTransfer("satoshi", "alice", uint256.NewInt(10))
	tx.Sign(privKey)
	require.NoError(t, tx.Execute(state, false))

	satoshi, _ := state.GetAccount("satoshi")
	alice, _ := state.GetAccount("alice")
	assert.Equal(t, "90", satoshi.Balance.Dec())
	assert.Equal(t, "10", alice.Balance.Dec())
}

func TestTransferInsufficientBalance(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)
	pubKey, _ := newKeyPair(t)
	require.NoError(t, state.CreateAccount("alice", types.AccountTypeUser, pubKey))

	tx := NewTransfer("satoshi", "alice", uint256.NewInt(101))
	tx.Sign(privKey)
	err := tx.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeInsufficientBalance))

	satoshi, _ := state.GetAccount("satoshi")
	assert.Equal(t, "100", satoshi.Balance.Dec())
}

func TestTransferChecksCreditOverflow(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)
	pubKey, _ := newKeyPair(t)
	require.NoError(t, state.CreateAccount("alice", types.AccountTypeUser, pubKey))
	state.accounts["alice"].Balance = new(uint256.Int).SetAllOne()

	tx := NewTransfer("satoshi", "alice", uint256.NewInt(10))
	tx.Sign(privKey)
	err := tx.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeBalanceOverflow))
}

func TestTransferUnknownReceiver(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)

	tx := NewTransfer("satoshi", "nobody", uint256.NewInt(10))
	tx.Sign(privKey)
	err := tx.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidReceiverAddress))
}

func TestTransferUnknownSender(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)
	// signed by a known key but naming a sender that does not exist
	tx := NewTransfer("nobody", "satoshi", uint256.NewInt(10))
	tx.Sign(privKey)

	err := tx.Execute(state, false)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidSenderAddress))
}

func TestCheckSignature(t *testing.T) {
	state, privKey := fundedState(t, "satoshi", 100)

	tx := NewTransfer("satoshi", "alice", uint256.NewInt(10))
	err := tx.CheckSignature(state)
	assert.True(t, errors.IsCode(err, errors.CodeSignatureMissing))

	unsent := NewTransfer("", "alice", uint256.NewInt(10))
	unsent.Sign(privKey)
	err = unsent.CheckSignature(state)
	assert.True(t, errors.IsCode(err, errors.CodeFromUnset))

	stranger := NewTransfer("nobody", "alice", uint256.NewInt(10))
	stranger.Sign(privKey)
	err = stranger.CheckSignature(state)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidSenderAddress))

	_, wrongKey := newKeyPair(t)
	forged := NewTransfer("satoshi", "alice", uint256.NewInt(10))
	forged.Sign(wrongKey)
	err = forged.CheckSignature(state)
	assert.True(t, errors.IsCode(err, errors.CodeSignatureInvalid))

	tx.Sign(privKey)
	assert.NoError(t, tx.CheckSignature(state))
}
