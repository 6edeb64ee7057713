package errors

import (
	stderrors "errors"
	"fmt"
)

// Code identifies one of the ledger's failure conditions. The set is closed:
// every fallible operation in the engine reports one of these.
type Code string

const (
	CodeAccountAlreadyExists   Code = "account_already_exists"
	CodeInvalidAccount         Code = "invalid_account"
	CodeNotGenesis             Code = "not_genesis"
	CodeInsufficientBalance    Code = "insufficient_balance"
	CodeInvalidSenderAddress   Code = "invalid_sender_address"
	CodeInvalidReceiverAddress Code = "invalid_receiver_address"
	CodeBalanceOverflow        Code = "balance_overflow"
	CodeSignatureMissing       Code = "signature_missing"
	CodeSignatureInvalid       Code = "signature_invalid"
	CodeFromUnset              Code = "from_unset"
	CodeInvalidBlockHash       Code = "invalid_block_hash"
	CodeEmptyBlock             Code = "empty_block"
	CodeChainLinkageBroken     Code = "chain_linkage_broken"
)

// LedgerError carries a failure code alongside a human-readable message.
type LedgerError struct {
	Code    Code
	Message string
}

func (e *LedgerError) Error() string {
	return e.Message
}

// New creates a LedgerError with a formatted message.
func New(code Code, format string, args ...interface{}) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the failure code from err, unwrapping as needed.
// Returns the empty code if err carries no LedgerError.
func CodeOf(err error) Code {
	var le *LedgerError
	if stderrors.As(err, &le) {
		return le.Code
	}
	return ""
}

// IsCode reports whether err carries the given failure code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
