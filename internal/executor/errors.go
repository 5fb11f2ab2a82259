package executor

import (
	"errors"
	"strings"

	"payoutd/internal/ethereum"
)

var (
	ErrEmptyBatch         = errors.New("empty batch")
	ErrInvalidRecipient   = errors.New("invalid recipient address")
	ErrInsufficientGas    = errors.New("insufficient native balance for gas")
	ErrInsufficientTokens = errors.New("insufficient token balance")
	ErrAttemptsExhausted  = errors.New("transaction attempts exhausted")
	// ErrUnresolved means an earlier submission may still confirm.
	ErrUnresolved = errors.New("earlier submission unresolved")

	ErrFeeTooLow     = errors.New("fee too low")
	ErrNonceConflict = errors.New("nonce conflict")
	ErrRPC           = errors.New("rpc failure")
)

var fatalErrors = []error{ErrEmptyBatch, ErrInvalidRecipient, ErrInsufficientGas, ErrInsufficientTokens}

// IsFatal reports errors that retrying cannot fix.
func IsFatal(err error) bool {
	for _, target := range fatalErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classify maps node error messages onto the sentinel errors above.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if IsFatal(err) || errors.Is(err, ethereum.ErrReverted) || errors.Is(err, ethereum.ErrReceiptTimeout) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return errors.Join(ErrInsufficientGas, err)
	case strings.Contains(msg, "transfer amount exceeds balance"):
		return errors.Join(ErrInsufficientTokens, err)
	case strings.Contains(msg, "underpriced"),
		strings.Contains(msg, "fee too low"),
		strings.Contains(msg, "less than block base fee"):
		return errors.Join(ErrFeeTooLow, err)
	case strings.Contains(msg, "nonce too low"),
		strings.Contains(msg, "already known"),
		strings.Contains(msg, "nonce too high"):
		return errors.Join(ErrNonceConflict, err)
	default:
		return errors.Join(ErrRPC, err)
	}
}

func isAlreadyKnown(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already known")
}
