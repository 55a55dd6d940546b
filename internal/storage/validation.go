package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sakumate/saku/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidWallet      = errors.New("invalid wallet")
	ErrInvalidGoal        = errors.New("invalid saving goal")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction before it is saved.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, txn.Type)
	}
	if txn.Amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, txn.Amount)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	return nil
}

// validateWallet validates a wallet before it is saved.
func validateWallet(wallet *model.Wallet) error {
	if wallet == nil {
		return fmt.Errorf("%w: wallet", ErrNilParameter)
	}
	if strings.TrimSpace(wallet.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidWallet)
	}
	return nil
}

// validateGoal validates a saving goal before it is saved.
func validateGoal(goal *model.SavingGoal) error {
	if goal == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if strings.TrimSpace(goal.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGoal)
	}
	if goal.TargetAmount <= 0 {
		return fmt.Errorf("%w: target must be positive", ErrInvalidGoal)
	}
	return nil
}
