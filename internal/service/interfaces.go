// Package service defines the contracts between the application's layers.
package service

import (
	"context"

	"github.com/sakumate/saku/internal/model"
)

// Storage defines the contract for the persistence layer. The
// calculation layer never touches it; commands read a snapshot of
// transactions and hand it to pure functions.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByWallet(ctx context.Context, walletID string) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ClearTransactions(ctx context.Context) error

	// Wallet operations
	CreateWallet(ctx context.Context, wallet *model.Wallet) error
	GetWallets(ctx context.Context) ([]model.Wallet, error)
	GetWalletByID(ctx context.Context, id string) (*model.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *model.Wallet) error
	DeleteWallet(ctx context.Context, id string) error
	SetDefaultWallet(ctx context.Context, id string) error
	GetDefaultWallet(ctx context.Context) (*model.Wallet, error)

	// Saving goal operations
	CreateGoal(ctx context.Context, goal *model.SavingGoal) error
	GetGoals(ctx context.Context) ([]model.SavingGoal, error)
	GetGoalByID(ctx context.Context, id string) (*model.SavingGoal, error)
	UpdateGoal(ctx context.Context, goal *model.SavingGoal) error
	AddToGoal(ctx context.Context, id string, amount int64) error
	DeleteGoal(ctx context.Context, id string) error

	// Profile operations
	GetProfile(ctx context.Context) (*model.Profile, error)
	SaveProfile(ctx context.Context, profile *model.Profile) error

	// Streak operations
	GetStreak(ctx context.Context) (*model.Streak, error)
	RecordActivity(ctx context.Context) (*model.Streak, error)

	// Database management
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
	Close() error
}
