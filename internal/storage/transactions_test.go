package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/model"
)

func TestSaveAndGetTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and returns newest first", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		older := testTransaction(model.TypeIncome, "gaji", 3000000, 5)
		newer := testTransaction(model.TypeExpense, "makan", 25000, 0)

		require.NoError(t, store.SaveTransaction(ctx, older))
		require.NoError(t, store.SaveTransaction(ctx, newer))
		assert.NotEmpty(t, older.ID)
		assert.NotEmpty(t, newer.ID)

		got, err := store.GetTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Equal(t, older.ID, got[1].ID)
	})

	t.Run("round-trips optional fields", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		wallet, err := store.GetDefaultWallet(ctx)
		require.NoError(t, err)

		txn := testTransaction(model.TypeExpense, "nongkrong", 42000, 1)
		txn.Note = "kopi sore"
		txn.WalletID = wallet.ID
		require.NoError(t, store.SaveTransaction(ctx, txn))

		got, err := store.GetTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "kopi sore", got[0].Note)
		assert.Equal(t, wallet.ID, got[0].WalletID)
	})

	t.Run("rejects invalid transactions", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		bad := testTransaction(model.TransactionType("transfer"), "makan", 1000, 0)
		assert.ErrorIs(t, store.SaveTransaction(ctx, bad), ErrInvalidType)

		negative := testTransaction(model.TypeExpense, "makan", -1, 0)
		assert.ErrorIs(t, store.SaveTransaction(ctx, negative), ErrNegativeAmount)

		uncategorized := testTransaction(model.TypeExpense, " ", 1000, 0)
		assert.ErrorIs(t, store.SaveTransaction(ctx, uncategorized), ErrInvalidTransaction)
	})
}

func TestGetTransactionsByWallet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	wallet, err := store.GetDefaultWallet(ctx)
	require.NoError(t, err)

	assigned := testTransaction(model.TypeExpense, "makan", 10000, 0)
	assigned.WalletID = wallet.ID
	unassigned := testTransaction(model.TypeExpense, "makan", 20000, 0)

	require.NoError(t, store.SaveTransaction(ctx, assigned))
	require.NoError(t, store.SaveTransaction(ctx, unassigned))

	got, err := store.GetTransactionsByWallet(ctx, wallet.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, assigned.ID, got[0].ID)
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	txn := testTransaction(model.TypeExpense, "transport", 8000, 0)
	require.NoError(t, store.SaveTransaction(ctx, txn))

	require.NoError(t, store.DeleteTransaction(ctx, txn.ID))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, store.DeleteTransaction(ctx, txn.ID), common.ErrNotFound)
}

func TestClearTransactions(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveTransaction(ctx, testTransaction(model.TypeExpense, "makan", 1000, i)))
	}

	require.NoError(t, store.ClearTransactions(ctx))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
