package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/model"
)

func TestDefaultWalletSeeded(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Migrations seed a single default cash wallet on a fresh database.
	wallets, err := store.GetWallets(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Tunai", wallets[0].Name)
	assert.True(t, wallets[0].IsDefault)

	def, err := store.GetDefaultWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, wallets[0].ID, def.ID)
}

func TestCreateAndUpdateWallet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	wallet := &model.Wallet{Name: "Bank Jago", Icon: "bank", Color: "#54a0ff"}
	require.NoError(t, store.CreateWallet(ctx, wallet))
	require.NotEmpty(t, wallet.ID)

	wallet.Name = "Jago"
	require.NoError(t, store.UpdateWallet(ctx, wallet))

	got, err := store.GetWalletByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jago", got.Name)
	assert.False(t, got.IsDefault)

	t.Run("missing name is rejected", func(t *testing.T) {
		err := store.CreateWallet(ctx, &model.Wallet{Name: "  "})
		assert.ErrorIs(t, err, ErrInvalidWallet)
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		err := store.CreateWallet(ctx, &model.Wallet{Name: "JAGO", Icon: "bank", Color: "#54a0ff"})
		assert.ErrorIs(t, err, common.ErrDuplicateEntry)
	})
}

func TestSetDefaultWallet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	second := &model.Wallet{Name: "GoPay", Icon: "ewallet", Color: "#00b894"}
	require.NoError(t, store.CreateWallet(ctx, second))
	require.NoError(t, store.SetDefaultWallet(ctx, second.ID))

	def, err := store.GetDefaultWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	// The seeded wallet lost its flag; only one default at a time.
	wallets, err := store.GetWallets(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, w := range wallets {
		if w.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	assert.ErrorIs(t, store.SetDefaultWallet(ctx, "nope"), common.ErrNotFound)
}

func TestDeleteWalletDetachesTransactions(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	wallet := &model.Wallet{Name: "Dompet Lama", Icon: "cash", Color: "#b2bec3"}
	require.NoError(t, store.CreateWallet(ctx, wallet))

	txn := testTransaction(model.TypeExpense, "belanja", 99000, 0)
	txn.WalletID = wallet.ID
	require.NoError(t, store.SaveTransaction(ctx, txn))

	require.NoError(t, store.DeleteWallet(ctx, wallet.ID))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].WalletID, "transaction should become unassigned")

	_, err = store.GetWalletByID(ctx, wallet.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
