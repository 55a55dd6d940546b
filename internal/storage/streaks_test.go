package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/model"
)

func TestStreakStorage(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("zero streak on fresh database", func(t *testing.T) {
		streak, err := store.GetStreak(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, streak.Count)
		assert.Equal(t, 0, streak.Longest)
	})

	t.Run("first activity starts the streak", func(t *testing.T) {
		streak, err := store.RecordActivity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, streak.Count)
		assert.Equal(t, 1, streak.Longest)
		assert.Equal(t, time.Now().Format("2006-01-02"), streak.LastDate)
	})

	t.Run("same-day activity does not advance", func(t *testing.T) {
		streak, err := store.RecordActivity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, streak.Count)

		persisted, err := store.GetStreak(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, persisted.Count)
	})

	t.Run("gap resets the count but keeps the longest", func(t *testing.T) {
		// Backdate the stored streak to simulate a lapse.
		_, err := store.db.ExecContext(ctx,
			`UPDATE streaks SET count = 6, longest = 6, last_date = ? WHERE id = 1`,
			time.Now().AddDate(0, 0, -4).Format("2006-01-02"))
		require.NoError(t, err)

		streak, err := store.RecordActivity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, streak.Count)
		assert.Equal(t, 6, streak.Longest)
	})

	t.Run("consecutive day extends", func(t *testing.T) {
		_, err := store.db.ExecContext(ctx,
			`UPDATE streaks SET count = 2, longest = 6, last_date = ? WHERE id = 1`,
			time.Now().AddDate(0, 0, -1).Format("2006-01-02"))
		require.NoError(t, err)

		streak, err := store.RecordActivity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, streak.Count)
	})
}

func TestProfileStorage(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("default profile before setup", func(t *testing.T) {
		p, err := store.GetProfile(ctx)
		require.NoError(t, err)
		assert.Empty(t, p.Name)
		assert.Equal(t, "😊", p.AvatarEmoji)
	})

	t.Run("upsert keeps a single row", func(t *testing.T) {
		require.NoError(t, store.SaveProfile(ctx, &model.Profile{Name: "Dina", University: "UGM", AvatarEmoji: "🦊"}))
		require.NoError(t, store.SaveProfile(ctx, &model.Profile{Name: "Dina Putri", University: "UGM", AvatarEmoji: "🦊"}))

		p, err := store.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Dina Putri", p.Name)

		var count int
		require.NoError(t, store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profile`).Scan(&count))
		assert.Equal(t, 1, count)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveTransaction(ctx, testTransaction(model.TypeExpense, "makan", 5000, 0)))
	require.NoError(t, store.SaveProfile(ctx, &model.Profile{Name: "Dina"}))
	_, err := store.RecordActivity(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	txs, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	streak, err := store.GetStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak.Count)

	// Default wallet is re-seeded for the next first run.
	def, err := store.GetDefaultWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tunai", def.Name)
}
