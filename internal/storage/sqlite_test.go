package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sakumate/saku/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper function to create a test transaction.
func testTransaction(txType model.TransactionType, category string, amount int64, daysAgo int) *model.Transaction {
	return &model.Transaction{
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     time.Now().AddDate(0, 0, -daysAgo),
	}
}
