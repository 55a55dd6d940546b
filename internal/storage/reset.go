package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Reset wipes all user data and re-seeds the default wallet, returning
// the database to its first-run state. The schema version is untouched.
func (s *SQLiteStorage) Reset(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"transactions", "saving_goals", "wallets", "profile", "streaks"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (id, name, icon, color, is_default, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
		uuid.New().String(), "Tunai", "cash", "#10b981", time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed default wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("reset all user data")
	return nil
}
