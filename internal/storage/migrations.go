package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 6

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS profile (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL DEFAULT '',
					university TEXT NOT NULL DEFAULT '',
					avatar_emoji TEXT NOT NULL DEFAULT '😊'
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					category TEXT NOT NULL,
					amount INTEGER NOT NULL,
					note TEXT,
					date DATETIME NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category)`,

				`CREATE TABLE IF NOT EXISTS fixed_expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					amount INTEGER NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add transaction type, drop fixed expenses",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE transactions ADD COLUMN type TEXT NOT NULL DEFAULT 'expense'`,
				`CREATE INDEX idx_transactions_type ON transactions(type)`,
				`DROP TABLE IF EXISTS fixed_expenses`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add saving goals",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS saving_goals (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					emoji TEXT NOT NULL DEFAULT '🎯',
					target_amount INTEGER NOT NULL,
					saved_amount INTEGER NOT NULL DEFAULT 0,
					deadline DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
	{
		Version:     4,
		Description: "Add wallets",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS wallets (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					icon TEXT NOT NULL DEFAULT 'cash',
					color TEXT NOT NULL DEFAULT '#10b981',
					is_default INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`ALTER TABLE transactions ADD COLUMN wallet_id TEXT REFERENCES wallets(id)`,
				`CREATE INDEX idx_transactions_wallet ON transactions(wallet_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     5,
		Description: "Reconcile duplicate wallets and seed the default",
		Up:          reconcileWallets,
	},
	{
		Version:     6,
		Description: "Add streak tracking",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS streaks (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					count INTEGER NOT NULL DEFAULT 0,
					longest INTEGER NOT NULL DEFAULT 0,
					last_date TEXT NOT NULL DEFAULT ''
				)
			`)
			return err
		},
	},
}

// reconcileWallets is a one-shot cleanup for databases that
// accumulated duplicate wallets: earlier builds re-seeded defaults on
// every start. Wallets are grouped case-insensitively by name, the
// earliest of each group wins, transactions are repointed to the
// survivor, and a default wallet is seeded if none remains.
func reconcileWallets(tx *sql.Tx) error {
	rows, err := tx.Query(`SELECT id, name, is_default FROM wallets ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("failed to list wallets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type walletRow struct {
		id        string
		name      string
		isDefault bool
	}

	keepers := make(map[string]walletRow) // lowercased name -> surviving wallet
	var duplicates []walletRow
	hasDefault := false
	for rows.Next() {
		var w walletRow
		if err := rows.Scan(&w.id, &w.name, &w.isDefault); err != nil {
			return fmt.Errorf("failed to scan wallet: %w", err)
		}

		key := strings.ToLower(strings.TrimSpace(w.name))
		if _, ok := keepers[key]; ok {
			duplicates = append(duplicates, w)
			continue
		}
		keepers[key] = w
		if w.isDefault {
			hasDefault = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating wallets: %w", err)
	}

	for _, dup := range duplicates {
		keeper := keepers[strings.ToLower(strings.TrimSpace(dup.name))]
		if _, err := tx.Exec(`UPDATE transactions SET wallet_id = ? WHERE wallet_id = ?`, keeper.id, dup.id); err != nil {
			return fmt.Errorf("failed to repoint transactions from wallet %s: %w", dup.id, err)
		}
		if _, err := tx.Exec(`DELETE FROM wallets WHERE id = ?`, dup.id); err != nil {
			return fmt.Errorf("failed to delete duplicate wallet %s: %w", dup.id, err)
		}
		// A deleted duplicate may have carried the default flag.
		if dup.isDefault && !keeper.isDefault {
			if _, err := tx.Exec(`UPDATE wallets SET is_default = 1 WHERE id = ?`, keeper.id); err != nil {
				return fmt.Errorf("failed to move default flag to wallet %s: %w", keeper.id, err)
			}
			keeper.isDefault = true
			keepers[strings.ToLower(strings.TrimSpace(keeper.name))] = keeper
			hasDefault = true
		}
	}

	if len(keepers) == 0 {
		// Fresh database: seed the standard cash wallet.
		_, err := tx.Exec(
			`INSERT INTO wallets (id, name, icon, color, is_default, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
			uuid.New().String(), "Tunai", "cash", "#10b981", time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to seed default wallet: %w", err)
		}
		return nil
	}

	if !hasDefault {
		// Promote the earliest surviving wallet.
		var firstID string
		err := tx.QueryRow(`SELECT id FROM wallets ORDER BY created_at, id LIMIT 1`).Scan(&firstID)
		if err != nil {
			return fmt.Errorf("failed to find wallet to promote: %w", err)
		}
		if _, err := tx.Exec(`UPDATE wallets SET is_default = 1 WHERE id = ?`, firstID); err != nil {
			return fmt.Errorf("failed to promote default wallet: %w", err)
		}
	}

	return nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Get current version
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	// Apply migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		// Update version
		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion reports the database's current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
