package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/model"
)

// CreateWallet inserts a wallet, assigning an id and created time when
// absent. Names are unique case-insensitively; a clash returns
// common.ErrDuplicateEntry.
func (s *SQLiteStorage) CreateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWallet(wallet); err != nil {
		return err
	}

	existing, err := s.GetWallets(ctx)
	if err != nil {
		return err
	}
	for _, w := range existing {
		if strings.EqualFold(w.Name, wallet.Name) {
			return fmt.Errorf("wallet %q: %w", wallet.Name, common.ErrDuplicateEntry)
		}
	}

	if wallet.ID == "" {
		wallet.ID = uuid.New().String()
	}
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO wallets (id, name, icon, color, is_default, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		wallet.ID, wallet.Name, wallet.Icon, wallet.Color, wallet.IsDefault, wallet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	slog.Info("created wallet", "id", wallet.ID, "name", wallet.Name)
	return nil
}

// GetWallets returns all wallets, oldest first.
func (s *SQLiteStorage) GetWallets(ctx context.Context) ([]model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, icon, color, is_default, created_at
		FROM wallets
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var wallets []model.Wallet
	for rows.Next() {
		var w model.Wallet
		if err := rows.Scan(&w.ID, &w.Name, &w.Icon, &w.Color, &w.IsDefault, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallets: %w", err)
	}

	return wallets, nil
}

// GetWalletByID returns a wallet by its id.
func (s *SQLiteStorage) GetWalletByID(ctx context.Context, id string) (*model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, icon, color, is_default, created_at
		FROM wallets
		WHERE id = ?`

	var w model.Wallet
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Icon, &w.Color, &w.IsDefault, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wallet %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet: %w", err)
	}

	return &w, nil
}

// UpdateWallet updates a wallet's display fields.
func (s *SQLiteStorage) UpdateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWallet(wallet); err != nil {
		return err
	}
	if err := validateString(wallet.ID, "wallet.ID"); err != nil {
		return err
	}

	query := `UPDATE wallets SET name = ?, icon = ?, color = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, wallet.Name, wallet.Icon, wallet.Color, wallet.ID)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("wallet %s: %w", wallet.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteWallet removes a wallet and detaches its transactions, which
// become unassigned rather than disappearing with the wallet.
func (s *SQLiteStorage) DeleteWallet(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE transactions SET wallet_id = NULL WHERE wallet_id = ?`, id); err != nil {
		return fmt.Errorf("failed to detach transactions: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM wallets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("wallet %s: %w", id, common.ErrNotFound)
	}

	return tx.Commit()
}

// SetDefaultWallet makes the given wallet the default target for new
// transactions. At most one wallet carries the flag.
func (s *SQLiteStorage) SetDefaultWallet(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `UPDATE wallets SET is_default = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to set default wallet: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("wallet %s: %w", id, common.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE wallets SET is_default = 0 WHERE id != ?`, id); err != nil {
		return fmt.Errorf("failed to clear previous default: %w", err)
	}

	return tx.Commit()
}

// GetDefaultWallet returns the default wallet, or the oldest wallet
// when no default flag is set.
func (s *SQLiteStorage) GetDefaultWallet(ctx context.Context) (*model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, icon, color, is_default, created_at
		FROM wallets
		ORDER BY is_default DESC, created_at, id
		LIMIT 1`

	var w model.Wallet
	err := s.db.QueryRowContext(ctx, query).Scan(
		&w.ID, &w.Name, &w.Icon, &w.Color, &w.IsDefault, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("default wallet: %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query default wallet: %w", err)
	}

	return &w, nil
}
