package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/config"
	"github.com/sakumate/saku/internal/model"
	"github.com/sakumate/saku/internal/service"
	"github.com/sakumate/saku/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the saku database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseAmount parses a rupiah amount the way people type it: plain
// digits, or grouped with dots ("1.000.000"), optionally prefixed
// with "Rp".
func parseAmount(input string) (int64, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "Rp")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount cannot be negative: %q", input)
	}
	return amount, nil
}

// parseDate accepts yyyy-MM-dd dates.
func parseDate(input string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(input), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-mm-dd)", input)
	}
	return d, nil
}

// resolveWallet finds a wallet by id or (case-insensitive) name.
func resolveWallet(ctx context.Context, store service.Storage, ref string) (*model.Wallet, error) {
	wallets, err := store.GetWallets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range wallets {
		if wallets[i].ID == ref || strings.EqualFold(wallets[i].Name, ref) {
			return &wallets[i], nil
		}
	}
	return nil, fmt.Errorf("no wallet matches %q", ref)
}

// walletNames returns a wallet-id to name lookup for list rendering.
func walletNames(ctx context.Context, store service.Storage) (map[string]string, error) {
	wallets, err := store.GetWallets(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(wallets))
	for _, w := range wallets {
		names[w.ID] = w.Name
	}
	return names, nil
}
