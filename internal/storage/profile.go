package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakumate/saku/internal/model"
)

// GetProfile returns the stored profile, or a zero-valued one when the
// user has not set anything up yet.
func (s *SQLiteStorage) GetProfile(ctx context.Context) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT name, university, avatar_emoji FROM profile ORDER BY id LIMIT 1`

	var p model.Profile
	err := s.db.QueryRowContext(ctx, query).Scan(&p.Name, &p.University, &p.AvatarEmoji)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.Profile{AvatarEmoji: "😊"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &p, nil
}

// SaveProfile upserts the single profile row.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM profile ORDER BY id LIMIT 1`).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO profile (name, university, avatar_emoji) VALUES (?, ?, ?)`,
			profile.Name, profile.University, profile.AvatarEmoji)
		if err != nil {
			return fmt.Errorf("failed to insert profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to query profile: %w", err)
	default:
		_, err = s.db.ExecContext(ctx,
			`UPDATE profile SET name = ?, university = ?, avatar_emoji = ? WHERE id = ?`,
			profile.Name, profile.University, profile.AvatarEmoji, id)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return nil
}
