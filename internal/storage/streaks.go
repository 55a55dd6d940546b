package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sakumate/saku/internal/model"
)

// GetStreak returns the activity streak. A database with no recorded
// activity yields a zero streak.
func (s *SQLiteStorage) GetStreak(ctx context.Context) (*model.Streak, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT count, longest, last_date FROM streaks WHERE id = 1`

	var streak model.Streak
	err := s.db.QueryRowContext(ctx, query).Scan(&streak.Count, &streak.Longest, &streak.LastDate)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.Streak{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query streak: %w", err)
	}

	return &streak, nil
}

// RecordActivity advances the streak for today and persists it. It
// returns the updated streak; calling it again on the same day is a
// no-op.
func (s *SQLiteStorage) RecordActivity(ctx context.Context) (*model.Streak, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	streak, err := s.GetStreak(ctx)
	if err != nil {
		return nil, err
	}

	if !streak.Record(time.Now()) {
		return streak, nil
	}

	query := `
		INSERT INTO streaks (id, count, longest, last_date)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET count = excluded.count, longest = excluded.longest, last_date = excluded.last_date`

	if _, err := s.db.ExecContext(ctx, query, streak.Count, streak.Longest, streak.LastDate); err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}

	slog.Debug("recorded activity", "count", streak.Count, "longest", streak.Longest)
	return streak, nil
}
