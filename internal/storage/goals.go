package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/model"
)

// CreateGoal inserts a saving goal. New goals always start with
// nothing saved.
func (s *SQLiteStorage) CreateGoal(ctx context.Context, goal *model.SavingGoal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	goal.SavedAmount = 0

	var deadline any
	if goal.Deadline != nil {
		deadline = *goal.Deadline
	}

	query := `
		INSERT INTO saving_goals (id, name, emoji, target_amount, saved_amount, deadline, created_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		goal.ID, goal.Name, goal.Emoji, goal.TargetAmount, deadline, goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("created saving goal", "id", goal.ID, "name", goal.Name, "target", goal.TargetAmount)
	return nil
}

// GetGoals returns all saving goals, oldest first.
func (s *SQLiteStorage) GetGoals(ctx context.Context) ([]model.SavingGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, emoji, target_amount, saved_amount, deadline, created_at
		FROM saving_goals
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.SavingGoal
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// GetGoalByID returns a saving goal by its id.
func (s *SQLiteStorage) GetGoalByID(ctx context.Context, id string) (*model.SavingGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, emoji, target_amount, saved_amount, deadline, created_at
		FROM saving_goals
		WHERE id = ?`

	goal, err := scanGoal(s.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateGoal rewrites a goal's name, emoji, target, and deadline. The
// saved amount only moves through AddToGoal.
func (s *SQLiteStorage) UpdateGoal(ctx context.Context, goal *model.SavingGoal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}
	if err := validateString(goal.ID, "goal.ID"); err != nil {
		return err
	}

	var deadline any
	if goal.Deadline != nil {
		deadline = *goal.Deadline
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE saving_goals SET name = ?, emoji = ?, target_amount = ?, deadline = ? WHERE id = ?`,
		goal.Name, goal.Emoji, goal.TargetAmount, deadline, goal.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", goal.ID, common.ErrNotFound)
	}

	return nil
}

// AddToGoal adds funds to a goal's saved amount.
func (s *SQLiteStorage) AddToGoal(ctx context.Context, id string, amount int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE saving_goals SET saved_amount = saved_amount + ? WHERE id = ?`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to fund goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}

	slog.Debug("funded goal", "id", id, "amount", amount)
	return nil
}

// DeleteGoal removes a saving goal by id.
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM saving_goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", id, common.ErrNotFound)
	}

	return nil
}

func scanGoal(scan func(...any) error) (*model.SavingGoal, error) {
	var goal model.SavingGoal
	var deadline sql.NullTime
	if err := scan(&goal.ID, &goal.Name, &goal.Emoji, &goal.TargetAmount, &goal.SavedAmount, &deadline, &goal.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan goal: %w", err)
	}
	if deadline.Valid {
		goal.Deadline = &deadline.Time
	}
	return &goal, nil
}
