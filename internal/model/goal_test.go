package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavingGoalProgress(t *testing.T) {
	tests := []struct {
		name      string
		goal      SavingGoal
		progress  float64
		remaining int64
		completed bool
	}{
		{
			name:      "untouched goal",
			goal:      SavingGoal{TargetAmount: 5000000},
			progress:  0,
			remaining: 5000000,
		},
		{
			name:      "halfway",
			goal:      SavingGoal{TargetAmount: 1000000, SavedAmount: 500000},
			progress:  50,
			remaining: 500000,
		},
		{
			name:      "overfunded caps at 100",
			goal:      SavingGoal{TargetAmount: 100000, SavedAmount: 150000},
			progress:  100,
			remaining: 0,
			completed: true,
		},
		{
			name: "zero target never divides by zero",
			goal: SavingGoal{TargetAmount: 0, SavedAmount: 1000},
			// Completed is still true: saved >= target.
			progress:  0,
			remaining: 0,
			completed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.progress, tt.goal.Progress(), 0.001)
			assert.Equal(t, tt.remaining, tt.goal.Remaining())
			assert.Equal(t, tt.completed, tt.goal.Completed())
		})
	}
}
