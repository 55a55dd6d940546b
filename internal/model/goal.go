package model

import "time"

// SavingGoal is a savings target the user funds over time.
type SavingGoal struct {
	CreatedAt    time.Time
	Deadline     *time.Time
	ID           string
	Name         string
	Emoji        string
	TargetAmount int64
	SavedAmount  int64
}

// Completed reports whether the saved amount has reached the target.
func (g *SavingGoal) Completed() bool {
	return g.SavedAmount >= g.TargetAmount
}

// Progress returns the funded share as a percentage, capped at 100.
func (g *SavingGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := float64(g.SavedAmount) / float64(g.TargetAmount) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Remaining returns the amount still needed, floored at zero.
func (g *SavingGoal) Remaining() int64 {
	remaining := g.TargetAmount - g.SavedAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}
