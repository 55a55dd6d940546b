package model

import "time"

// streakDayFormat is the calendar-day key used to compare activity days.
const streakDayFormat = "2006-01-02"

// Streak tracks consecutive days with at least one recorded transaction.
type Streak struct {
	LastDate string // yyyy-MM-dd of the most recent recorded day
	Count    int
	Longest  int
}

// Record advances the streak for the given day. A day adjacent to the
// previous recorded day extends the streak; any gap restarts it at 1.
// Recording the same day twice is a no-op. It reports whether the
// streak changed.
func (s *Streak) Record(today time.Time) bool {
	day := today.Format(streakDayFormat)
	if s.LastDate == day {
		return false
	}

	yesterday := today.AddDate(0, 0, -1).Format(streakDayFormat)
	if s.LastDate == yesterday {
		s.Count++
	} else {
		s.Count = 1
	}
	if s.Count > s.Longest {
		s.Longest = s.Count
	}
	s.LastDate = day
	return true
}

// StreakMilestone is a named tier the streak widget celebrates.
type StreakMilestone struct {
	Emoji string
	Label string
	Days  int
}

var streakMilestones = []StreakMilestone{
	{Days: 100, Emoji: "💎", Label: "Legenda"},
	{Days: 30, Emoji: "🏆", Label: "Konsisten"},
	{Days: 7, Emoji: "🔥", Label: "On Fire"},
	{Days: 3, Emoji: "⭐", Label: "Semangat"},
}

// Milestone returns the highest tier the current streak has reached,
// or nil below the first tier.
func (s *Streak) Milestone() *StreakMilestone {
	for i := range streakMilestones {
		if s.Count >= streakMilestones[i].Days {
			return &streakMilestones[i]
		}
	}
	return nil
}
