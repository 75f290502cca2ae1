// Package metrics holds the pure derived-value functions over the tracker's
// collections. Nothing here reads the clock or mutates its input; callers
// pass "now" and the calendar location explicitly.
package metrics

import (
	"time"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/utils"
)

// DefaultWindowDays is the trailing window used by HabitCompletionRate callers.
const DefaultWindowDays = constants.DefaultCompletionWindowDays

// completionDays returns the set of calendar days with at least one completion.
func completionDays(h models.Habit, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{}, len(h.CompletionDates))
	for _, d := range h.CompletionDates {
		days[utils.DayKey(d, loc)] = struct{}{}
	}
	return days
}

// HabitCompletedToday reports whether h has a completion on now's calendar day.
func HabitCompletedToday(h models.Habit, now time.Time, loc *time.Location) bool {
	for _, d := range h.CompletionDates {
		if utils.SameDay(d, now, loc) {
			return true
		}
	}
	return false
}

// HabitCompletionRate counts completions at or after now minus windowDays and
// divides by windowDays. The denominator ignores the habit's age, so a habit
// created yesterday with one completion scores 1/windowDays.
func HabitCompletionRate(h models.Habit, windowDays int, now time.Time, loc *time.Location) float64 {
	if windowDays <= 0 {
		return 0
	}
	cutoff := utils.AddDays(now, -windowDays, loc)

	count := 0
	for _, d := range h.CompletionDates {
		if !d.Before(cutoff) {
			count++
		}
	}

	rate := float64(count) / float64(windowDays)
	if rate > 1 {
		return 1
	}
	return rate
}

// HabitStreak counts consecutive calendar days with a completion, walking back
// from today. A missing completion today means no streak.
func HabitStreak(h models.Habit, now time.Time, loc *time.Location) int {
	if len(h.CompletionDates) == 0 {
		return 0
	}
	days := completionDays(h, loc)

	streak := 0
	for cursor := utils.StartOfDay(now, loc); ; cursor = utils.AddDays(cursor, -1, loc) {
		if _, ok := days[utils.DayKey(cursor, loc)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// HabitTotalCompletions returns the number of distinct completion days.
func HabitTotalCompletions(h models.Habit, loc *time.Location) int {
	return len(completionDays(h, loc))
}
