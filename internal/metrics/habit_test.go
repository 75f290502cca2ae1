package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeadvance/internal/models"
)

// today is 2024-06-10 mid-morning UTC
var today = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 6, 10+offset, 0, 0, 0, 0, time.UTC)
}

func habitWith(dates ...time.Time) models.Habit {
	return models.Habit{
		ID:                "h1",
		Name:              "Meditate",
		Frequency:         models.FrequencyDaily,
		CreatedAt:         day(0),
		CompletionDates:   dates,
		TargetDaysPerWeek: 7,
	}
}

func TestHabitCompletedToday(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
		want  bool
	}{
		{name: "no completions", habit: habitWith(), want: false},
		{name: "completed today", habit: habitWith(day(-3), day(0)), want: true},
		{name: "completed yesterday only", habit: habitWith(day(-1)), want: false},
		{name: "completed later the same day", habit: habitWith(day(0).Add(22 * time.Hour)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HabitCompletedToday(tt.habit, today, time.UTC))
		})
	}
}

func TestHabitCompletedTodayUsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 20:00 UTC on June 9 is already June 10 in Tokyo
	h := habitWith(time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC))

	assert.False(t, HabitCompletedToday(h, today, time.UTC))
	assert.True(t, HabitCompletedToday(h, today, tokyo))
}

func TestHabitCompletionRate(t *testing.T) {
	t.Run("single completion today uses fixed denominator", func(t *testing.T) {
		rate := HabitCompletionRate(habitWith(day(0)), 30, today, time.UTC)
		assert.InDelta(t, 1.0/30.0, rate, 1e-9)
	})

	t.Run("two completions on a two day old habit", func(t *testing.T) {
		rate := HabitCompletionRate(habitWith(day(-1), day(0)), DefaultWindowDays, today, time.UTC)
		assert.InDelta(t, 2.0/30.0, rate, 1e-9)
	})

	t.Run("completions before the window are ignored", func(t *testing.T) {
		rate := HabitCompletionRate(habitWith(day(-45), day(-31), day(-2)), 30, today, time.UTC)
		assert.InDelta(t, 1.0/30.0, rate, 1e-9)
	})

	t.Run("short window", func(t *testing.T) {
		rate := HabitCompletionRate(habitWith(day(-6), day(-3), day(-1), day(0)), 7, today, time.UTC)
		assert.InDelta(t, 4.0/7.0, rate, 1e-9)
	})

	t.Run("empty habit", func(t *testing.T) {
		assert.Zero(t, HabitCompletionRate(habitWith(), 30, today, time.UTC))
	})

	t.Run("non-positive window", func(t *testing.T) {
		assert.Zero(t, HabitCompletionRate(habitWith(day(0)), 0, today, time.UTC))
		assert.Zero(t, HabitCompletionRate(habitWith(day(0)), -5, today, time.UTC))
	})

	t.Run("never exceeds one", func(t *testing.T) {
		// Future-dated completions still satisfy the cutoff
		h := habitWith(day(0), day(1), day(2))
		assert.Equal(t, 1.0, HabitCompletionRate(h, 2, today, time.UTC))
	})
}

func TestHabitStreak(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
		want  int
	}{
		{name: "empty", habit: habitWith(), want: 0},
		{name: "three consecutive days", habit: habitWith(day(0), day(-1), day(-2)), want: 3},
		{name: "gap does not extend streak", habit: habitWith(day(0), day(-1), day(-2), day(-4)), want: 3},
		{name: "today missing", habit: habitWith(day(-1), day(-2), day(-3)), want: 0},
		{name: "unordered input", habit: habitWith(day(-2), day(0), day(-1)), want: 3},
		{name: "duplicate day counts once", habit: habitWith(day(0), day(0).Add(5*time.Hour), day(-1)), want: 2},
		{name: "future completion ignored", habit: habitWith(day(2), day(0)), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HabitStreak(tt.habit, today, time.UTC))
		})
	}
}

func TestHabitStreakAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2024, 3, 11, 12, 0, 0, 0, ny)
	h := habitWith(
		time.Date(2024, 3, 11, 0, 0, 0, 0, ny),
		time.Date(2024, 3, 10, 0, 0, 0, 0, ny),
		time.Date(2024, 3, 9, 0, 0, 0, 0, ny),
	)

	assert.Equal(t, 3, HabitStreak(h, now, ny))
}

func TestHabitTotalCompletions(t *testing.T) {
	assert.Equal(t, 0, HabitTotalCompletions(habitWith(), time.UTC))
	assert.Equal(t, 2, HabitTotalCompletions(habitWith(day(0), day(0).Add(time.Hour), day(-5)), time.UTC))
}
