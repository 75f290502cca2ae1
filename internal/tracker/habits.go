package tracker

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/metrics"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/storage"
	"github.com/julianstephens/lifeadvance/internal/utils"
)

// HabitSummary is the derived view of one habit at a point in time.
type HabitSummary struct {
	Habit            models.Habit
	CompletedToday   bool
	Streak           int
	CompletionRate   float64
	TotalCompletions int
}

// Habits manages the habit list and its per-day completions.
type Habits struct {
	c    *collection[models.Habit]
	opts Options
}

// NewHabits creates an empty habit manager backed by provider.
func NewHabits(provider storage.Provider, opts Options) *Habits {
	return &Habits{
		c:    newCollection(provider, constants.KeyHabits, func(h models.Habit) string { return h.ID }, cloneHabit),
		opts: opts.withDefaults(),
	}
}

func cloneHabit(h models.Habit) models.Habit {
	if h.CompletionDates != nil {
		h.CompletionDates = append([]time.Time(nil), h.CompletionDates...)
	}
	return h
}

// Load replaces the habits with the stored list.
func (m *Habits) Load()              { m.c.load(nil) }
func (m *Habits) OnChange(fn func()) { m.c.subscribe(fn) }

func (m *Habits) All() []models.Habit                { return m.c.all() }
func (m *Habits) Get(id string) (models.Habit, bool) { return m.c.get(id) }

// Add validates and appends a new habit with no completions.
func (m *Habits) Add(name, description string, frequency models.Frequency, targetDaysPerWeek int) (models.Habit, error) {
	habit := models.Habit{
		ID:                m.opts.NewID(),
		Name:              strings.TrimSpace(name),
		Description:       description,
		Frequency:         frequency,
		CreatedAt:         m.opts.Now(),
		CompletionDates:   []time.Time{},
		TargetDaysPerWeek: targetDaysPerWeek,
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}
	return habit, m.c.add(habit)
}

// Update replaces the stored habit with the same ID. Completion dates are
// normalised to start of day and collapsed to one per calendar day; the
// stored creation time is kept.
func (m *Habits) Update(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}
	habit.CompletionDates = m.normalizeDates(habit.CompletionDates)
	return m.c.mutate(habit.ID, func(current models.Habit) (models.Habit, error) {
		habit.CreatedAt = current.CreatedAt
		return habit, nil
	})
}

func (m *Habits) normalizeDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		key := utils.DayKey(d, m.opts.Location)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, utils.StartOfDay(d, m.opts.Location))
	}
	return out
}

// ToggleCompletionToday removes now's calendar day from the habit's
// completions if present and adds it otherwise. Persists either way.
func (m *Habits) ToggleCompletionToday(id string, now time.Time) error {
	loc := m.opts.Location
	return m.c.mutate(id, func(h models.Habit) (models.Habit, error) {
		kept := make([]time.Time, 0, len(h.CompletionDates)+1)
		removed := false
		for _, d := range h.CompletionDates {
			if utils.SameDay(d, now, loc) {
				removed = true
				continue
			}
			kept = append(kept, d)
		}
		if !removed {
			kept = append(kept, utils.StartOfDay(now, loc))
		}
		h.CompletionDates = kept
		return h, nil
	})
}

// Delete removes every habit with id.
func (m *Habits) Delete(id string) error {
	return m.c.remove(id)
}

// Summary derives today's status, streak and rate for one habit.
func (m *Habits) Summary(id string, now time.Time) (HabitSummary, bool) {
	h, ok := m.c.get(id)
	if !ok {
		return HabitSummary{}, false
	}
	return m.summarize(h, now), true
}

// Summaries derives a HabitSummary for every habit in insertion order.
func (m *Habits) Summaries(now time.Time) []HabitSummary {
	habits := m.c.all()
	out := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		out = append(out, m.summarize(h, now))
	}
	return out
}

func (m *Habits) summarize(h models.Habit, now time.Time) HabitSummary {
	loc := m.opts.Location
	return HabitSummary{
		Habit:            h,
		CompletedToday:   metrics.HabitCompletedToday(h, now, loc),
		Streak:           metrics.HabitStreak(h, now, loc),
		CompletionRate:   metrics.HabitCompletionRate(h, m.opts.WindowDays, now, loc),
		TotalCompletions: metrics.HabitTotalCompletions(h, loc),
	}
}
