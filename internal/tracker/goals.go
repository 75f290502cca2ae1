package tracker

import (
	"strings"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/metrics"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/storage"
)

// Goals manages the goal list.
type Goals struct {
	c    *collection[models.Goal]
	opts Options
}

// NewGoals creates an empty goal manager backed by provider.
func NewGoals(provider storage.Provider, opts Options) *Goals {
	return &Goals{
		c:    newCollection(provider, constants.KeyGoals, func(g models.Goal) string { return g.ID }, cloneGoal),
		opts: opts.withDefaults(),
	}
}

func cloneGoal(g models.Goal) models.Goal {
	if g.CompletedAt != nil {
		t := *g.CompletedAt
		g.CompletedAt = &t
	}
	return g
}

// Load replaces the goals with the stored list.
func (m *Goals) Load()              { m.c.load(nil) }
func (m *Goals) OnChange(fn func()) { m.c.subscribe(fn) }

func (m *Goals) All() []models.Goal                { return m.c.all() }
func (m *Goals) Get(id string) (models.Goal, bool) { return m.c.get(id) }
func (m *Goals) Stats() metrics.GoalSummary        { return metrics.GoalStats(m.c.all()) }

// Add validates and appends a new pending goal.
func (m *Goals) Add(title, description string, priority models.Priority) (models.Goal, error) {
	goal := models.Goal{
		ID:          m.opts.NewID(),
		Title:       strings.TrimSpace(title),
		Description: description,
		CreatedAt:   m.opts.Now(),
		Priority:    priority,
	}
	if err := goal.Validate(); err != nil {
		return models.Goal{}, err
	}
	return goal, m.c.add(goal)
}

// Update replaces the stored goal with the same ID. The creation time of the
// stored goal is kept.
func (m *Goals) Update(goal models.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}
	return m.c.mutate(goal.ID, func(current models.Goal) (models.Goal, error) {
		goal.CreatedAt = current.CreatedAt
		return cloneGoal(goal), nil
	})
}

// ToggleCompletion flips the completion flag, stamping or clearing CompletedAt.
func (m *Goals) ToggleCompletion(id string) error {
	return m.c.mutate(id, func(g models.Goal) (models.Goal, error) {
		g.IsCompleted = !g.IsCompleted
		if g.IsCompleted {
			now := m.opts.Now()
			g.CompletedAt = &now
		} else {
			g.CompletedAt = nil
		}
		return g, nil
	})
}

// Delete removes every goal with id.
func (m *Goals) Delete(id string) error {
	return m.c.remove(id)
}
