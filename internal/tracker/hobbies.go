package tracker

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/metrics"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/storage"
)

// HobbyJournal manages hobby entries grouped by free-text hobby name.
type HobbyJournal struct {
	c    *collection[models.HobbyEntry]
	opts Options
}

// NewHobbyJournal creates an empty journal backed by provider.
func NewHobbyJournal(provider storage.Provider, opts Options) *HobbyJournal {
	return &HobbyJournal{
		c:    newCollection(provider, constants.KeyHobbyEntries, func(e models.HobbyEntry) string { return e.ID }, cloneEntry),
		opts: opts.withDefaults(),
	}
}

func cloneEntry(e models.HobbyEntry) models.HobbyEntry {
	if e.Achievements != nil {
		e.Achievements = append([]string(nil), e.Achievements...)
	}
	return e
}

// Load replaces the entries with the stored list.
func (m *HobbyJournal) Load()              { m.c.load(nil) }
func (m *HobbyJournal) OnChange(fn func()) { m.c.subscribe(fn) }

// All returns entries in insertion order.
func (m *HobbyJournal) All() []models.HobbyEntry                { return m.c.all() }
func (m *HobbyJournal) Get(id string) (models.HobbyEntry, bool) { return m.c.get(id) }

// Add logs a session dated now.
func (m *HobbyJournal) Add(hobbyName string, duration int, notes string, level models.SkillLevel, achievements []string) (models.HobbyEntry, error) {
	return m.AddAt(m.opts.Now(), hobbyName, duration, notes, level, achievements)
}

// AddAt logs a session on an explicit date, for back-filling the journal.
func (m *HobbyJournal) AddAt(date time.Time, hobbyName string, duration int, notes string, level models.SkillLevel, achievements []string) (models.HobbyEntry, error) {
	if achievements == nil {
		achievements = []string{}
	}
	entry := models.HobbyEntry{
		ID:           m.opts.NewID(),
		HobbyName:    strings.TrimSpace(hobbyName),
		Date:         date,
		Duration:     duration,
		Notes:        notes,
		SkillLevel:   level,
		Achievements: achievements,
	}
	if err := entry.Validate(); err != nil {
		return models.HobbyEntry{}, err
	}
	return cloneEntry(entry), m.c.add(entry)
}

// Update replaces the stored entry with the same ID.
func (m *HobbyJournal) Update(entry models.HobbyEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return m.c.mutate(entry.ID, func(models.HobbyEntry) (models.HobbyEntry, error) {
		return cloneEntry(entry), nil
	})
}

// Delete removes every entry with id.
func (m *HobbyJournal) Delete(id string) error {
	return m.c.remove(id)
}

// TotalDuration sums the minutes logged for hobbyName.
func (m *HobbyJournal) TotalDuration(hobbyName string) int {
	return metrics.HobbyTotalDuration(m.c.all(), hobbyName)
}

// HobbyNames returns the distinct hobby names, sorted.
func (m *HobbyJournal) HobbyNames() []string {
	return metrics.UniqueHobbyNames(m.c.all())
}

// EntriesFor returns hobbyName's entries newest first; an empty name returns
// every entry newest first.
func (m *HobbyJournal) EntriesFor(hobbyName string) []models.HobbyEntry {
	if hobbyName == "" {
		return metrics.EntriesNewestFirst(m.c.all())
	}
	return metrics.EntriesForHobby(m.c.all(), hobbyName)
}
