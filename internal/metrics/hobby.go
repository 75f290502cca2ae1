package metrics

import (
	"sort"

	"github.com/julianstephens/lifeadvance/internal/models"
)

// HobbyTotalDuration sums the minutes of every entry logged under hobbyName.
func HobbyTotalDuration(entries []models.HobbyEntry, hobbyName string) int {
	total := 0
	for _, e := range entries {
		if e.HobbyName == hobbyName {
			total += e.Duration
		}
	}
	return total
}

// UniqueHobbyNames returns the distinct hobby names in ascending order.
func UniqueHobbyNames(entries []models.HobbyEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.HobbyName]; ok {
			continue
		}
		seen[e.HobbyName] = struct{}{}
		names = append(names, e.HobbyName)
	}
	sort.Strings(names)
	return names
}

// EntriesForHobby returns the entries logged under hobbyName, most recent first.
func EntriesForHobby(entries []models.HobbyEntry, hobbyName string) []models.HobbyEntry {
	matched := make([]models.HobbyEntry, 0)
	for _, e := range entries {
		if e.HobbyName == hobbyName {
			matched = append(matched, e)
		}
	}
	sortNewestFirst(matched)
	return matched
}

// EntriesNewestFirst returns a copy of entries ordered by date descending.
func EntriesNewestFirst(entries []models.HobbyEntry) []models.HobbyEntry {
	sorted := make([]models.HobbyEntry, len(entries))
	copy(sorted, entries)
	sortNewestFirst(sorted)
	return sorted
}

func sortNewestFirst(entries []models.HobbyEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
