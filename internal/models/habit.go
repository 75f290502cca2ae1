package models

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyCustom}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// ParseFrequency parses a case-insensitive frequency name.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", errors.Invalidf("unknown frequency %q (expected daily, weekly or custom)", s)
	}
	return f, nil
}

// Habit represents a recurring practice to track
type Habit struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Frequency         Frequency   `json:"frequency"`
	CreatedAt         time.Time   `json:"created_at"`
	CompletionDates   []time.Time `json:"completion_dates"` // start of day, at most one per calendar day
	TargetDaysPerWeek int         `json:"target_days_per_week"`
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.Invalidf("habit name must not be empty")
	}
	if !h.Frequency.Valid() {
		return errors.Invalidf("unknown frequency %q", h.Frequency)
	}
	if h.TargetDaysPerWeek < 1 || h.TargetDaysPerWeek > 7 {
		return errors.Invalidf("target days per week must be between 1 and 7, got %d", h.TargetDaysPerWeek)
	}
	return nil
}
