package models

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

var SkillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// ParseSkillLevel parses a case-insensitive skill level name.
func ParseSkillLevel(s string) (SkillLevel, error) {
	l := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", errors.Invalidf("unknown skill level %q", s)
	}
	return l, nil
}

// HobbyEntry is one journal session for a hobby. HobbyName is a free-text
// grouping key compared by exact string equality.
type HobbyEntry struct {
	ID           string     `json:"id"`
	HobbyName    string     `json:"hobby_name"`
	Date         time.Time  `json:"date"`
	Duration     int        `json:"duration"` // minutes
	Notes        string     `json:"notes"`
	SkillLevel   SkillLevel `json:"skill_level"`
	Achievements []string   `json:"achievements"`
}

func (e HobbyEntry) Validate() error {
	if strings.TrimSpace(e.HobbyName) == "" {
		return errors.Invalidf("hobby name must not be empty")
	}
	if e.Duration <= 0 {
		return errors.Invalidf("duration must be positive, got %d", e.Duration)
	}
	if !e.SkillLevel.Valid() {
		return errors.Invalidf("unknown skill level %q", e.SkillLevel)
	}
	return nil
}
