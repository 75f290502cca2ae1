package models

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Invalidf("unknown priority %q (expected low, medium or high)", s)
	}
	return p, nil
}

// Goal is a one-off objective that is either pending or completed.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"` // nil unless IsCompleted
	Priority    Priority   `json:"priority"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return errors.Invalidf("goal title must not be empty")
	}
	if !g.Priority.Valid() {
		return errors.Invalidf("unknown priority %q", g.Priority)
	}
	if g.IsCompleted != (g.CompletedAt != nil) {
		return errors.Invalidf("goal completion timestamp must be set only when completed")
	}
	return nil
}
