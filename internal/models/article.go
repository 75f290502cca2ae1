package models

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

type Category string

const (
	CategoryProductivity  Category = "productivity"
	CategoryMindfulness   Category = "mindfulness"
	CategoryCreativity    Category = "creativity"
	CategoryLeadership    Category = "leadership"
	CategoryCommunication Category = "communication"
	CategoryWellness      Category = "wellness"
)

var Categories = []Category{
	CategoryProductivity,
	CategoryMindfulness,
	CategoryCreativity,
	CategoryLeadership,
	CategoryCommunication,
	CategoryWellness,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.Invalidf("unknown category %q", s)
	}
	return c, nil
}

// LearningArticle is a short piece of reading material in the learning hub.
type LearningArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Content     string    `json:"content"`
	ReadingTime int       `json:"reading_time"` // minutes
	IsRead      bool      `json:"is_read"`
	DateAdded   time.Time `json:"date_added"`
}

func (a LearningArticle) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.Invalidf("article title must not be empty")
	}
	if !a.Category.Valid() {
		return errors.Invalidf("unknown category %q", a.Category)
	}
	if a.ReadingTime <= 0 {
		return errors.Invalidf("reading time must be positive, got %d", a.ReadingTime)
	}
	return nil
}
