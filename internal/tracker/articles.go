package tracker

import (
	"strings"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/metrics"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/storage"
)

// Articles manages the learning hub. An empty store loads the built-in set.
type Articles struct {
	c    *collection[models.LearningArticle]
	opts Options
}

// NewArticles creates an empty article manager backed by provider.
func NewArticles(provider storage.Provider, opts Options) *Articles {
	return &Articles{
		c:    newCollection(provider, constants.KeyArticles, func(a models.LearningArticle) string { return a.ID }, nil),
		opts: opts.withDefaults(),
	}
}

// Load reads the stored articles. When none are stored (or they cannot be
// decoded) the six built-in articles are used instead; they are only written
// back by the next mutation.
func (m *Articles) Load() {
	m.c.load(func() []models.LearningArticle {
		return models.DefaultArticles(m.opts.Now())
	})
}

func (m *Articles) OnChange(fn func()) { m.c.subscribe(fn) }

func (m *Articles) All() []models.LearningArticle                { return m.c.all() }
func (m *Articles) Get(id string) (models.LearningArticle, bool) { return m.c.get(id) }

// Filter returns the articles in category, or all of them when category is nil.
func (m *Articles) Filter(category *models.Category) []models.LearningArticle {
	return metrics.FilterArticlesByCategory(m.c.all(), category)
}

// Stats counts read and unread articles.
func (m *Articles) Stats() metrics.ArticleSummary {
	return metrics.ArticleReadStats(m.c.all())
}

// Add validates and appends an unread article.
func (m *Articles) Add(title string, category models.Category, content string, readingTime int) (models.LearningArticle, error) {
	article := models.LearningArticle{
		ID:          m.opts.NewID(),
		Title:       strings.TrimSpace(title),
		Category:    category,
		Content:     content,
		ReadingTime: readingTime,
		IsRead:      false,
		DateAdded:   m.opts.Now(),
	}
	if err := article.Validate(); err != nil {
		return models.LearningArticle{}, err
	}
	return article, m.c.add(article)
}

// Update replaces the stored article with the same ID.
func (m *Articles) Update(article models.LearningArticle) error {
	if err := article.Validate(); err != nil {
		return err
	}
	return m.c.mutate(article.ID, func(models.LearningArticle) (models.LearningArticle, error) {
		return article, nil
	})
}

// ToggleRead flips the read flag only.
func (m *Articles) ToggleRead(id string) error {
	return m.c.mutate(id, func(a models.LearningArticle) (models.LearningArticle, error) {
		a.IsRead = !a.IsRead
		return a, nil
	})
}

// Delete removes every article with id.
func (m *Articles) Delete(id string) error {
	return m.c.remove(id)
}
