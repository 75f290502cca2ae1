package metrics

import "github.com/julianstephens/lifeadvance/internal/models"

type ArticleSummary struct {
	Read   int `json:"read"`
	Unread int `json:"unread"`
}

// FilterArticlesByCategory keeps input order. A nil category matches everything.
func FilterArticlesByCategory(articles []models.LearningArticle, category *models.Category) []models.LearningArticle {
	filtered := make([]models.LearningArticle, 0, len(articles))
	for _, a := range articles {
		if category == nil || a.Category == *category {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func ArticleReadStats(articles []models.LearningArticle) ArticleSummary {
	var s ArticleSummary
	for _, a := range articles {
		if a.IsRead {
			s.Read++
		} else {
			s.Unread++
		}
	}
	return s
}

// TotalReadingTime sums reading minutes, optionally only over unread articles.
func TotalReadingTime(articles []models.LearningArticle, onlyUnread bool) int {
	total := 0
	for _, a := range articles {
		if onlyUnread && a.IsRead {
			continue
		}
		total += a.ReadingTime
	}
	return total
}
