package metrics

import "github.com/julianstephens/lifeadvance/internal/models"

// GoalSummary aggregates completion counts over a goal collection.
type GoalSummary struct {
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

func GoalStats(goals []models.Goal) GoalSummary {
	var s GoalSummary
	for _, g := range goals {
		if g.IsCompleted {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	if len(goals) > 0 {
		s.CompletionRate = float64(s.Completed) / float64(len(goals))
	}
	return s
}
