package cli

import (
	"github.com/julianstephens/lifeadvance/internal/metrics"
)

// StatsCmd prints the dashboard overview across every collection.
type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	now := ctx.now()

	goals := t.Goals.Stats()
	habits := t.Habits.Summaries(now)
	articles := t.Articles.Stats()
	entries := t.Hobbies.All()

	doneToday, bestStreak := 0, 0
	rate := 0.0
	for _, s := range habits {
		if s.CompletedToday {
			doneToday++
		}
		if s.Streak > bestStreak {
			bestStreak = s.Streak
		}
		rate += s.CompletionRate
	}
	if len(habits) > 0 {
		rate /= float64(len(habits))
	}

	hobbyMinutes := 0
	for _, name := range metrics.UniqueHobbyNames(entries) {
		hobbyMinutes += metrics.HobbyTotalDuration(entries, name)
	}

	ctx.println(headerStyle.Render("Dashboard") + "  " + mutedStyle.Render(ctx.formatDate(now)))
	ctx.println()
	ctx.printf("Goals     %d completed, %d pending (%.0f%%)\n", goals.Completed, goals.Pending, goals.CompletionRate*100)
	ctx.printf("Habits    %d of %d done today, best streak %d, avg %.0f%% over %d days\n",
		doneToday, len(habits), bestStreak, rate*100, t.Options().WindowDays)
	ctx.printf("Learning  %d read, %d unread\n", articles.Read, articles.Unread)
	ctx.printf("Hobbies   %d sessions across %d hobbies, %s total\n",
		len(entries), len(metrics.UniqueHobbyNames(entries)), formatMinutes(hobbyMinutes))
	return nil
}
