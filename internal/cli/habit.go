package cli

import (
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/tracker"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's status."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark or unmark a habit done today."`
	Show   HabitShowCmd   `cmd:"" help:"Show streak and completion details for a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

func resolveHabit(t *tracker.Tracker, ref string) (models.Habit, error) {
	habits := t.Habits.All()
	id, err := resolveID("habit", idsOf(habits, func(h models.Habit) string { return h.ID }), ref)
	if err != nil {
		return models.Habit{}, err
	}
	habit, _ := t.Habits.Get(id)
	return habit, nil
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Longer description."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|custom)." default:"daily"`
	Target      int    `short:"t" help:"Target days per week (1-7)." default:"7"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	frequency, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := t.Habits.Add(c.Name, c.Description, frequency, c.Target)
	if err != nil {
		return err
	}
	ctx.printf("Added habit: %s (%s)\n", habit.Name, shortID(habit.ID))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	summaries := t.Habits.Summaries(ctx.now())
	if len(summaries) == 0 {
		ctx.println("No habits yet. Add one with 'lifeadvance habit add'.")
		return nil
	}

	ctx.println(headerStyle.Render("Habits"))
	done := 0
	for _, s := range summaries {
		if s.CompletedToday {
			done++
		}
		ctx.printf("  %s %s  %s  %s\n",
			checkbox(s.CompletedToday),
			mutedStyle.Render(shortID(s.Habit.ID)),
			s.Habit.Name,
			mutedStyle.Render(formatStreak(s.Streak)))
	}
	ctx.printf("\n%d of %d done today\n", done, len(summaries))
	return nil
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day streak"
	}
	return fmt.Sprintf("%d day streak", days)
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID or unique prefix."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	habit, err := resolveHabit(t, c.ID)
	if err != nil {
		return err
	}

	now := ctx.now()
	if err := t.Habits.ToggleCompletionToday(habit.ID, now); err != nil {
		return err
	}

	s, _ := t.Habits.Summary(habit.ID, now)
	if s.CompletedToday {
		ctx.printf("%s %s done today (%s)\n", doneStyle.Render("✓"), habit.Name, formatStreak(s.Streak))
	} else {
		ctx.printf("Unmarked %s for today\n", habit.Name)
	}
	return nil
}

type HabitShowCmd struct {
	ID string `arg:"" help:"Habit ID or unique prefix."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	habit, err := resolveHabit(t, c.ID)
	if err != nil {
		return err
	}

	s, _ := t.Habits.Summary(habit.ID, ctx.now())
	ctx.println(headerStyle.Render(habit.Name))
	if habit.Description != "" {
		ctx.println(habit.Description)
	}
	ctx.printf("ID:                %s\n", habit.ID)
	ctx.printf("Frequency:         %s (target %d days/week)\n", habit.Frequency, habit.TargetDaysPerWeek)
	ctx.printf("Created:           %s\n", ctx.formatDate(habit.CreatedAt))
	ctx.printf("Done today:        %t\n", s.CompletedToday)
	ctx.printf("Current streak:    %d\n", s.Streak)
	ctx.printf("Completion rate:   %.0f%% (last %d days)\n", s.CompletionRate*100, t.Options().WindowDays)
	ctx.printf("Total completions: %d\n", s.TotalCompletions)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID or unique prefix."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	habit, err := resolveHabit(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Habits.Delete(habit.ID); err != nil {
		return err
	}
	ctx.printf("Deleted habit: %s\n", habit.Name)
	return nil
}
