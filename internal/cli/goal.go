package cli

import (
	"strings"

	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/tracker"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a new goal."`
	List   GoalListCmd   `cmd:"" help:"List goals."`
	Toggle GoalToggleCmd `cmd:"" help:"Mark a goal completed or pending."`
	Edit   GoalEditCmd   `cmd:"" help:"Edit an existing goal."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

func resolveGoal(t *tracker.Tracker, ref string) (models.Goal, error) {
	goals := t.Goals.All()
	id, err := resolveID("goal", idsOf(goals, func(g models.Goal) string { return g.ID }), ref)
	if err != nil {
		return models.Goal{}, err
	}
	goal, _ := t.Goals.Get(id)
	return goal, nil
}

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Description string `short:"d" help:"Longer description."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goal, err := t.Goals.Add(c.Title, c.Description, priority)
	if err != nil {
		return err
	}
	ctx.printf("Added goal: %s (%s)\n", goal.Title, shortID(goal.ID))
	return nil
}

type GoalListCmd struct {
	Pending   bool `help:"Show only pending goals." xor:"status"`
	Completed bool `help:"Show only completed goals." xor:"status"`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goals := t.Goals.All()
	if len(goals) == 0 {
		ctx.println("No goals yet. Add one with 'lifeadvance goal add'.")
		return nil
	}

	ctx.println(headerStyle.Render("Goals"))
	for _, g := range goals {
		if (c.Pending && g.IsCompleted) || (c.Completed && !g.IsCompleted) {
			continue
		}
		ctx.printf("  %s %s  %s  %s\n", checkbox(g.IsCompleted), mutedStyle.Render(shortID(g.ID)), g.Title, renderPriority(g.Priority))
		if g.Description != "" {
			ctx.printf("      %s\n", mutedStyle.Render(g.Description))
		}
	}

	stats := t.Goals.Stats()
	ctx.printf("\n%d completed, %d pending (%.0f%%)\n", stats.Completed, stats.Pending, stats.CompletionRate*100)
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal ID or unique prefix."`
}

func (c *GoalToggleCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	goal, err := resolveGoal(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Goals.ToggleCompletion(goal.ID); err != nil {
		return err
	}

	updated, _ := t.Goals.Get(goal.ID)
	if updated.IsCompleted {
		ctx.printf("%s Completed: %s\n", doneStyle.Render("✓"), updated.Title)
	} else {
		ctx.printf("Reopened: %s\n", updated.Title)
	}
	return nil
}

type GoalEditCmd struct {
	ID          string  `arg:"" help:"Goal ID or unique prefix."`
	Title       *string `help:"New title."`
	Description *string `short:"d" help:"New description."`
	Priority    *string `short:"p" help:"New priority (low|medium|high)."`
}

func (c *GoalEditCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	goal, err := resolveGoal(t, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		goal.Title = strings.TrimSpace(*c.Title)
	}
	if c.Description != nil {
		goal.Description = *c.Description
	}
	if c.Priority != nil {
		priority, err := models.ParsePriority(*c.Priority)
		if err != nil {
			return err
		}
		goal.Priority = priority
	}

	if err := t.Goals.Update(goal); err != nil {
		return err
	}
	ctx.printf("Updated goal: %s\n", goal.Title)
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID or unique prefix."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	goal, err := resolveGoal(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Goals.Delete(goal.ID); err != nil {
		return err
	}
	ctx.printf("Deleted goal: %s\n", goal.Title)
	return nil
}
