package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/tracker"
	"github.com/julianstephens/lifeadvance/internal/utils"
)

type HobbyCmd struct {
	Add     HobbyAddCmd     `cmd:"" help:"Log a hobby session."`
	List    HobbyListCmd    `cmd:"" help:"List sessions, newest first."`
	Names   HobbyNamesCmd   `cmd:"" help:"List the hobbies you have logged."`
	Summary HobbySummaryCmd `cmd:"" help:"Show totals for one hobby."`
	Delete  HobbyDeleteCmd  `cmd:"" help:"Delete a session."`
}

func resolveEntry(t *tracker.Tracker, ref string) (models.HobbyEntry, error) {
	entries := t.Hobbies.All()
	id, err := resolveID("hobby entry", idsOf(entries, func(e models.HobbyEntry) string { return e.ID }), ref)
	if err != nil {
		return models.HobbyEntry{}, err
	}
	entry, _ := t.Hobbies.Get(id)
	return entry, nil
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

type HobbyAddCmd struct {
	Name         string   `arg:"" help:"Hobby name, e.g. Guitar."`
	Duration     int      `short:"d" help:"Session length in minutes." required:""`
	Notes        string   `short:"n" help:"Session notes."`
	Level        string   `short:"l" help:"Skill level (beginner|intermediate|advanced|expert)." default:"beginner"`
	Achievements []string `short:"a" sep:"none" help:"Achievement unlocked this session (repeatable)."`
	Date         string   `help:"Session date (YYYY-MM-DD), defaults to now."`
}

func (c *HobbyAddCmd) Run(ctx *Context) error {
	level, err := models.ParseSkillLevel(c.Level)
	if err != nil {
		return err
	}
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	var entry models.HobbyEntry
	if c.Date != "" {
		date, err := utils.ParseDateInLocation(c.Date, ctx.Location)
		if err != nil {
			return err
		}
		entry, err = t.Hobbies.AddAt(date, c.Name, c.Duration, c.Notes, level, c.Achievements)
		if err != nil {
			return err
		}
	} else {
		entry, err = t.Hobbies.Add(c.Name, c.Duration, c.Notes, level, c.Achievements)
		if err != nil {
			return err
		}
	}
	ctx.printf("Logged %s of %s (%s)\n", formatMinutes(entry.Duration), entry.HobbyName, shortID(entry.ID))
	return nil
}

type HobbyListCmd struct {
	Hobby string `help:"Only show sessions for this hobby."`
}

func (c *HobbyListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	entries := t.Hobbies.EntriesFor(c.Hobby)
	if len(entries) == 0 {
		ctx.println("No hobby sessions logged.")
		return nil
	}

	ctx.println(headerStyle.Render("Hobby Journal"))
	for _, e := range entries {
		ctx.printf("  %s  %s  %-16s %6s  %s\n",
			mutedStyle.Render(shortID(e.ID)),
			ctx.formatDate(e.Date),
			e.HobbyName,
			formatMinutes(e.Duration),
			mutedStyle.Render(string(e.SkillLevel)))
		if e.Notes != "" {
			ctx.printf("      %s\n", e.Notes)
		}
		if len(e.Achievements) > 0 {
			ctx.printf("      %s %s\n", doneStyle.Render("★"), strings.Join(e.Achievements, ", "))
		}
	}
	return nil
}

type HobbyNamesCmd struct{}

func (c *HobbyNamesCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	for _, name := range t.Hobbies.HobbyNames() {
		ctx.println(name)
	}
	return nil
}

type HobbySummaryCmd struct {
	Name string `arg:"" help:"Hobby name."`
}

func (c *HobbySummaryCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	entries := t.Hobbies.EntriesFor(c.Name)
	if len(entries) == 0 {
		return fmt.Errorf("no sessions logged for %q", c.Name)
	}

	achievements := 0
	for _, e := range entries {
		achievements += len(e.Achievements)
	}

	ctx.println(headerStyle.Render(c.Name))
	ctx.printf("Sessions:      %d\n", len(entries))
	ctx.printf("Total time:    %s\n", formatMinutes(t.Hobbies.TotalDuration(c.Name)))
	ctx.printf("Current level: %s\n", entries[0].SkillLevel)
	ctx.printf("Last session:  %s\n", ctx.formatDate(entries[0].Date))
	ctx.printf("Achievements:  %d\n", achievements)
	return nil
}

type HobbyDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *HobbyDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	entry, err := resolveEntry(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Hobbies.Delete(entry.ID); err != nil {
		return err
	}
	ctx.printf("Deleted %s session from %s\n", entry.HobbyName, ctx.formatDate(entry.Date))
	return nil
}
