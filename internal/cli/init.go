package cli

import (
	"github.com/julianstephens/lifeadvance/internal/config"
	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/logger"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())
	if err := ctx.writeConfig(); err != nil {
		return err
	}

	t := ctx.newTracker()
	ctx.tracker = t
	if t.HasCompletedOnboarding() {
		return nil
	}

	ctx.println()
	ctx.println(headerStyle.Render("Welcome to LifeAdvance"))
	ctx.println("Track goals, build habits, learn something new and log your hobbies.")
	ctx.println()
	ctx.println("  lifeadvance goal add \"Run a 5k\" -p high")
	ctx.println("  lifeadvance habit add \"Meditate\" -t 5")
	ctx.println("  lifeadvance article list")
	ctx.println("  lifeadvance hobby add Guitar -d 30")
	ctx.println("  lifeadvance stats")
	return t.CompleteOnboarding()
}

// writeConfig saves the settings in effect when no config file exists yet.
// The memory backend is never written out.
func (ctx *Context) writeConfig() error {
	if ctx.ConfigPath == "" || ctx.Config == nil || ctx.Config.Backend == constants.BackendMemory {
		return nil
	}
	exists, err := config.Exists(ctx.ConfigPath)
	if err != nil || exists {
		return err
	}

	cfg := *ctx.Config
	cfg.Debug = false
	if err := config.Save(ctx.ConfigPath, &cfg); err != nil {
		return err
	}
	logger.Info("Wrote config file", "path", ctx.ConfigPath)
	ctx.printf("Wrote config to: %s\n", ctx.ConfigPath)
	return nil
}

type ResetCmd struct {
	Yes        bool `short:"y" help:"Skip the confirmation prompt."`
	Onboarding bool `help:"Only reset the welcome screen, keep all data."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if c.Onboarding {
		if err := t.ResetOnboarding(); err != nil {
			return err
		}
		ctx.println("The welcome screen will be shown on the next 'lifeadvance init'.")
		return nil
	}

	if !c.Yes {
		ctx.println(errorStyle.Render("WARNING: this deletes all goals, habits, articles and hobby sessions."))
		ok, err := ctx.confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Reset cancelled.")
			return nil
		}
	}

	if err := t.ResetAll(); err != nil {
		return err
	}
	ctx.println("All data has been reset.")
	return nil
}
