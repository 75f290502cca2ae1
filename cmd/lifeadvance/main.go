package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifeadvance/internal/cli"
	"github.com/julianstephens/lifeadvance/internal/config"
	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/errors"
	"github.com/julianstephens/lifeadvance/internal/logger"
	"github.com/julianstephens/lifeadvance/internal/storage"
	"github.com/julianstephens/lifeadvance/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Data    string `help:"Data file path (overrides config)." type:"path"`
	Backend string `help:"Storage backend (sqlite|json|memory, overrides config)."`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     cli.InitCmd    `cmd:"" help:"Initialize lifeadvance storage."`
	Stats    cli.StatsCmd   `cmd:"" help:"Show the dashboard overview." default:"1"`
	Goal     cli.GoalCmd    `cmd:"" help:"Manage goals."`
	Habit    cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Article  cli.ArticleCmd `cmd:"" help:"Browse the learning hub."`
	Hobby    cli.HobbyCmd   `cmd:"" help:"Log and review hobby sessions."`
	Reset    cli.ResetCmd   `cmd:"" help:"Delete all data."`
	Backup   cli.BackupCmd  `cmd:"" help:"Manage data backups."`
	Doctor   cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	DebugCmd cli.DebugCmd   `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal self-improvement tracker for goals, habits, learning and hobbies"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Data != "" {
		cfg.DataPath = CLI.Data
	}
	if CLI.Backend != "" {
		cfg.Backend = CLI.Backend
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}

	dataPath, err := cfg.ResolvedDataPath()
	if err != nil {
		errors.Fatal(err)
	}
	logDir := filepath.Dir(dataPath)
	if cfg.Backend == constants.BackendMemory {
		logDir = os.TempDir()
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: logDir}); err != nil {
		errors.Fatal(err)
	}

	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	store, err := storage.New(cfg.Backend, dataPath)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: CLI.Config,
		Location:   loc,
	}

	logger.Debug("Running command", "command", ctx.Command(), "backend", cfg.Backend, "data", dataPath)
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
