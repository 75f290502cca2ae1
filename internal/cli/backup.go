package cli

import (
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/backup"
	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/logger"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the data file."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the data file from a backup."`
}

func (ctx *Context) backupManager() (*backup.Manager, error) {
	if ctx.Config != nil && ctx.Config.Backend == constants.BackendMemory {
		return nil, fmt.Errorf("backups are not available for the memory backend")
	}
	sqlite := ctx.Config == nil || ctx.Config.Backend != constants.BackendJSON
	return backup.NewManager(ctx.Store.GetConfigPath()).WithSQLite(sqlite), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	info, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.printf("%s Backup created: %s\n", doneStyle.Render("✓"), info.Name())
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	ctx.printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		ctx.printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Name(), sizeKB)
	}
	ctx.printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	info, err := mgr.Find(c.BackupFile)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.println(errorStyle.Render("WARNING: this will replace your current data with the backup."))
		ctx.println("A backup of your current data will be created before restoring.")
		ctx.printf("\nRestore from: %s\n", info.Name())
		ok, err := ctx.confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close storage before restore", "error", err)
	}
	ctx.tracker = nil

	saved, err := mgr.RestoreBackup(info.Path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if saved != "" {
		ctx.printf("Saved current data as: %s\n", saved)
	}
	ctx.printf("%s Data restored from %s\n", doneStyle.Render("✓"), info.Name())
	return nil
}
