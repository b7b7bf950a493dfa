package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ewhitmore/habitkit/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Backup, ctx.Store.Path())
	backupPath, err := mgr.CreateBackup(bg)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Backup, ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	info, err := ctx.Backup.GetInfo(bg)
	if err != nil {
		return err
	}
	fmt.Printf("Last backup:  %s\n", backup.FormatBackupDate(info.LastBackupTime))
	fmt.Printf("Last restore: %s\n\n", backup.FormatBackupDate(info.LastRestoreTime))

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Backup, ctx.Store.Path())

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your habits and profile with the backup.")
		fmt.Println("A backup of your current state will be created before restoring.")
		fmt.Printf("\nRestore from: %s\n", filepath.Base(backupPath))
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := mgr.RestoreBackup(bg, backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Backup restored successfully!")
	return nil
}

type BackupExportCmd struct {
	Output string `short:"o" help:"Output file path." type:"path"`
}

func (c *BackupExportCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = fmt.Sprintf("habit-tracker-backup-%s.json", ctx.Backup.Export(bg).Timestamp[:10])
	}

	if err := ctx.Backup.ExportToFile(bg, path); err != nil {
		return err
	}

	fmt.Printf("✓ Exported snapshot to %s\n", path)
	return nil
}

type BackupImportCmd struct {
	File string `arg:"" help:"Snapshot file to import." type:"path"`
}

func (c *BackupImportCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	if err := ctx.Backup.ImportFromFile(bg, c.File); err != nil {
		return err
	}

	fmt.Println("✓ Snapshot imported.")
	return nil
}
