package cmd

import (
	"path/filepath"

	"augment-vip/internal/installation"
	"augment-vip/internal/storage"
	"augment-vip/internal/ui"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean VS Code databases by removing Augment-related entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := resolveTarget()
		if err != nil {
			return err
		}
		if err := runClean(inst); err != nil {
			ui.Error("Database cleaning failed: %v", err)
			return err
		}
		ui.Success("Database cleaning completed successfully")
		return nil
	},
}

func runClean(inst *installation.Installation) error {
	if !inst.StateDBExists {
		ui.Warning("No state database at %s, nothing to clean", inst.StateDBPath)
		return nil
	}

	backupPath, err := storage.Backup(inst.StateDBPath)
	if err != nil {
		return err
	}
	ui.Success("Created backup at: %s", backupPath)

	removed, err := storage.CleanDatabase(inst.StateDBPath)
	if err != nil {
		return err
	}
	if removed > 0 {
		ui.Info("Removed %d entries from '%s'", removed, filepath.Base(inst.StateDBPath))
	} else {
		ui.Info("No Augment entries found in '%s'", filepath.Base(inst.StateDBPath))
	}
	return nil
}
