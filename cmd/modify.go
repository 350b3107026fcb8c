package cmd

import (
	"augment-vip/internal/installation"
	"augment-vip/internal/storage"
	"augment-vip/internal/ui"

	"github.com/spf13/cobra"
)

var modifyIDsCmd = &cobra.Command{
	Use:   "modify-ids",
	Short: "Regenerate the VS Code telemetry IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := resolveTarget()
		if err != nil {
			return err
		}
		if err := runModifyIDs(inst); err != nil {
			ui.Error("Telemetry ID modification failed: %v", err)
			return err
		}
		ui.Success("Telemetry ID modification completed successfully")
		return nil
	},
}

func runModifyIDs(inst *installation.Installation) error {
	if !inst.StorageJSONExists {
		ui.Warning("No storage file at %s, nothing to modify", inst.StorageJSONPath)
		return nil
	}

	backupPath, err := storage.Backup(inst.StorageJSONPath)
	if err != nil {
		return err
	}
	ui.Success("Created backup at: %s", backupPath)

	changes, err := storage.ModifyTelemetryIDs(inst.StorageJSONPath)
	if err != nil {
		return err
	}
	for _, change := range changes {
		ui.Info("%s", change.Key)
		if change.Old != "" {
			ui.Info("  old: %s", change.Old)
		}
		ui.Info("  new: %s", change.New)
	}
	return nil
}
