package cmd

import (
	"augment-vip/internal/ui"
	"augment-vip/internal/utils"

	"github.com/spf13/cobra"
)

var terminateEditors bool

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run all tools (clean and modify IDs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if terminateEditors {
			ui.Info("Terminating running editors...")
			utils.KillEditors()
		}

		ui.Info("Running all tools...")
		inst, err := resolveTarget()
		if err != nil {
			return err
		}

		if err := runClean(inst); err != nil {
			ui.Error("Database cleaning failed: %v", err)
			return err
		}
		if err := runModifyIDs(inst); err != nil {
			ui.Error("Telemetry ID modification failed: %v", err)
			return err
		}

		ui.Success("All operations completed successfully")
		return nil
	},
}

func init() {
	allCmd.Flags().BoolVar(&terminateEditors, "terminate", false,
		"Terminate running editor processes before modifying their files")
}
