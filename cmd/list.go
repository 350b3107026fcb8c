package cmd

import (
	"augment-vip/internal/installation"
	"augment-vip/internal/ui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list-installations",
	Short: "List all detected VS Code installations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Info("Scanning for VS Code installations...")

		installs, err := installation.New().ResolveAll()
		if err != nil {
			ui.Error("%v", err)
			return err
		}
		if len(installs) == 0 {
			ui.Warning("No VS Code installations found")
			return nil
		}

		ui.Success("Found %d VS Code installation(s):", len(installs))
		for i, inst := range installs {
			ui.Info("")
			ui.Info("%d. %s", i+1, inst.Name)
			ui.Info("   Path: %s", inst.Path)
			ui.Info("   Pattern: %s", inst.PatternUsed)
			ui.Info("   Storage JSON: %s %s", mark(inst.StorageJSONExists), inst.StorageJSONPath)
			ui.Info("   State DB: %s %s", mark(inst.StateDBExists), inst.StateDBPath)
		}
		return nil
	},
}

func mark(exists bool) string {
	if exists {
		return "✓"
	}
	return "✗"
}
