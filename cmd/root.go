package cmd

import (
	"errors"
	"os"

	"augment-vip/internal/installation"
	"augment-vip/internal/ui"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "augment-vip",
	Short: "Augment VIP - tools for managing VS Code settings",
	Long: `Augment VIP locates the local VS Code installation (or one of its
variants) and cleans Augment-related data: it removes Augment entries from the
state database and regenerates the telemetry IDs in storage.json, backing up
both files first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			runInteractiveMenu()
		}
	},
}

func Execute() {
	// Disable the "This is a command line tool" check to allow the menu on double-click
	cobra.MousetrapHelpText = ""
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(modifyIDsCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(listCmd)
}

// resolveTarget finds the installation the mutation commands operate on. A
// failed search prints its full diagnostics before returning, so RunE
// callers just propagate the error for the exit code.
func resolveTarget() (*installation.Installation, error) {
	inst, err := installation.New().Resolve()
	if err != nil {
		var notFound *installation.NotFoundError
		if errors.As(err, &notFound) {
			ui.Error("No VS Code installation found. Checked the following locations:")
			for _, path := range notFound.Checked {
				ui.Error("  - %s", path)
			}
		} else {
			ui.Error("%v", err)
		}
		return nil, err
	}
	ui.Info("Found %s installation at: %s", inst.Name, inst.Path)
	return inst, nil
}
