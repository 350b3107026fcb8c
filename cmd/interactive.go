package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const (
	menuClean  = "Clean Databases"
	menuModify = "Modify Telemetry IDs"
	menuAll    = "Run Everything"
	menuList   = "List Installations"
	menuExit   = "Exit"
)

func runInteractiveMenu() {
	for {
		clearScreen()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("   AUGMENT VIP - VS Code Maintenance")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()

		prompt := promptui.Select{
			Label: "Main Menu",
			Items: []string{menuClean, menuModify, menuAll, menuList, menuExit},
			Templates: &promptui.SelectTemplates{
				Active:   "-> {{ . | cyan }}",
				Inactive: "   {{ . }}",
				Selected: "-> {{ . | cyan }}",
			},
			HideSelected: true,
			Stdout:       &BellSkipper{},
		}

		_, result, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				os.Exit(0)
			}
			return
		}

		switch result {
		case menuClean:
			runMenuCommand(cleanCmd)
		case menuModify:
			runMenuCommand(modifyIDsCmd)
		case menuAll:
			runMenuCommand(allCmd)
		case menuList:
			runMenuCommand(listCmd)
		case menuExit:
			os.Exit(0)
		}
	}
}

// runMenuCommand invokes a subcommand's RunE directly; the commands print
// their own diagnostics, so the error is only used to keep the menu alive.
func runMenuCommand(cmd *cobra.Command) {
	fmt.Println()
	_ = cmd.RunE(cmd, nil)
	waitForEnter("\nPress Enter to return to the menu...")
}

func waitForEnter(msg string) {
	fmt.Print(msg)
	fmt.Scanln()
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}

// BellSkipper implements an io.WriteCloser that filters out the bell
// character (\a), which promptui emits on every navigation step and which is
// audible on Windows terminals.
type BellSkipper struct{}

func (bs *BellSkipper) Write(b []byte) (int, error) {
	const bell = 7 // ASCII \a
	var filtered []byte
	for _, c := range b {
		if c != bell {
			filtered = append(filtered, c)
		}
	}
	// Report len(b) to satisfy the io.Writer contract even when bells were dropped.
	_, err := os.Stdout.Write(filtered)
	return len(b), err
}

func (bs *BellSkipper) Close() error {
	return nil
}
