package utils

import (
	"os/exec"
	"runtime"
)

// KillEditors attempts to terminate running VS Code-family editor processes
// so their state.vscdb is not locked while we modify it. Best effort; a
// process that is not running is not an error.
func KillEditors() {
	switch runtime.GOOS {
	case "windows":
		for _, image := range []string{"Code.exe", "Code - Insiders.exe", "VSCodium.exe", "code-oss.exe"} {
			exec.Command("taskkill", "/F", "/IM", image).Run()
		}
	default:
		for _, name := range []string{"code", "code-insiders", "codium", "code-oss"} {
			exec.Command("pkill", "-f", name).Run()
		}
	}
}
