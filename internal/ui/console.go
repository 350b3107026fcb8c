// Package ui provides the labeled, colored console output used by every
// command. Colors degrade to plain text automatically when stdout is not a
// terminal.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	infoLabel    = color.New(color.FgBlue).Sprint("[INFO]")
	successLabel = color.New(color.FgGreen).Sprint("[SUCCESS]")
	warningLabel = color.New(color.FgYellow).Sprint("[WARNING]")
	errorLabel   = color.New(color.FgRed).Sprint("[ERROR]")
)

func Info(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", infoLabel, fmt.Sprintf(format, a...))
}

func Success(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", successLabel, fmt.Sprintf(format, a...))
}

func Warning(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", warningLabel, fmt.Sprintf(format, a...))
}

func Error(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", errorLabel, fmt.Sprintf(format, a...))
}
