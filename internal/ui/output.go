package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	out io.Writer = colorable.NewColorableStdout()

	colorize = isatty.IsTerminal(os.Stdout.Fd())

	green  = ansi.ColorFunc("green")
	red    = ansi.ColorFunc("red")
	yellow = ansi.ColorFunc("yellow")
	cyan   = ansi.ColorFunc("cyan")
)

func paint(fn func(string) string, s string) string {
	if !colorize {
		return s
	}
	return fn(s)
}

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Fprintf(out, "%s %s\n", paint(green, "✓"), message)
}

// Error prints an error message
func Error(message string) {
	fmt.Fprintf(out, "%s %s\n", paint(red, "✗"), message)
}

// Info prints an info message
func Info(message string) {
	fmt.Fprintf(out, "%s %s\n", paint(cyan, "ℹ"), message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Fprintf(out, "%s %s\n", paint(yellow, "⚠"), message)
}

// PrintEnvsList prints environment names, marking the active one
func PrintEnvsList(names []string, active string) {
	if len(names) == 0 {
		fmt.Fprintln(out, "No environments yet.")
		fmt.Fprintln(out, "\nCreate your first one with: autovenv create <name>")
		return
	}

	fmt.Fprintln(out, "\nEnvironments:")
	fmt.Fprintln(out)

	for _, name := range names {
		indicator := " "
		if name == active && active != "" {
			indicator = "→"
		}
		fmt.Fprintf(out, "%s %s\n", indicator, name)
	}
	fmt.Fprintln(out)
}

// BindingRow is one line of the bindings table
type BindingRow struct {
	Location string
	EnvName  string
	Exists   bool // Whether the bound location still exists on disk
}

// PrintBindingsList prints the location → environment table
func PrintBindingsList(rows []BindingRow) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No bindings configured.")
		fmt.Fprintln(out, "\nBind a directory with: autovenv bind <name> --path <dir>")
		return
	}

	fmt.Fprintln(out, "\nBindings:")
	fmt.Fprintln(out)

	for _, row := range rows {
		status := paint(green, "✓")
		if !row.Exists {
			status = paint(red, "✗")
		}
		fmt.Fprintf(out, "  %s %-40s → %s\n", status, row.Location, row.EnvName)
	}
	fmt.Fprintln(out)
}
