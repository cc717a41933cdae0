package llmboard

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

// applyColor turns colored console output on or off for the whole process.
func applyColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
	pp.ColoringEnabled = !color.NoColor
}

func printSuccess(out io.Writer, format string, args ...any) {
	successColor.Fprintf(out, "✓ "+format+"\n", args...)
}

func printFailure(out io.Writer, err error) {
	failureColor.Fprintf(out, "✗ %v\n", err)
}

func printLabel(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", labelColor.Sprint(label), value)
}
