package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pyvalid/pkg/validator"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printStats prints run statistics on a single line.
func printStats(w io.Writer, parts ...string) {
	line := make([]string, len(parts))
	for i, p := range parts {
		line[i] = styleDim.Render(p)
	}
	fmt.Fprintln(w, "  "+strings.Join(line, styleDim.Render(" · ")))
}

// printSummary prints the outcome of a validation run.
func printSummary(w io.Writer, res *validator.Result, output string) {
	valid := styleNumber.Render(fmt.Sprint(len(res.Valid)))
	if len(res.Valid) == 0 && res.Checked > 0 {
		printWarning(w, "No valid packages among %d candidates", res.Checked)
	} else {
		printSuccess(w, "%s of %d packages valid", valid, res.Checked)
	}
	printStats(w,
		fmt.Sprintf("%d rejected", res.Rejected),
		res.Duration.Round(time.Millisecond).String(),
	)
	printFile(w, output)
}

// PrintError prints a fatal error for the user. It is used by main.
func PrintError(w io.Writer, msg string) {
	printError(w, "%s", msg)
}
