package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adproof/adproof/pkg/rules"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for hard failures.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCode = lipgloss.NewStyle().Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Issue & Score Display
// =============================================================================

// printIssue prints a single rule violation with severity coloring.
func printIssue(issue rules.Issue) {
	icon := styleIconWarning.Render(iconWarning)
	sev := StyleWarning.Render("warn")
	if issue.Severity == rules.SeverityHard {
		icon = styleIconError.Render(iconError)
		sev = StyleError.Render("hard")
	}
	fmt.Printf("%s %s %s %s\n", icon, sev, styleCode.Render(issue.Code), issue.Message)
	if issue.FixSuggestion != "" {
		printDetail("fix: %s", issue.FixSuggestion)
	}
}

// printIssues prints a list of violations, hard failures first.
func printIssues(issues []rules.Issue) {
	for _, issue := range issues {
		if issue.Severity == rules.SeverityHard {
			printIssue(issue)
		}
	}
	for _, issue := range issues {
		if issue.Severity != rules.SeverityHard {
			printIssue(issue)
		}
	}
}

// printScore prints a compliance score with a color band: green at 80+,
// amber at 50+, red below.
func printScore(score int) {
	style := StyleError
	switch {
	case score >= 80:
		style = StyleSuccess
	case score >= 50:
		style = StyleWarning
	}
	bar := strings.Repeat("█", score/5) + strings.Repeat("░", 20-score/5)
	fmt.Printf("  %s %s\n", style.Render(bar), style.Render(fmt.Sprintf("%d/100", score)))
}

// printSummary prints the hard/warn counts on one line.
func printSummary(hard, warn int) {
	parts := []string{}
	if hard > 0 {
		parts = append(parts, StyleError.Render(fmt.Sprintf("%d hard", hard)))
	}
	if warn > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d warn", warn)))
	}
	if len(parts) == 0 {
		parts = append(parts, StyleSuccess.Render("no issues"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}
