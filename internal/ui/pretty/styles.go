// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Good    lipgloss.Style

	// Score bands
	ScoreExcellent lipgloss.Style
	ScoreGood      lipgloss.Style
	ScoreFair      lipgloss.Style
	ScorePoor      lipgloss.Style

	// Report components
	URL      lipgloss.Style
	Category lipgloss.Style
	Message  lipgloss.Style
	Tip      lipgloss.Style
	Probe    lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		ScoreExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		ScoreGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ScoreFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		ScorePoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		URL:      lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Message:  lipgloss.NewStyle(),
		Tip:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		Probe:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Good:           plain,
		ScoreExcellent: plain,
		ScoreGood:      plain,
		ScoreFair:      plain,
		ScorePoor:      plain,
		URL:            plain,
		Category:       plain,
		Message:        plain,
		Tip:            plain,
		Probe:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// ScoreStyle picks the style band for a 0-100 score: 90+ excellent,
// 70+ good, 50+ fair, below that poor.
func (s *Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 90:
		return s.ScoreExcellent
	case score >= 70:
		return s.ScoreGood
	case score >= 50:
		return s.ScoreFair
	default:
		return s.ScorePoor
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
