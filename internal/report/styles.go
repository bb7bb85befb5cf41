package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// TableHeader styles the header row of the case table.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Pass styles PASS indicators.
	Pass lipgloss.Style

	// Fail styles FAIL indicators.
	Fail lipgloss.Style

	// SummaryLabel styles summary line labels.
	SummaryLabel lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		SummaryLabel: lipgloss.NewStyle().Bold(true).Width(16),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// StatusStyle returns the style for a pass/fail status cell.
func (s Styles) StatusStyle(pass bool) lipgloss.Style {
	if pass {
		return s.Pass
	}
	return s.Fail
}
