// Package report renders validation results for the terminal.
package report

import "charm.land/lipgloss/v2"

// Color palette — restrained, legible on dark terminals
var (
	accent  = lipgloss.Color("#8B5CF6") // Violet
	success = lipgloss.Color("#22C55E") // Green
	failure = lipgloss.Color("#F43F5E") // Rose
	warning = lipgloss.Color("#F59E0B") // Amber
	info    = lipgloss.Color("#38BDF8") // Sky
	dim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	validatorStyle = lipgloss.NewStyle().
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(failure).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(failure)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)

	suggestStyle = lipgloss.NewStyle().
			Foreground(info)

	metricStyle = lipgloss.NewStyle().
			Foreground(dim)
)
