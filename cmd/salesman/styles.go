// Terminal styling for the salesman CLI. Colors degrade gracefully on dumb
// terminals (lipgloss detects the profile); tests read the plain text.
package main

import "github.com/charmbracelet/lipgloss"

// Salesman palette — warm road-trip ambers over slate.
var (
	colorAmber   = lipgloss.Color("#F4A524") // headlines, the final answer
	colorGreen   = lipgloss.Color("#3FB950") // new-minimum events
	colorSlate   = lipgloss.Color("#6E7B8B") // muted diagnostics
	colorScarlet = lipgloss.Color("#E74C3C") // errors
)

// Styles used across the command output.
var styles = struct {
	Title  lipgloss.Style
	NewMin lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
	NewMin: lipgloss.NewStyle().Foreground(colorGreen),
	Muted:  lipgloss.NewStyle().Foreground(colorSlate),
	Error:  lipgloss.NewStyle().Foreground(colorScarlet),
}
