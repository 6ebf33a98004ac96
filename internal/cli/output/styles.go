package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the CLI.
type Styles struct {
	Header1 lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Cipher  lipgloss.Style
}

// NewStyles builds styles for a lipgloss renderer. An ASCII-profile renderer
// yields plain text.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")),
		Cipher:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).TabWidth(lipgloss.NoTabConversion),
	}
}
