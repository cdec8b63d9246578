package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vmxmy/invoiceview/internal/api"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	SelectionBg   string
	SelectionText string

	StatusColors map[string]string
}

// DefaultTheme is a dark palette in the k9s tradition.
func DefaultTheme() Theme {
	return Theme{
		Name:    "slate",
		Text:    "#c8d3f5",
		Muted:   "#828bb8",
		Faint:   "#444a73",
		Accent:  "#82aaff",
		Success: "#c3e88d",
		Warning: "#ffc777",
		Danger:  "#ff757f",
		Info:    "#86e1fc",

		SelectionBg:   "#2f334d",
		SelectionText: "#ffffff",

		StatusColors: map[string]string{
			api.StatusUnreimbursed: "#ffc777",
			api.StatusSubmitted:    "#86e1fc",
			api.StatusReimbursed:   "#c3e88d",
			api.StatusVoided:       "#444a73",
		},
	}
}

// PaperTheme is a light palette for bright terminals.
func PaperTheme() Theme {
	return Theme{
		Name:    "paper",
		Text:    "#2e3440",
		Muted:   "#6b7089",
		Faint:   "#c2c7d6",
		Accent:  "#3b6ea8",
		Success: "#4f894c",
		Warning: "#ac4426",
		Danger:  "#a54242",
		Info:    "#2d737f",

		SelectionBg:   "#d8dee9",
		SelectionText: "#1b1f2a",

		StatusColors: map[string]string{
			api.StatusUnreimbursed: "#ac4426",
			api.StatusSubmitted:    "#2d737f",
			api.StatusReimbursed:   "#4f894c",
			api.StatusVoided:       "#c2c7d6",
		},
	}
}

// ThemeByName resolves a preference string to a theme, defaulting to the
// dark palette for unknown names.
func ThemeByName(name string) Theme {
	if name == "paper" {
		return PaperTheme()
	}
	return DefaultTheme()
}

// NextTheme cycles to the other palette, for the runtime theme toggle.
func NextTheme(current Theme) Theme {
	if current.Name == "paper" {
		return DefaultTheme()
	}
	return PaperTheme()
}

// Styles holds the pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Selected lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
}

// Styles builds lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// StatusStyle returns the style for an invoice status badge.
func (t Theme) StatusStyle(status string) lipgloss.Style {
	if color, ok := t.StatusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
}
