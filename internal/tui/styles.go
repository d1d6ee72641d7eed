package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the form.
type Styles struct {
	Title        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Panel        lipgloss.Style
	Label        lipgloss.Style
	Hint         lipgloss.Style
	Advisory     lipgloss.Style
	CardTitle    lipgloss.Style
	CardValue    lipgloss.Style
	CardNegative lipgloss.Style
	RowCursor    lipgloss.Style
	TableHeader  lipgloss.Style
	SummaryRow   lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default emerald-on-neutral palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Underline(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		Label: lipgloss.NewStyle().
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		Advisory: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		CardValue: lipgloss.NewStyle().
			Bold(true),
		CardNegative: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
		RowCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		SummaryRow: lipgloss.NewStyle().
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
