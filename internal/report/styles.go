package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for report elements
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	chartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))
)

// plainTerminal reports whether the terminal cannot render color, in which
// case styling is skipped entirely.
func plainTerminal() bool {
	return termenv.EnvColorProfile() == termenv.Ascii
}

func styled(s lipgloss.Style, text string) string {
	if plainTerminal() {
		return text
	}
	return s.Render(text)
}
