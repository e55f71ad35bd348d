package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/structviz/internal/step"
)

var (
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	White   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// tokenStyles maps highlight tokens to display styles. Unhighlighted
// positions render plain.
var tokenStyles = map[step.Token]lipgloss.Style{
	step.TokenCompare: Yellow,
	step.TokenSwap:    Red,
	step.TokenMove:    Magenta,
	step.TokenInsert:  Green,
	step.TokenVisit:   Cyan,
	step.TokenDone:    Green,
}

// StyleFor resolves a highlight token to its display style.
func StyleFor(t step.Token) lipgloss.Style {
	if s, ok := tokenStyles[t]; ok {
		return s
	}
	return White
}
