package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle     = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	draftStyle      = lipgloss.NewStyle().Italic(true).Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	mdHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mdStrongStyle  = lipgloss.NewStyle().Bold(true)
	mdEmphStyle    = lipgloss.NewStyle().Italic(true)
	mdCodeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mdQuoteStyle   = lipgloss.NewStyle().Faint(true)
)
