package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBackground = lipgloss.Color("#333333")
	colorAccent     = lipgloss.Color("#FF6E6E")
	colorSurface    = lipgloss.Color("#424242")
	colorText       = lipgloss.Color("#F5F5F5")
	colorMuted      = lipgloss.Color("#9E9E9E")
	colorError      = lipgloss.Color("#FF5252")
	colorSuccess    = lipgloss.Color("#A6E3A1")
)

var (
	appStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(1, 2)

	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginTop(1)

	totalsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1)
	totalsPulseStyle = totalsStyle.
				BorderForeground(colorAccent).
				Background(colorSurface)

	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted).Width(13)
	focusLabelStyle  = labelStyle.Foreground(colorAccent).Bold(true)
	fieldErrorStyle  = lipgloss.NewStyle().Foreground(colorError).PaddingLeft(13)
	courseValueStyle = lipgloss.NewStyle().Foreground(colorText)

	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorSurface).
				Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(4)
	courseStyle = lipgloss.NewStyle().Foreground(colorAccent).Width(10)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorBackground).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)
	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1)
	toggleCursorStyle = toggleOffStyle.Underline(true)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	helpKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
