package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/flavorscape/pkg/menu"
)

const aboutText = `FlavorScape helps a chef put together a menu for the evening.

Add dishes on the home screen with a name, a short description, a course
and a whole-number price. The totals at the top show how many dishes are on
the menu and the average price of each course.

The filter screen shows one course at a time. Nothing is saved when the
program exits.`

func (a *App) updateAbout(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Filter) {
		a.goTo(screenFilter)
	}
	return a, nil
}

func (a *App) viewAbout() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("About FlavorScape"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("version " + menu.Version))
	b.WriteString("\n\n")
	b.WriteString(aboutText)
	b.WriteString("\n\n")
	b.WriteString(helpLine(a.keys.Filter, a.keys.Home, a.keys.Quit))
	return b.String()
}
