package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

func (a *App) updateFilter(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Starters):
		a.toggleCourse(types.CourseStarters)
	case key.Matches(m, a.keys.Mains):
		a.toggleCourse(types.CourseMains)
	case key.Matches(m, a.keys.Dessert):
		a.toggleCourse(types.CourseDessert)
	case key.Matches(m, a.keys.Left), key.Matches(m, a.keys.Up):
		a.filterCursor = (a.filterCursor + len(types.Courses) - 1) % len(types.Courses)
	case key.Matches(m, a.keys.Right), key.Matches(m, a.keys.Down):
		a.filterCursor = (a.filterCursor + 1) % len(types.Courses)
	case key.Matches(m, a.keys.Toggle):
		a.toggleCourse(types.Courses[a.filterCursor])
	case key.Matches(m, a.keys.About):
		a.goTo(screenAbout)
	}
	return a, nil
}

func (a *App) toggleCourse(c types.Course) {
	a.filter.Toggle(c)
	for i, course := range types.Courses {
		if course == c {
			a.filterCursor = i
		}
	}
}

func (a *App) viewFilter() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Filter by course"))
	b.WriteString("\n\n")

	toggles := make([]string, 0, len(types.Courses))
	for i, c := range types.Courses {
		label := fmt.Sprintf("%d %s", i+1, c)
		style := toggleOffStyle
		switch {
		case a.filter.Active(c):
			style = toggleOnStyle
		case i == a.filterCursor:
			style = toggleCursorStyle
		}
		toggles = append(toggles, style.Render(label))
	}
	b.WriteString(strings.Join(toggles, " "))
	b.WriteString("\n\n")

	selected := a.filter.Selected()
	if selected == types.CourseNone {
		b.WriteString(descStyle.Render("Pick a course to see its dishes."))
	} else {
		b.WriteString(a.viewCourseItems(selected))
	}
	b.WriteString("\n\n")
	b.WriteString(helpLine(a.keys.Starters, a.keys.Mains, a.keys.Dessert, a.keys.Toggle, a.keys.About, a.keys.Home, a.keys.Quit))
	return b.String()
}

func (a *App) viewCourseItems(c types.Course) string {
	items, err := a.session.ItemsByCourse(c)
	if err != nil {
		return statusErrStyle.Render(fmt.Sprintf("Could not load %s: %v", c, err))
	}

	header := sectionStyle.Render(c.String())
	if len(items) == 0 {
		return header + "\n" + descStyle.Render("No dishes in this course.")
	}
	currency := a.form.Currency()
	rows := []string{header}
	for _, it := range items {
		rows = append(rows,
			rowStyle.Render(fmt.Sprintf("%s - %s%d", it.Name, currency, it.Price)),
			descStyle.Render(it.Description))
	}
	return strings.Join(rows, "\n")
}
