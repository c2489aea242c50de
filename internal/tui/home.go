package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flavorscape/pkg/menu"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

func (a *App) updateHome(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Next):
		return a, a.setFocus((a.focus + 1) % focusCount)
	case key.Matches(m, a.keys.Prev):
		return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
	}

	if a.focus == focusList {
		return a.updateList(m)
	}

	switch {
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case a.focus == focusCourse && key.Matches(m, a.keys.Left):
		a.courseIdx = (a.courseIdx + len(courseChoices) - 1) % len(courseChoices)
		return a, nil
	case a.focus == focusCourse && key.Matches(m, a.keys.Right):
		a.courseIdx = (a.courseIdx + 1) % len(courseChoices)
		return a, nil
	}
	return a, a.updateFocusedInput(m)
}

func (a *App) updateList(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.snap.Items)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Remove):
		a.removeSelected()
	case key.Matches(m, a.keys.Filter):
		a.goTo(screenFilter)
	case key.Matches(m, a.keys.About):
		a.goTo(screenAbout)
	}
	return a, nil
}

// updateFocusedInput forwards msg to the text field that has focus.
func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := a.focusedInput()
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (a *App) focusedInput() *textinput.Model {
	switch a.focus {
	case focusName:
		return &a.nameInput
	case focusDescription:
		return &a.descInput
	case focusPrice:
		return &a.priceInput
	}
	return nil
}

func (a *App) setFocus(f focus) tea.Cmd {
	a.blurAll()
	a.focus = f
	if in := a.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (a *App) blurAll() {
	a.nameInput.Blur()
	a.descInput.Blur()
	a.priceInput.Blur()
}

// submit copies the inputs into the form and submits it to the session. On
// success the inputs are cleared and the totals pulse.
func (a *App) submit() tea.Cmd {
	a.form.Name = a.nameInput.Value()
	a.form.Description = a.descInput.Value()
	a.form.Course = courseChoices[a.courseIdx]
	a.form.Price = a.priceInput.Value()

	item, err := a.form.Submit(a.session)
	if err != nil {
		var verrs menu.ValidationErrors
		if errors.As(err, &verrs) {
			a.setStatus("", false)
			a.log.Debugw("form rejected", "fields", len(verrs))
			return nil
		}
		a.setStatus(fmt.Sprintf("Could not add dish: %v", err), true)
		return nil
	}

	a.nameInput.Reset()
	a.descInput.Reset()
	a.priceInput.Reset()
	a.courseIdx = 0
	a.setStatus(fmt.Sprintf("Added %s to %s.", item.Name, item.Course), false)

	a.pulseSeq++
	a.pulsing = true
	seq := a.pulseSeq
	return tea.Batch(a.setFocus(focusName), tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseDoneMsg{seq: seq}
	}))
}

func (a *App) removeSelected() {
	if len(a.snap.Items) == 0 {
		return
	}
	item := a.snap.Items[a.cursor]
	if err := a.session.Remove(item.ID); err != nil {
		a.setStatus(fmt.Sprintf("Could not remove %s: %v", item.Name, err), true)
		return
	}
	a.setStatus(fmt.Sprintf("Removed %s.", item.Name), false)
}

func (a *App) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FlavorScape"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Welcome, Chef! Build tonight's menu below."))
	b.WriteString("\n\n")
	b.WriteString(a.viewTotals())
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Add a dish"))
	b.WriteString("\n")
	b.WriteString(a.viewForm())
	b.WriteString(sectionStyle.Render("Menu"))
	b.WriteString("\n")
	b.WriteString(a.viewList())
	b.WriteString("\n\n")

	if a.focus == focusList {
		b.WriteString(helpLine(a.keys.Up, a.keys.Down, a.keys.Remove, a.keys.Filter, a.keys.About, a.keys.Next, a.keys.Quit))
	} else {
		b.WriteString(helpLine(a.keys.Submit, a.keys.Next, a.keys.Prev, a.keys.Quit))
	}
	return b.String()
}

func (a *App) viewTotals() string {
	t := a.snap.Totals
	currency := a.form.Currency()
	lines := []string{fmt.Sprintf("Total Menu Items: %d", t.TotalItems)}
	for _, c := range types.Courses {
		label := menu.NotAvailable
		if avg, ok := t.AveragePrice(c); ok {
			label = currency + avg
		}
		lines = append(lines, fmt.Sprintf("%s Avg Price: %s", c, label))
	}

	style := totalsStyle
	if a.pulsing {
		style = totalsPulseStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (a *App) viewForm() string {
	var b strings.Builder
	row := func(f focus, field menu.Field, label, value string) {
		ls := labelStyle
		if a.focus == f {
			ls = focusLabelStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, ls.Render(label), value))
		b.WriteString("\n")
		if msg := a.form.ErrorFor(field); msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	row(focusName, menu.FieldName, "Dish name", a.nameInput.View())
	row(focusDescription, menu.FieldDescription, "Description", a.descInput.View())
	row(focusCourse, menu.FieldCourse, "Course", a.viewCourseSelector())
	row(focusPrice, menu.FieldPrice, "Price", a.priceInput.View())
	return b.String()
}

func (a *App) viewCourseSelector() string {
	c := courseChoices[a.courseIdx]
	label := c.String()
	if c == types.CourseNone {
		label = "Select a course"
	}
	return courseValueStyle.Render("< " + label + " >")
}

func (a *App) viewList() string {
	if len(a.snap.Items) == 0 {
		return descStyle.Render("No dishes yet.")
	}
	currency := a.form.Currency()
	rows := make([]string, 0, len(a.snap.Items))
	for i, it := range a.snap.Items {
		line := courseStyle.Render(it.Course.String()) + fmt.Sprintf("%s - %s%d", it.Name, currency, it.Price)
		if a.focus == focusList && i == a.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = rowStyle.Render(line)
		}
		rows = append(rows, line, descStyle.Render(it.Description))
	}
	return strings.Join(rows, "\n")
}
