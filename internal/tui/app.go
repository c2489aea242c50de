// Package tui is the terminal front end: a home screen with totals, the
// entry form and the menu listing, a course filter screen, and an about
// screen.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/flavorscape/pkg/menu"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

type screen int

const (
	screenHome screen = iota
	screenFilter
	screenAbout
)

type focus int

const (
	focusName focus = iota
	focusDescription
	focusCourse
	focusPrice
	focusList
	focusCount
)

const pulseDuration = 600 * time.Millisecond

// pulseDoneMsg ends the totals highlight started by add number seq.
type pulseDoneMsg struct{ seq int }

// courseChoices is the order the course selector cycles through.
var courseChoices = append([]types.Course{types.CourseNone}, types.Courses...)

// App is the bubbletea model for the whole program.
type App struct {
	session *menu.Session
	form    *menu.Form
	log     *zap.SugaredLogger
	keys    keyMap

	screen screen
	focus  focus

	nameInput  textinput.Model
	descInput  textinput.Model
	priceInput textinput.Model
	courseIdx  int

	snap   menu.Snapshot
	unsub  func()
	cursor int

	filter       menu.CourseFilter
	filterCursor int

	pulsing  bool
	pulseSeq int

	status    string
	statusErr bool
	width     int
}

// Option customizes an App.
type Option func(*App)

// WithLogger sets the logger for UI events.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// New returns an App on the home screen with the name field focused.
func New(session *menu.Session, validator *menu.Validator, opts ...Option) *App {
	a := &App{
		session: session,
		form:    menu.NewForm(validator),
		log:     zap.NewNop().Sugar(),
		keys:    defaultKeyMap(),
		snap: menu.Snapshot{
			Items:  session.Items(),
			Totals: session.Totals(),
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.nameInput = newInput("e.g. Tomato Soup", 60)
	a.descInput = newInput("a short description", 200)
	a.priceInput = newInput("100 or "+validator.Currency()+"100", 20)
	a.nameInput.Focus()

	a.unsub = session.Subscribe(func(s menu.Snapshot) {
		a.snap = s
		a.clampCursor()
	})
	return a
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

// Close detaches the App from its session.
func (a *App) Close() {
	if a.unsub != nil {
		a.unsub()
		a.unsub = nil
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case pulseDoneMsg:
		if m.seq == a.pulseSeq {
			a.pulsing = false
		}
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Home):
			a.goHome()
			return a, nil
		}
		switch a.screen {
		case screenFilter:
			return a.updateFilter(m)
		case screenAbout:
			return a.updateAbout(m)
		default:
			return a.updateHome(m)
		}
	}

	if a.screen == screenHome {
		return a, a.updateFocusedInput(msg)
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenFilter:
		body = a.viewFilter()
	case screenAbout:
		body = a.viewAbout()
	default:
		body = a.viewHome()
	}

	parts := []string{body}
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = statusErrStyle
		}
		parts = append(parts, "", style.Render(a.status))
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) goHome() {
	if a.screen == screenHome {
		return
	}
	a.screen = screenHome
	a.setFocus(focusName)
}

func (a *App) goTo(s screen) {
	a.screen = s
	a.blurAll()
	a.status = ""
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.snap.Items) {
		a.cursor = len(a.snap.Items) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) error {
	defer app.Close()
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}
