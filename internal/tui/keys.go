package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit   key.Binding
	Home   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Remove key.Binding
	Filter key.Binding
	About  key.Binding
	Toggle key.Binding

	Starters key.Binding
	Mains    key.Binding
	Dessert  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Home:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add dish")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev course")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next course")),
		Remove:   key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "remove")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		About:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Starters: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "starters")),
		Mains:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "mains")),
		Dessert:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "dessert")),
	}
}

// helpLine renders bindings as a single footer line.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
