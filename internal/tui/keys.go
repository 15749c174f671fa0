package tui

import "charm.land/bubbles/v2/key"

// keyMap holds every binding of the session.
type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Nav       key.Binding
	Help      key.Binding

	// navigation mode
	Entry     key.Binding
	List      key.Binding
	Analytics key.Binding
	Clear     key.Binding

	// quick entry
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding

	// run list
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Export key.Binding

	// analytics
	Copy    key.Binding
	Refresh key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Nav:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "navigate")),
		Help:      key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),

		Entry:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "entry")),
		List:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "runs")),
		Analytics: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "analytics")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear form")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Export: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),

		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// bindings returns the short help line for a screen.
func (k keyMap) bindings(s screen, navigating bool) []key.Binding {
	if navigating {
		b := []key.Binding{k.Entry, k.List, k.Analytics, k.Help, k.Quit}
		if s == screenEntry {
			b = append(b, k.Clear)
		}
		return b
	}

	switch s {
	case screenEntry:
		return []key.Binding{k.Next, k.Submit, k.Nav, k.ForceQuit}
	case screenList:
		return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Filter, k.Export, k.Nav, k.Quit}
	case screenAnalytics:
		return []key.Binding{k.Copy, k.Refresh, k.Nav, k.Help, k.Quit}
	default:
		return []key.Binding{k.Help, k.Nav, k.Quit}
	}
}
