package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings used in handleKey.
type KeyMap struct {
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	NextTask      key.Binding
	PrevTask      key.Binding
	Start         key.Binding
	Pause         key.Binding
	Stop          key.Binding
	NewRoutine    key.Binding
	ToggleEdit    key.Binding
	RenameRoutine key.Binding
	DeleteRoutine key.Binding
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Up:            key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "Nav")),
		Down:          key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "Nav")),
		NextTask:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Task")),
		PrevTask:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-Tab", "Task")),
		Start:         key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("Enter", "Start")),
		Pause:         key.NewBinding(key.WithKeys(" "), key.WithHelp("Space", "Pause")),
		Stop:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Stop")),
		NewRoutine:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New")),
		ToggleEdit:    key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "Edit")),
		RenameRoutine: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Rename")),
		DeleteRoutine: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "Del routine")),
		AddTask:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Add task")),
		EditTask:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Edit task")),
		DeleteTask:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Del task")),
	}
}
