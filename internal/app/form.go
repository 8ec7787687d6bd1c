package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/jwulff/routines/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// formKind identifies which mutation a form submits.
type formKind int

const (
	formNewRoutine formKind = iota
	formRenameRoutine
	formAddTask
	formEditTask
)

// form is an inline prompt of one or more text fields.
type form struct {
	kind    formKind
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int
	routine int
	task    int
}

func newForm(kind formKind, title string, labels ...string) *form {
	f := &form{kind: kind, title: title, labels: labels}
	for _, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l
		ti.CharLimit = 128
		ti.Width = 30
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].Focus()
	return f
}

// withValues pre-fills the fields in order.
func (f *form) withValues(values ...string) *form {
	for i, v := range values {
		if i < len(f.inputs) {
			f.inputs[i].SetValue(v)
			f.inputs[i].CursorEnd()
		}
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

// last reports whether the focused field is the final one.
func (f *form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	parts := []string{ui.PromptStyle.Render(f.title + ":")}
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			parts = append(parts, ui.SelectedStyle.Render(label)+" "+in.View())
		} else {
			parts = append(parts, ui.DimStyle.Render(label+" "+in.Value()))
		}
	}
	parts = append(parts, ui.DimStyle.Render("(enter ok, esc cancel)"))
	return strings.Join(parts, "  ")
}
