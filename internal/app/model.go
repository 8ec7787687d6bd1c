package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jwulff/routines/internal/playback"
	"github.com/jwulff/routines/internal/routine"
	"github.com/jwulff/routines/internal/state"
	"github.com/jwulff/routines/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is the playback resolution.
const tickInterval = time.Second

// Model is the root bubbletea model for the routines TUI.
type Model struct {
	store *state.Store
	keys  KeyMap

	// Selection
	selectedRoutine int
	selectedTask    int

	// Open prompt, nil when browsing
	form *form

	// UI state
	width  int
	height int

	// Errors
	errorMessage   string
	errorTransient bool
}

// New creates a Model over store.
func New(store *state.Store) Model {
	return Model{
		store: store,
		keys:  DefaultKeyMap(),
	}
}

// Init has nothing to fetch; the catalog is loaded before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// tickCmd schedules the next playback tick for the chain identified by token.
func tickCmd(token uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{Token: token}
	})
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.form != nil {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		// Only the live chain reschedules itself.
		if _, ok := m.store.Tick(msg.Token); ok && m.store.Ticking() {
			return m, tickCmd(msg.Token)
		}
		return m, nil

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// handleKey processes key presses while browsing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := m.store.Catalog()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedRoutine > 0 {
			m.selectedRoutine--
			m.selectedTask = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRoutine < len(catalog)-1 {
			m.selectedRoutine++
			m.selectedTask = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTask):
		if n := m.taskCount(); n > 0 {
			m.selectedTask = (m.selectedTask + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevTask):
		if n := m.taskCount(); n > 0 {
			m.selectedTask = (m.selectedTask - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if token, ok := m.store.Start(m.selectedRoutine); ok {
			return m, tickCmd(token)
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if token, ok := m.store.TogglePause(); ok && token != 0 {
			return m, tickCmd(token)
		}
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		m.store.Stop()
		return m, nil

	case key.Matches(msg, m.keys.NewRoutine):
		m.form = newForm(formNewRoutine, "New routine", "Routine Name")
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleEdit):
		m.store.ToggleEditMode()
		return m, nil
	}

	if !m.store.EditMode() || len(catalog) == 0 {
		return m, nil
	}
	current := catalog[m.selectedRoutine]

	switch {
	case key.Matches(msg, m.keys.RenameRoutine):
		m.form = newForm(formRenameRoutine, "Rename routine", "Routine Name").withValues(current.Name)
		m.form.routine = m.selectedRoutine
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DeleteRoutine):
		m.store.DeleteRoutine(m.selectedRoutine)
		m.clampSelection()
		cmd := m.noteSaveError()
		return m, cmd

	case key.Matches(msg, m.keys.AddTask):
		m.form = newForm(formAddTask, "Add task to "+current.Name, "Task Name", "Time (min)")
		m.form.routine = m.selectedRoutine
		return m, textinput.Blink

	case key.Matches(msg, m.keys.EditTask):
		if m.selectedTask >= len(current.Tasks) {
			return m, nil
		}
		task := current.Tasks[m.selectedTask]
		m.form = newForm(formEditTask, "Edit task", "Task Name", "Time (min)").
			withValues(task.Name, task.Duration.Minutes())
		m.form.routine = m.selectedRoutine
		m.form.task = m.selectedTask
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DeleteTask):
		if m.store.DeleteTask(m.selectedRoutine, m.selectedTask) {
			m.clampSelection()
			cmd := m.noteSaveError()
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleFormKey routes keys to the open prompt.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyTab:
		m.form.next()
		return m, nil
	case tea.KeyEnter:
		if !m.form.last() {
			m.form.next()
			return m, nil
		}
		return m.submitForm()
	}
	return m, m.form.update(msg)
}

// submitForm applies the prompt's mutation. A rejected add keeps the prompt
// open so the input can be fixed.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	var ok bool
	switch f.kind {
	case formNewRoutine:
		ok = m.store.AddRoutine(f.value(0))
		if ok {
			m.selectedRoutine = len(m.store.Catalog()) - 1
			m.selectedTask = 0
		}
	case formRenameRoutine:
		ok = m.store.RenameRoutine(f.routine, f.value(0))
	case formAddTask:
		ok = m.store.AddTask(f.routine, f.value(0), f.value(1))
		if ok {
			m.selectedTask = len(m.store.Catalog()[f.routine].Tasks) - 1
		}
	case formEditTask:
		ok = m.store.EditTask(f.routine, f.task, f.value(0), f.value(1))
	}

	if !ok && (f.kind == formNewRoutine || f.kind == formAddTask) {
		if f.kind == formNewRoutine {
			m.errorMessage = "routine name cannot be empty"
		} else {
			m.errorMessage = "task needs a name and a whole number of minutes"
		}
		m.errorTransient = true
		return m, clearTransientErrorCmd()
	}

	m.form = nil
	cmd := m.noteSaveError()
	return m, cmd
}

// noteSaveError surfaces a failed persistence write as a transient error.
func (m *Model) noteSaveError() tea.Cmd {
	err := m.store.LastSaveError()
	if err == nil {
		return nil
	}
	m.errorMessage = "save failed: " + err.Error()
	m.errorTransient = true
	return clearTransientErrorCmd()
}

func (m Model) taskCount() int {
	catalog := m.store.Catalog()
	if m.selectedRoutine >= len(catalog) {
		return 0
	}
	return len(catalog[m.selectedRoutine].Tasks)
}

func (m *Model) clampSelection() {
	catalog := m.store.Catalog()
	if m.selectedRoutine >= len(catalog) {
		m.selectedRoutine = max(0, len(catalog)-1)
	}
	if n := m.taskCount(); m.selectedTask >= n {
		m.selectedTask = max(0, n-1)
	}
}

func (m Model) routinePanelWidth() int {
	if m.width == 0 {
		return 40
	}
	return max(24, m.width*45/100)
}

func (m Model) timerPanelWidth() int {
	if m.width == 0 {
		return 40
	}
	return max(24, m.width-m.routinePanelWidth()-3)
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + status(1) + divider(2) + prompt(1) + error(1) + footer(1) + padding
	reserved := 8
	return max(5, m.height-reserved)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Status bar
	sections = append(sections, m.renderStatusBar())

	// Divider
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	// Main content: routines | timer
	sections = append(sections, m.renderMainContent())

	// Divider
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	// Prompt
	if m.form != nil {
		sections = append(sections, m.form.view())
	}

	// Error bar
	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	// Footer
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("ROUTINES")

	var mode string
	if m.store.EditMode() {
		mode = ui.EditBadgeStyle.Render(" [EDIT]")
	}

	count := ui.DimStyle.Render(fmt.Sprintf(" · %d saved", len(m.store.Catalog())))
	return title + mode + count
}

func (m Model) renderStatusBar() string {
	p := m.store.Playback()
	switch p.Status {
	case playback.Playing:
		return ui.PlayingDotStyle.Render("● PLAYING") + ui.DimStyle.Render("  "+p.Routine.Name)
	case playback.Paused:
		return ui.PausedDotStyle.Render("‖ PAUSED") + ui.DimStyle.Render("  "+p.Routine.Name)
	default:
		return ui.IdleDotStyle.Render("○ IDLE")
	}
}

func (m Model) renderMainContent() string {
	routineW := m.routinePanelWidth()
	timerW := m.timerPanelWidth()
	contentH := m.contentHeight()

	routineLines := strings.Split(m.renderRoutinePanel(routineW, contentH), "\n")
	timerLines := strings.Split(m.renderTimerPanel(timerW, contentH), "\n")

	divider := ui.DividerStyle.Render("│")

	var rows []string
	for i := 0; i < contentH; i++ {
		left := strings.Repeat(" ", routineW)
		if i < len(routineLines) {
			left = routineLines[i]
		}
		right := ""
		if i < len(timerLines) {
			right = timerLines[i]
		}
		rows = append(rows, left+divider+" "+right)
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderRoutinePanel(width, height int) string {
	catalog := m.store.Catalog()
	header := padRight(ui.PanelTitleStyle.Render(fmt.Sprintf("ROUTINES (%d)", len(catalog))), width)

	var body []string
	selectedLine := 0

	if len(catalog) == 0 {
		body = append(body, ui.DimStyle.Render("  No routines yet..."))
		body = append(body, ui.DimStyle.Render("  Press n to add one"))
	}

	for i, r := range catalog {
		isSelected := i == m.selectedRoutine
		if isSelected {
			selectedLine = len(body)
			body = append(body, ui.SelectedStyle.Render("> "+displayName(r.Name)))
		} else {
			body = append(body, "  "+displayName(r.Name))
		}

		if len(r.Tasks) == 0 && isSelected {
			body = append(body, ui.DimStyle.Render("    (no tasks)"))
		}
		for j, task := range r.Tasks {
			line := "    " + task.Name + " " + ui.DurationStyle.Render(task.Duration.String())
			if isSelected && m.store.EditMode() && j == m.selectedTask {
				line = ui.SelectedStyle.Render("  • ") + task.Name + " " + ui.DurationStyle.Render(task.Duration.String())
			}
			body = append(body, line)
		}
	}

	// Keep the selected routine on screen.
	visible := height - 1
	start := 0
	if selectedLine >= visible {
		start = selectedLine - visible + 1
	}
	end := min(len(body), start+visible)

	lines := []string{header}
	lines = append(lines, body[start:end]...)

	// Pad to height
	for len(lines) < height {
		lines = append(lines, "")
	}

	// Ensure each line is padded to width
	for i, l := range lines {
		lines[i] = padRight(truncateToWidth(l, width), width)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderTimerPanel(width, height int) string {
	p := m.store.Playback()

	lines := []string{ui.PanelTitleStyle.Render("TIMER")}

	if p.Routine == nil {
		lines = append(lines, "")
		lines = append(lines, ui.DimStyle.Render("No routine running"))
		lines = append(lines, ui.DimStyle.Render("Select one and press Enter to start"))
	} else {
		current, _ := p.CurrentTask()
		lines = append(lines, "")
		lines = append(lines, ui.TitleStyle.Render(p.Routine.Name))
		lines = append(lines, "Current Task: "+ui.CurrentTaskStyle.Render(current.Name))
		lines = append(lines, "Time Left: "+ui.CountdownStyle.Render(p.Remaining.String()))
		if n := len(p.Routine.Tasks); n > 0 {
			lines = append(lines, ui.DimStyle.Render(fmt.Sprintf("Task %d of %d", p.TaskIndex+1, n)))
		}
		if p.Status == playback.Paused {
			lines = append(lines, "")
			lines = append(lines, ui.PausedDotStyle.Render("Paused")+ui.DimStyle.Render(" · Space to resume"))
		}

		upcoming := upcomingTasks(p)
		if len(upcoming) > 0 {
			lines = append(lines, "")
			lines = append(lines, ui.DimStyle.Render("Up next:"))
			for _, task := range upcoming {
				lines = append(lines, ui.DimStyle.Render("  "+task.Name+" "+task.Duration.String()))
			}
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = truncateToWidth(l, width)
	}
	return strings.Join(lines, "\n")
}

func upcomingTasks(p playback.Snapshot) []routine.Task {
	if p.Routine == nil || p.TaskIndex+1 >= len(p.Routine.Tasks) {
		return nil
	}
	return p.Routine.Tasks[p.TaskIndex+1:]
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string
	add := func(b key.Binding, desc string) {
		if desc == "" {
			desc = b.Help().Desc
		}
		parts = append(parts, ui.FooterKeyStyle.Render(b.Help().Key)+ui.FooterDescStyle.Render(" "+desc))
	}

	switch m.store.Playback().Status {
	case playback.Playing:
		add(m.keys.Pause, "Pause")
		add(m.keys.Stop, "")
	case playback.Paused:
		add(m.keys.Pause, "Resume")
		add(m.keys.Stop, "")
	}

	add(m.keys.Start, "")
	add(m.keys.Up, "")
	add(m.keys.NewRoutine, "")

	if m.store.EditMode() {
		add(m.keys.ToggleEdit, "Save")
		add(m.keys.RenameRoutine, "")
		add(m.keys.DeleteRoutine, "")
		add(m.keys.AddTask, "")
		add(m.keys.NextTask, "")
		add(m.keys.EditTask, "")
		add(m.keys.DeleteTask, "")
	} else {
		add(m.keys.ToggleEdit, "Edit Mode")
	}

	add(m.keys.Quit, "")

	return strings.Join(parts, "  ")
}

// Helpers

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func truncateToWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
