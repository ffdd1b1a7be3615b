package taskform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/theme"
)

// TaskSubmittedMsg is dispatched when a new task is created via the form.
type TaskSubmittedMsg struct {
	Text     string
	Type     string
	IsPublic bool
}

// TaskFormCancelMsg is dispatched when the user cancels the form.
type TaskFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	text       string
	itemType   string
	visibility string
}

// Model is the Bubble Tea model for the add-task form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{itemType: model.ItemTypeDaily, visibility: "public"},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form with the given defaults.
func (m *Model) StartCreate(defaults model.ChecklistConfig) tea.Cmd {
	m.fb.text = ""
	m.fb.itemType = defaults.DefaultType
	m.fb.visibility = defaults.DefaultVisibility
	if m.fb.itemType == "" {
		m.fb.itemType = model.ItemTypeDaily
	}
	if m.fb.visibility == "" {
		m.fb.visibility = "public"
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return TaskFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	// The 4am reset line is product copy carried over from the mobile app;
	// no reset logic backs it anywhere.
	hint := theme.HelpStyle.Render(
		"List will be reset at 4am every day. Daily items will untick & one-off\n" +
			"items will be removed. Add your daily one-offs every day.")

	content := titleStyle.Render("New Task") + "\n" + m.form.View() + "\n" + hint

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Description").
				Placeholder("e.g., Morning meditation (10 minutes)").
				Value(&m.fb.text).
				Validate(validateRequired("Task description")),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Daily", model.ItemTypeDaily),
					huh.NewOption("One-off", model.ItemTypeOneOff),
				).
				Value(&m.fb.itemType),
			huh.NewSelect[string]().
				Title("Visibility").
				Options(
					huh.NewOption("Public", "public"),
					huh.NewOption("Private", "private"),
				).
				Value(&m.fb.visibility),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	submitted := TaskSubmittedMsg{
		Text:     strings.TrimSpace(m.fb.text),
		Type:     m.fb.itemType,
		IsPublic: m.fb.visibility == "public",
	}
	return func() tea.Msg { return submitted }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 6
	if h < 10 {
		h = 10
	}
	return h
}

// validateRequired returns a validator that rejects blank input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
