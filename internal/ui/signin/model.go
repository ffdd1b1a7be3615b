package signin

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/theme"
)

// SubmittedMsg is dispatched when the user submits a handle.
type SubmittedMsg struct {
	Username string
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	username string
}

// Model is the sign-in screen. There is nothing to verify: a handle is
// all it takes, and an unknown handle creates a fresh account.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new sign-in model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the sign-in form.
func (m *Model) Start() tea.Cmd {
	m.fb.username = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Handle").
				Placeholder("yourname").
				Value(&m.fb.username).
				Validate(validateHandle),
		),
	).WithWidth(m.formWidth())
	return m.form.Init()
}

// Update handles messages for the sign-in form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		username := strings.TrimSpace(strings.ToLower(m.fb.username))
		return m, func() tea.Msg { return SubmittedMsg{Username: username} }
	}
	if m.form.State == huh.StateAborted {
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the sign-in screen.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Welcome to lockin") + "\n" +
		theme.HelpStyle.Render("Sign in with your handle. New handles get a fresh account.") + "\n\n" +
		m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// validateHandle rejects blank handles and whitespace.
func validateHandle(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("handle is required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("handle must not contain spaces")
	}
	return nil
}
