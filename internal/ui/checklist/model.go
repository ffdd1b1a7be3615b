package checklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/feed"
	"github.com/lockin-app/lockin/internal/keys"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/internal/theme"
	"github.com/lockin-app/lockin/internal/ui"
)

// ItemsLoadedMsg is sent when checklist items have been loaded from the
// store.
type ItemsLoadedMsg struct {
	Items []model.ChecklistItem
}

// Model is the checklist view: the signed-in user's tasks for the day.
type Model struct {
	checklist store.ChecklistStore
	feed      *feed.Synchronizer
	keys      *keys.KeyMap
	user      model.User
	items     []model.ChecklistItem
	cursor    int
	width     int
	height    int
}

// New creates a new checklist view model.
func New(cl store.ChecklistStore, fs *feed.Synchronizer, k *keys.KeyMap, width, height int) Model {
	return Model{
		checklist: cl,
		feed:      fs,
		keys:      k,
		width:     width,
		height:    height,
	}
}

// SetUser sets the signed-in user whose checklist is shown.
func (m *Model) SetUser(u model.User) {
	m.user = u
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init returns a command that loads the initial items.
func (m Model) Init() tea.Cmd {
	return m.LoadItems()
}

// LoadItems returns a command that reloads the user's items.
func (m Model) LoadItems() tea.Cmd {
	return func() tea.Msg {
		return ItemsLoadedMsg{Items: m.checklist.Items(m.user.ID)}
	}
}

// Update handles messages for the checklist view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsLoadedMsg:
		m.items = msg.Items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleTask):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.DeleteTask):
		return m, m.deleteSelected()
	}
	return m, nil
}

// toggleSelected flips completion on the selected item and drives the
// feed synchronizer: a completion publishes a post, an un-completion
// leaves the post in place.
func (m Model) toggleSelected() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]

	updated, err := m.checklist.Toggle(item.ID)
	if err != nil {
		return ui.Status(fmt.Sprintf("could not toggle task: %v", err))
	}

	if updated.IsCompleted {
		m.feed.ItemCompleted(updated, m.user.Username)
		feedName := "private"
		if updated.IsPublic {
			feedName = "public"
		}
		return ui.Status(fmt.Sprintf("Task completed! Post created in your %s feed.", feedName))
	}

	m.feed.CompletionRevoked(updated.ID)
	return ui.Status("Task unchecked. Its post stays in the feed.")
}

// deleteSelected removes the selected item and retracts its posts.
func (m Model) deleteSelected() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]

	if !m.checklist.Remove(item.ID) {
		return ui.Status("Task is already gone.")
	}

	removed := m.feed.ItemDeleted(item.ID)
	if removed == 0 {
		return ui.Status("Task deleted.")
	}
	plural := ""
	if removed != 1 {
		plural = "s"
	}
	return ui.Status(fmt.Sprintf("Task deleted along with %d associated post%s.", removed, plural))
}

// View renders the checklist with a date header and a progress footer.
func (m Model) View() string {
	var b strings.Builder

	today := time.Now().Format("Monday, January 2, 2006")
	b.WriteString(theme.HelpStyle.Render(today))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(theme.DimmedStyle.Render("No tasks yet. Press 'a' to add your first accountability task."))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	for i, item := range m.items {
		b.WriteString(m.renderItem(item, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderProgress())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderItem(item model.ChecklistItem, selected bool) string {
	prefix := "○"
	if item.IsCompleted {
		prefix = "✓"
	}

	typeLabel := "Daily"
	if item.Type == model.ItemTypeOneOff {
		typeLabel = "One-off"
	}
	typeBadge := theme.ItemTypeStyle(item.Type).Render(typeLabel)

	visLabel := "Private"
	if item.IsPublic {
		visLabel = "Public"
	}
	visBadge := theme.VisibilityStyle(item.IsPublic).Render(visLabel)

	completedAt := ""
	if item.CompletedAt != nil {
		completedAt = theme.DimmedStyle.Render(
			"  completed " + item.CompletedAt.Local().Format("15:04"))
	}

	line := fmt.Sprintf("%s %s  %s %s%s", prefix, item.Text, typeBadge, visBadge, completedAt)
	if item.IsCompleted {
		line = theme.DimmedStyle.Render(line)
	}

	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// renderProgress mirrors the "Today's Progress" card: completed, total,
// percent.
func (m Model) renderProgress() string {
	completed := 0
	for _, item := range m.items {
		if item.IsCompleted {
			completed++
		}
	}
	percent := 0
	if len(m.items) > 0 {
		percent = completed * 100 / len(m.items)
	}

	return theme.BorderStyle.Padding(0, 1).Render(fmt.Sprintf(
		"Today's Progress  %d completed · %d total · %d%%",
		completed, len(m.items), percent,
	))
}
