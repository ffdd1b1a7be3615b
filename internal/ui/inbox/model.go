package inbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/keys"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/internal/theme"
	"github.com/lockin-app/lockin/internal/ui"
)

const (
	tabMessages = iota
	tabNotifications
	tabCount
)

// InboxLoadedMsg is sent when the user's inbox has been loaded.
type InboxLoadedMsg struct {
	Messages      []model.Message
	Notifications []model.Notification
	UnreadMsgs    int
	UnreadNotifs  int
}

// Model is the inbox view: direct messages and activity notifications.
type Model struct {
	inbox store.InboxStore
	users store.UserStore
	keys  *keys.KeyMap
	user  model.User

	tab           int
	messages      []model.Message
	notifications []model.Notification
	unreadMsgs    int
	unreadNotifs  int
	width         int
	height        int
}

// New creates a new inbox view model.
func New(ib store.InboxStore, u store.UserStore, k *keys.KeyMap, width, height int) Model {
	return Model{
		inbox:  ib,
		users:  u,
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetUser sets the signed-in user whose inbox is shown.
func (m *Model) SetUser(u model.User) {
	m.user = u
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init returns a command that loads the inbox.
func (m Model) Init() tea.Cmd {
	return m.LoadInbox()
}

// LoadInbox returns a command that reloads messages and notifications.
func (m Model) LoadInbox() tea.Cmd {
	return func() tea.Msg {
		return InboxLoadedMsg{
			Messages:      m.inbox.MessagesFor(m.user.ID),
			Notifications: m.inbox.NotificationsFor(m.user.ID),
			UnreadMsgs:    m.inbox.UnreadMessageCount(m.user.ID),
			UnreadNotifs:  m.inbox.UnreadNotificationCount(m.user.ID),
		}
	}
}

// Update handles messages for the inbox view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InboxLoadedMsg:
		m.messages = msg.Messages
		m.notifications = msg.Notifications
		m.unreadMsgs = msg.UnreadMsgs
		m.unreadNotifs = msg.UnreadNotifs
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil

		case key.Matches(msg, m.keys.MarkRead):
			m.inbox.MarkAllRead(m.user.ID)
			return m, tea.Batch(m.LoadInbox(), ui.Status("Inbox marked as read."))
		}
	}
	return m, nil
}

// View renders the tab strip and the active tab's entries.
func (m Model) View() string {
	var b strings.Builder

	badges := []string{badge(m.unreadMsgs), badge(m.unreadNotifs)}
	layout := ui.NewLayout(m.width, m.height)
	b.WriteString(layout.RenderTabBar([]string{"Messages", "Notifications"}, badges, m.tab))
	b.WriteString("\n\n")

	if m.tab == tabMessages {
		b.WriteString(m.renderMessages())
	} else {
		b.WriteString(m.renderNotifications())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func badge(n int) string {
	if n == 0 {
		return ""
	}
	return theme.UnreadBadgeStyle.Render(fmt.Sprintf("%d", n))
}

func (m Model) renderMessages() string {
	if len(m.messages) == 0 {
		return theme.DimmedStyle.Render("No messages yet.")
	}

	var b strings.Builder
	for _, msg := range m.messages {
		sender := "@" + m.senderName(msg.SenderID)
		line := fmt.Sprintf("%s  %s  %s",
			theme.UsernameStyle.Render(sender),
			msg.Content,
			theme.DimmedStyle.Render(ui.RelativeTime(msg.CreatedAt)),
		)
		if msg.IsRead {
			line = theme.DimmedStyle.Render(line)
		} else {
			line = "● " + line
		}
		b.WriteString(theme.ListItemStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return theme.DimmedStyle.Render("No notifications yet.")
	}

	var b strings.Builder
	for _, n := range m.notifications {
		line := fmt.Sprintf("%s %s  %s",
			theme.UsernameStyle.Render("@"+n.FromUsername),
			n.Content,
			theme.DimmedStyle.Render(ui.RelativeTime(n.CreatedAt)),
		)
		if n.IsRead {
			line = theme.DimmedStyle.Render(line)
		} else {
			line = "● " + line
		}
		b.WriteString(theme.ListItemStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// senderName resolves a sender ID to a handle, falling back to the raw ID
// for users that have left.
func (m Model) senderName(userID string) string {
	if u, err := m.users.UserByID(userID); err == nil {
		return u.Username
	}
	return userID
}
