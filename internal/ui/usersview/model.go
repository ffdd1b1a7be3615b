package usersview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/keys"
	"github.com/lockin-app/lockin/internal/leaderboard"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/internal/theme"
	"github.com/lockin-app/lockin/internal/ui"
)

// UsersLoadedMsg is sent when the ranked user list has been loaded.
type UsersLoadedMsg struct {
	Users []model.User
}

// FollowChangedMsg tells the root model that the signed-in user's follow
// graph changed and dependent views should refresh.
type FollowChangedMsg struct{}

// Model is the community leaderboard view.
type Model struct {
	users  store.UserStore
	inbox  store.InboxStore
	keys   *keys.KeyMap
	user   model.User
	ranked []model.User
	cursor int
	width  int
	height int
}

// New creates a new leaderboard view model.
func New(u store.UserStore, ib store.InboxStore, k *keys.KeyMap, width, height int) Model {
	return Model{
		users:  u,
		inbox:  ib,
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetUser sets the signed-in user.
func (m *Model) SetUser(u model.User) {
	m.user = u
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init returns a command that loads the initial ranking.
func (m Model) Init() tea.Cmd {
	return m.LoadUsers()
}

// LoadUsers returns a command that reloads and ranks all users.
func (m Model) LoadUsers() tea.Cmd {
	return func() tea.Msg {
		return UsersLoadedMsg{Users: leaderboard.Rank(m.users.Users())}
	}
}

// Update handles messages for the leaderboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UsersLoadedMsg:
		m.ranked = msg.Users
		if m.cursor >= len(m.ranked) {
			m.cursor = len(m.ranked) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.ranked)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Follow):
			return m, m.toggleFollowSelected()
		}
	}
	return m, nil
}

// toggleFollowSelected follows or unfollows the selected user and sends a
// follow notification on a new follow.
func (m Model) toggleFollowSelected() tea.Cmd {
	if m.cursor >= len(m.ranked) {
		return nil
	}
	target := m.ranked[m.cursor]
	if target.ID == m.user.ID {
		return ui.Status("That's you.")
	}

	if m.user.IsFollowing(target.ID) {
		if err := m.users.Unfollow(m.user.ID, target.ID); err != nil {
			return ui.Status(fmt.Sprintf("could not unfollow: %v", err))
		}
		return tea.Batch(
			func() tea.Msg { return FollowChangedMsg{} },
			ui.Status(fmt.Sprintf("Unfollowed @%s.", target.Username)),
		)
	}

	if err := m.users.Follow(m.user.ID, target.ID); err != nil {
		return ui.Status(fmt.Sprintf("could not follow: %v", err))
	}
	m.inbox.AddNotification(model.Notification{
		UserID:       target.ID,
		Type:         model.NotificationFollow,
		FromUserID:   m.user.ID,
		FromUsername: m.user.Username,
		Content:      "started following you",
	})
	return tea.Batch(
		func() tea.Msg { return FollowChangedMsg{} },
		ui.Status(fmt.Sprintf("Now following @%s.", target.Username)),
	)
}

// View renders the ranking: position, handle, streak, likes.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.HelpStyle.Render("Ranked by streak, then total likes"))
	b.WriteString("\n\n")

	if len(m.ranked) == 0 {
		b.WriteString(theme.DimmedStyle.Render("Nobody here yet."))
	}

	for i, u := range m.ranked {
		b.WriteString(m.renderRow(i+1, u, i == m.cursor))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderRow(rank int, u model.User, selected bool) string {
	pos := theme.RankStyle(rank).Render(fmt.Sprintf("#%d", rank))

	name := theme.UsernameStyle.Render("@" + u.Username)
	if u.IsVerified {
		name += " " + theme.VerifiedBadgeStyle.Render("✓")
	}
	if u.ID == m.user.ID {
		name += theme.DimmedStyle.Render(" (you)")
	} else if m.user.IsFollowing(u.ID) {
		name += theme.DimmedStyle.Render(" · following")
	}

	stats := fmt.Sprintf("%s  %s",
		theme.StreakStyle.Render(fmt.Sprintf("🔥 %d", u.Streak)),
		theme.LikeStyle.Render(fmt.Sprintf("♥ %d", u.TotalLikes)),
	)

	line := fmt.Sprintf("%s %s  %s", pos, name, stats)
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}
