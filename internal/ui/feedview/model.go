package feedview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/keys"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/internal/theme"
	"github.com/lockin-app/lockin/internal/ui"
)

// Feed tabs, mirroring the three home feeds: mutual follows, follows,
// and the whole community.
const (
	tabFriends = iota
	tabFollowing
	tabLockIn
	tabCount
)

var tabLabels = []string{"Friends", "Following", "Lock In"}

// PostsLoadedMsg is sent when feed posts have been loaded from the store.
type PostsLoadedMsg struct {
	Posts []model.Post
}

// Model is the home feed view.
type Model struct {
	posts    store.PostStore
	users    store.UserStore
	inbox    store.InboxStore
	keys     *keys.KeyMap
	user     model.User
	pageSize int

	tab       int
	feed      []model.Post
	cursor    int
	query     string
	searching bool
	commenting bool
	input     textinput.Model
	width     int
	height    int
}

// New creates a new feed view model.
func New(p store.PostStore, u store.UserStore, ib store.InboxStore, k *keys.KeyMap, pageSize, width, height int) Model {
	input := textinput.New()
	input.Prompt = "> "

	return Model{
		posts:    p,
		users:    u,
		inbox:    ib,
		keys:     k,
		pageSize: pageSize,
		tab:      tabLockIn,
		input:    input,
		width:    width,
		height:   height,
	}
}

// SetUser sets the signed-in user; it drives the Friends and Following
// tabs and the liked-state rendering.
func (m *Model) SetUser(u model.User) {
	m.user = u
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
}

// InputActive reports whether the search or comment input owns the
// keyboard.
func (m Model) InputActive() bool {
	return m.searching || m.commenting
}

// Init returns a command that loads the initial feed.
func (m Model) Init() tea.Cmd {
	return m.LoadPosts()
}

// LoadPosts returns a command that reloads the feed for the active tab.
func (m Model) LoadPosts() tea.Cmd {
	return func() tea.Msg {
		public := true
		filter := store.PostFilter{Public: &public}
		if m.query != "" {
			q := m.query
			filter.Query = &q
		}

		posts := m.posts.Posts(filter)
		posts = m.filterByTab(posts)
		if len(posts) > m.pageSize {
			posts = posts[:m.pageSize]
		}
		return PostsLoadedMsg{Posts: posts}
	}
}

// filterByTab restricts the public feed to the active tab's audience.
func (m Model) filterByTab(posts []model.Post) []model.Post {
	if m.tab == tabLockIn {
		return posts
	}

	var kept []model.Post
	for _, p := range posts {
		if p.UserID == m.user.ID {
			continue
		}
		if !m.user.IsFollowing(p.UserID) {
			continue
		}
		if m.tab == tabFriends {
			author, err := m.users.UserByID(p.UserID)
			if err != nil || !author.IsFollowing(m.user.ID) {
				continue
			}
		}
		kept = append(kept, p)
	}
	return kept
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		m.feed = msg.Posts
		if m.cursor >= len(m.feed) {
			m.cursor = len(m.feed) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching || m.commenting {
			return m.handleInputKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.searching {
			m.searching = false
			m.query = value
			m.input.Blur()
			return m, m.LoadPosts()
		}
		m.commenting = false
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		return m, m.submitComment(value)

	case "esc":
		m.searching = false
		m.commenting = false
		m.query = ""
		m.input.Reset()
		m.input.Blur()
		return m, m.LoadPosts()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.feed)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
		return m, m.LoadPosts()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.input.Reset()
		m.input.Placeholder = "search posts and people..."
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Like):
		return m, m.toggleLikeSelected()

	case key.Matches(msg, m.keys.Comment):
		if len(m.feed) == 0 {
			return m, nil
		}
		m.commenting = true
		m.input.Reset()
		m.input.Placeholder = "write a comment..."
		return m, m.input.Focus()
	}
	return m, nil
}

// toggleLikeSelected flips the like on the selected post and notifies the
// post owner on a new like.
func (m Model) toggleLikeSelected() tea.Cmd {
	if m.cursor >= len(m.feed) {
		return nil
	}
	post := m.feed[m.cursor]

	updated, err := m.posts.ToggleLike(post.ID, m.user.ID)
	if err != nil {
		return ui.Status(fmt.Sprintf("could not like post: %v", err))
	}

	if updated.LikedBy(m.user.ID) && updated.UserID != m.user.ID {
		m.inbox.AddNotification(model.Notification{
			UserID:       updated.UserID,
			Type:         model.NotificationLike,
			FromUserID:   m.user.ID,
			FromUsername: m.user.Username,
			PostID:       updated.ID,
			Content:      fmt.Sprintf("liked your post %q", updated.Content),
		})
	}
	return m.LoadPosts()
}

// submitComment appends a comment to the selected post and notifies the
// post owner.
func (m Model) submitComment(content string) tea.Cmd {
	if m.cursor >= len(m.feed) {
		return nil
	}
	post := m.feed[m.cursor]

	updated, err := m.posts.AddComment(post.ID, model.Comment{
		UserID:   m.user.ID,
		Username: m.user.Username,
		Content:  content,
	})
	if err != nil {
		return ui.Status(fmt.Sprintf("could not comment: %v", err))
	}

	if updated.UserID != m.user.ID {
		m.inbox.AddNotification(model.Notification{
			UserID:       updated.UserID,
			Type:         model.NotificationComment,
			FromUserID:   m.user.ID,
			FromUsername: m.user.Username,
			PostID:       updated.ID,
			Content:      "commented on your post",
		})
	}
	return m.LoadPosts()
}

// View renders the tab strip and the feed.
func (m Model) View() string {
	var b strings.Builder

	layout := ui.NewLayout(m.width, m.height)
	b.WriteString(layout.RenderTabBar(tabLabels, nil, m.tab))
	b.WriteString("\n\n")

	if len(m.feed) == 0 {
		b.WriteString(theme.DimmedStyle.Render(m.emptyText()))
	}

	for i, post := range m.feed {
		b.WriteString(m.renderPost(post, i == m.cursor))
		b.WriteString("\n")
	}

	if m.searching || m.commenting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) emptyText() string {
	if m.query != "" {
		return "No posts found."
	}
	switch m.tab {
	case tabFriends:
		return "No friends posts yet. Follow users who follow you back to see their posts here."
	case tabFollowing:
		return "No posts from people you follow."
	default:
		return "Start following users and checking off tasks!"
	}
}

func (m Model) renderPost(post model.Post, selected bool) string {
	author := theme.UsernameStyle.Render("@" + post.Username)
	if u, err := m.users.UserByID(post.UserID); err == nil && u.IsVerified {
		author += " " + theme.VerifiedBadgeStyle.Render("✓")
	}

	header := fmt.Sprintf("%s · %s", author, theme.DimmedStyle.Render(ui.RelativeTime(post.CreatedAt)))

	heart := "♡"
	if post.LikedBy(m.user.ID) {
		heart = "♥"
	}
	actions := fmt.Sprintf("%s %d  🗨 %d",
		theme.LikeStyle.Render(heart), len(post.Likes), len(post.Comments))

	lines := []string{header, "  ✔ " + post.Content, "  " + actions}
	for _, c := range post.Comments {
		lines = append(lines, "    "+
			theme.UsernameStyle.Render("@"+c.Username)+" "+
			theme.DimmedStyle.Render(c.Content))
	}

	block := strings.Join(lines, "\n")
	if selected {
		return theme.SelectedItemStyle.Render(block) + "\n"
	}
	return theme.ListItemStyle.Render(block) + "\n"
}
