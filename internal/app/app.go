package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lockin-app/lockin/internal/feed"
	"github.com/lockin-app/lockin/internal/keys"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/seed"
	"github.com/lockin-app/lockin/internal/session"
	"github.com/lockin-app/lockin/internal/store"
	appsync "github.com/lockin-app/lockin/internal/sync"
	"github.com/lockin-app/lockin/internal/ui"
	"github.com/lockin-app/lockin/internal/ui/checklist"
	"github.com/lockin-app/lockin/internal/ui/feedview"
	"github.com/lockin-app/lockin/internal/ui/inbox"
	"github.com/lockin-app/lockin/internal/ui/signin"
	"github.com/lockin-app/lockin/internal/ui/taskform"
	"github.com/lockin-app/lockin/internal/ui/usersview"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewSignIn ViewState = iota
	ViewFeed
	ViewChecklist
	ViewLeaderboard
	ViewInbox
	ViewTaskForm
)

// viewNames are the header labels per view.
var viewNames = map[ViewState]string{
	ViewSignIn:      "sign in",
	ViewFeed:        "feed",
	ViewChecklist:   "checklist",
	ViewLeaderboard: "leaderboard",
	ViewInbox:       "inbox",
	ViewTaskForm:    "new task",
}

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the stores.
type Model struct {
	cfg      *model.AppConfig
	store    *store.MemoryStore
	feedSync *feed.Synchronizer
	watcher  *appsync.Watcher
	keys     *keys.KeyMap
	layout   ui.Layout
	help     help.Model

	currentView  ViewState
	previousView ViewState
	user         model.User
	signedIn     bool

	feedView      feedview.Model
	checklistView checklist.Model
	usersView     usersview.Model
	inboxView     inbox.Model
	taskForm      taskform.Model
	signInView    signin.Model

	statusMessage string
	initCmd       tea.Cmd
	ready         bool
}

// New creates the root application model. When the keyring remembers a
// handle that still resolves to an account, sign-in is skipped.
func New(cfg *model.AppConfig, st *store.MemoryStore) Model {
	k := keys.DefaultKeyMap()
	fs := feed.NewSynchronizer(st)

	m := Model{
		cfg:           cfg,
		store:         st,
		feedSync:      fs,
		watcher:       appsync.NewWatcher(st),
		keys:          k,
		help:          help.New(),
		feedView:      feedview.New(st, st, st, k, cfg.Display.FeedPageSize, 80, 24),
		checklistView: checklist.New(st, fs, k, 80, 24),
		usersView:     usersview.New(st, st, k, 80, 24),
		inboxView:     inbox.New(st, st, k, 80, 24),
		taskForm:      taskform.New(80, 24),
		signInView:    signin.New(80, 24),
	}

	if handle, err := session.LastHandle(); err == nil && handle != "" {
		if u, err := st.UserByUsername(handle); err == nil {
			m.setUser(u)
			m.currentView = ViewChecklist
			m.initCmd = tea.Batch(
				m.checklistView.Init(),
				m.feedView.Init(),
				m.usersView.Init(),
				m.inboxView.Init(),
			)
			return m
		}
	}

	m.currentView = ViewSignIn
	m.initCmd = m.signInView.Start()
	return m
}

// setUser records the signed-in user and propagates it to every view.
func (m *Model) setUser(u model.User) {
	m.user = u
	m.signedIn = true
	m.feedView.SetUser(u)
	m.checklistView.SetUser(u)
	m.usersView.SetUser(u)
	m.inboxView.SetUser(u)
}

// Init starts the checklist watcher and the initial view.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.watcher.Start())
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.feedView.SetSize(w, h)
		m.checklistView.SetSize(w, h)
		m.usersView.SetSize(w, h)
		m.inboxView.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.signInView.SetSize(w, h)
		m.help.Width = w
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case appsync.ChangedMsg:
		// A checklist mutation happened somewhere; reload everything that
		// renders checklist or feed state, then keep listening.
		return m, tea.Batch(
			m.checklistView.LoadItems(),
			m.feedView.LoadPosts(),
			m.watcher.WaitForNext(),
		)

	case ui.StatusMsg:
		m.statusMessage = msg.Text
		return m, nil

	case signin.SubmittedMsg:
		return m.handleSignIn(msg.Username)

	case taskform.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case taskform.TaskFormCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case usersview.FollowChangedMsg:
		return m.handleFollowChanged()

	// Loaded-data messages are routed to their owning view even when it
	// is not active, so background reloads are never lost.
	case checklist.ItemsLoadedMsg:
		var cmd tea.Cmd
		m.checklistView, cmd = m.checklistView.Update(msg)
		return m, cmd
	case feedview.PostsLoadedMsg:
		var cmd tea.Cmd
		m.feedView, cmd = m.feedView.Update(msg)
		return m, cmd
	case usersview.UsersLoadedMsg:
		var cmd tea.Cmd
		m.usersView, cmd = m.usersView.Update(msg)
		return m, cmd
	case inbox.InboxLoadedMsg:
		var cmd tea.Cmd
		m.inboxView, cmd = m.inboxView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m.updateActiveView(msg)
}

// handleKeys applies global bindings, then delegates to the active view.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A keypress dismisses any transient status message.
	m.statusMessage = ""

	// Forms and text-input modes own the keyboard.
	if m.inForm() || m.feedInputActive() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.GoFeed):
		m.currentView = ViewFeed
		return m, m.feedView.LoadPosts()

	case key.Matches(msg, m.keys.GoChecklist):
		m.currentView = ViewChecklist
		return m, m.checklistView.LoadItems()

	case key.Matches(msg, m.keys.GoLeaderboard):
		m.currentView = ViewLeaderboard
		return m, m.usersView.LoadUsers()

	case key.Matches(msg, m.keys.GoInbox):
		m.currentView = ViewInbox
		return m, m.inboxView.LoadInbox()

	case key.Matches(msg, m.keys.AddTask):
		if m.currentView == ViewChecklist {
			m.previousView = m.currentView
			m.currentView = ViewTaskForm
			return m, m.taskForm.StartCreate(m.cfg.Checklist)
		}
	}

	return m.updateActiveView(msg)
}

// handleSignIn resolves a submitted handle to an account, creating one
// for first-time handles, and enters the checklist view.
func (m Model) handleSignIn(username string) (tea.Model, tea.Cmd) {
	u, err := m.store.UserByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		u, err = seed.NewUser(m.store, username)
	}
	if err != nil {
		m.statusMessage = fmt.Sprintf("sign-in failed: %v", err)
		return m, m.signInView.Start()
	}

	// Remembering the handle is best-effort; a locked keyring only costs
	// the next run a sign-in prompt.
	_ = session.RememberHandle(u.Username)

	m.setUser(u)
	m.currentView = ViewChecklist
	return m, tea.Batch(
		m.checklistView.Init(),
		m.feedView.Init(),
		m.usersView.Init(),
		m.inboxView.Init(),
	)
}

// handleTaskSubmitted adds the new checklist item and returns to the
// checklist view.
func (m Model) handleTaskSubmitted(msg taskform.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	m.currentView = ViewChecklist

	_, err := m.store.Add(model.ChecklistItem{
		UserID:   m.user.ID,
		Text:     msg.Text,
		Type:     msg.Type,
		IsPublic: msg.IsPublic,
	})
	if err != nil {
		return m, ui.Status(fmt.Sprintf("could not add task: %v", err))
	}
	return m, tea.Batch(m.checklistView.LoadItems(), ui.Status("Task added successfully!"))
}

// handleFollowChanged refreshes the signed-in user's follow graph and the
// views that depend on it.
func (m Model) handleFollowChanged() (tea.Model, tea.Cmd) {
	if u, err := m.store.UserByID(m.user.ID); err == nil {
		m.setUser(u)
	}
	return m, tea.Batch(m.usersView.LoadUsers(), m.feedView.LoadPosts())
}

// updateActiveView forwards a message to the active view only.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewSignIn:
		m.signInView, cmd = m.signInView.Update(msg)
	case ViewFeed:
		m.feedView, cmd = m.feedView.Update(msg)
	case ViewChecklist:
		m.checklistView, cmd = m.checklistView.Update(msg)
	case ViewLeaderboard:
		m.usersView, cmd = m.usersView.Update(msg)
	case ViewInbox:
		m.inboxView, cmd = m.inboxView.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	}
	return m, cmd
}

// inForm reports whether a huh form owns the keyboard.
func (m Model) inForm() bool {
	return m.currentView == ViewSignIn || m.currentView == ViewTaskForm
}

// feedInputActive reports whether the feed view is in search or comment
// input mode.
func (m Model) feedInputActive() bool {
	return m.currentView == ViewFeed && m.feedView.InputActive()
}

// View renders the full frame: header, active view, status bar.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var content string
	switch m.currentView {
	case ViewSignIn:
		content = m.signInView.View()
	case ViewFeed:
		content = m.feedView.View()
	case ViewChecklist:
		content = m.checklistView.View()
	case ViewLeaderboard:
		content = m.usersView.View()
	case ViewInbox:
		content = m.inboxView.View()
	case ViewTaskForm:
		content = m.taskForm.View()
	}

	unread := 0
	if m.signedIn {
		unread = m.store.UnreadMessageCount(m.user.ID) +
			m.store.UnreadNotificationCount(m.user.ID)
	}
	header := m.layout.RenderHeader(viewNames[m.currentView], unread)

	statusLine := m.statusMessage
	if statusLine == "" {
		statusLine = m.help.View(m.keys)
	}
	statusBar := m.layout.RenderStatusBar(statusLine)

	return m.layout.RenderWithFrame(header, content, statusBar)
}
