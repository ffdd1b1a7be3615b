package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lockin-app/lockin/internal/theme"
)

// Layout manages the terminal layout dimensions shared by all views.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the app title, the active
// view name, and the unread badge when unread > 0.
func (l Layout) RenderHeader(viewName string, unread int) string {
	title := theme.HeaderStyle.Render("lockin — " + viewName)

	right := ""
	if unread > 0 {
		right = theme.UnreadBadgeStyle.Render(fmt.Sprintf("%d unread", unread))
	}
	rightRendered := theme.HeaderStyle.Render(right)

	gap := l.Width - lipgloss.Width(title) - lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, filler, rightRendered)
}

// RenderStatusBar renders the bottom status bar with keyboard hints or a
// transient status message.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderTabBar renders a tab strip, highlighting the active tab. Badges
// may be empty strings; a non-empty badge is appended to its tab label.
func (l Layout) RenderTabBar(labels []string, badges []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if i < len(badges) && badges[i] != "" {
			label = label + " " + badges[i]
		}
		if i == active {
			parts = append(parts, theme.ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, theme.TabStyle.Render(label))
		}
	}
	return strings.Join(parts, "")
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
