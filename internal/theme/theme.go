package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top bar and section titles.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DimmedStyle renders completed checklist items and read inbox entries.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TabStyle and ActiveTabStyle render the feed/inbox tab strip.
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			Padding(0, 2).
			Underline(true)
)

// VerifiedBadgeStyle marks verified accounts.
var VerifiedBadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// StreakStyle renders streak counts on the leaderboard.
var StreakStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorOrange)

// LikeStyle renders like counts and the liked-state heart.
var LikeStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// UnreadBadgeStyle renders unread counts in the header and inbox tabs.
var UnreadBadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorRed).
	Padding(0, 1)

// UsernameStyle renders @handles in the feed and inbox.
var UsernameStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorMagenta)

// VisibilityStyle returns a color-coded style for an item or post
// visibility badge.
func VisibilityStyle(isPublic bool) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	if isPublic {
		return base.Foreground(ColorGreen)
	}
	return base.Foreground(ColorGray)
}

// ItemTypeStyle returns a color-coded style for the daily/one-off badge.
func ItemTypeStyle(itemType string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch itemType {
	case "daily":
		return base.Foreground(ColorBlue)
	case "oneoff":
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}

// RankStyle returns the style for a leaderboard position; the podium gets
// its own colors.
func RankStyle(rank int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch rank {
	case 1:
		return base.Foreground(ColorYellow)
	case 2:
		return base.Foreground(ColorWhite)
	case 3:
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}
