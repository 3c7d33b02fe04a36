package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Toggle cell glyphs.
const (
	IconCollapsed = "▶"
	IconExpanded  = "▼"
)

//nolint:gochecknoglobals // Shared, immutable styles.
var (
	titleStyle  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	toggleStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	drawerStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(ColorValue)
)
