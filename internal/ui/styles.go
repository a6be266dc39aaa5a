// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/ui/components/suggestions"
)

// Styles holds every style derived from the configured theme
type Styles struct {
	codeStyle string

	primary   lipgloss.Color
	secondary lipgloss.Color
	faint     lipgloss.Color
	accent    lipgloss.Color
	success   lipgloss.Color
	errColor  lipgloss.Color
	highlight lipgloss.Color
	warning   lipgloss.Color
	bg        lipgloss.Color
	bgAlt     lipgloss.Color
	cardBg    lipgloss.Color

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style
	ErrorBanner lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Section     lipgloss.Style
	Empty       lipgloss.Style
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	Badge       lipgloss.Style
	Completion  lipgloss.Style
	CodeBlock   lipgloss.Style
	StatusBar   lipgloss.Style
	NoticeOK    lipgloss.Style
	NoticeErr   lipgloss.Style
	Profile     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Popup       lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(theme config.Theme) Styles {
	s := Styles{
		codeStyle: theme.CodeStyle,
		primary:   lipgloss.Color(theme.TextPrimary),
		secondary: lipgloss.Color(theme.TextSecondary),
		faint:     lipgloss.Color(theme.TextFaint),
		accent:    lipgloss.Color(theme.Accent),
		success:   lipgloss.Color(theme.Success),
		errColor:  lipgloss.Color(theme.Error),
		highlight: lipgloss.Color(theme.Highlight),
		warning:   lipgloss.Color(theme.Warning),
		bg:        lipgloss.Color(theme.BgPrimary),
		bgAlt:     lipgloss.Color(theme.BgSecondary),
		cardBg:    lipgloss.Color(theme.CardBg),
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(s.accent)
	s.Subtitle = lipgloss.NewStyle().Foreground(s.faint).Italic(true)
	s.Label = lipgloss.NewStyle().Bold(true).Foreground(s.secondary)

	s.Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.faint)
	s.InputActive = s.Input.BorderForeground(s.highlight)

	s.ErrorBanner = lipgloss.NewStyle().
		Foreground(s.primary).
		Background(s.errColor).
		Bold(true).
		Padding(0, 1)

	s.Button = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Background(s.accent).
		Foreground(s.bg)
	s.ButtonBusy = s.Button.Background(s.faint).Foreground(s.primary)

	s.Section = lipgloss.NewStyle().Bold(true).Foreground(s.highlight).MarginTop(1)
	s.Empty = lipgloss.NewStyle().Foreground(s.faint).Italic(true)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.faint).
		Padding(0, 1)
	s.CardActive = s.Card.BorderForeground(s.success)
	s.Badge = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(s.success).
		Foreground(s.bg)
	s.Completion = lipgloss.NewStyle().Foreground(s.primary)
	s.CodeBlock = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(s.cardBg)

	s.StatusBar = lipgloss.NewStyle().Foreground(s.primary).Background(s.bgAlt)
	s.NoticeOK = lipgloss.NewStyle().Background(s.success).Foreground(s.bg).Padding(0, 1)
	s.NoticeErr = lipgloss.NewStyle().Background(s.warning).Foreground(s.bg).Padding(0, 1)
	s.Profile = lipgloss.NewStyle().Padding(0, 1).Background(s.cardBg).Foreground(s.primary)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(s.primary).
		Background(s.cardBg).
		Padding(0, 1).
		Bold(true)
	s.HelpDesc = lipgloss.NewStyle().Foreground(s.secondary)

	s.Popup = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.highlight).
		Padding(1, 2)
	return s
}

// Suggestions returns the dropdown styles for this theme
func (s Styles) Suggestions() suggestions.Styles {
	return suggestions.Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(s.faint).
			Padding(0, 1),
		Item: lipgloss.NewStyle().Foreground(s.primary),
		Selected: lipgloss.NewStyle().
			Foreground(s.bg).
			Background(s.highlight).
			Bold(true),
	}
}
