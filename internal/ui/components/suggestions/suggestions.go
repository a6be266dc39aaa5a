// Package suggestions provides the live-completion dropdown shown under the
// question field.
package suggestions

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the suggestions dropdown
type Styles struct {
	Box      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4C566A")).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D8DEE9")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E3440")).
			Background(lipgloss.Color("#8FBCBB")),
	}
}

// Model represents the suggestions state
type Model struct {
	items    []string
	selected int
	visible  bool
	maxItems int
	styles   Styles
}

// New creates a new suggestions model holding at most 5 items
func New() Model {
	return Model{
		maxItems: 5,
		styles:   DefaultStyles(),
	}
}

// SetItems replaces the items, keeping at most the configured maximum
func (m Model) SetItems(items []string) Model {
	if m.maxItems > 0 && len(items) > m.maxItems {
		items = items[:m.maxItems]
	}
	m.items = items
	m.selected = 0
	if len(items) == 0 {
		m.visible = false
	}
	return m
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetMaxShow sets the maximum number of items kept. n <= 0 is ignored.
func (m Model) SetMaxShow(n int) Model {
	if n > 0 {
		m.maxItems = n
	}
	return m
}

// Show makes the dropdown visible if it has items
func (m Model) Show() Model {
	m.visible = len(m.items) > 0
	return m
}

// Hide hides the dropdown
func (m Model) Hide() Model {
	m.visible = false
	m.selected = 0
	return m
}

// Visible returns visibility state
func (m Model) Visible() bool {
	return m.visible
}

// Selected returns the selected index
func (m Model) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item string
func (m Model) SelectedItem() string {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected]
	}
	return ""
}

// Items returns all items
func (m Model) Items() []string {
	return m.items
}

// Len returns number of items
func (m Model) Len() int {
	return len(m.items)
}

// MoveUp moves selection up
func (m Model) MoveUp() Model {
	if m.selected > 0 {
		m.selected--
	}
	return m
}

// MoveDown moves selection down
func (m Model) MoveDown() Model {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
	return m
}

// View renders the dropdown at the given width
func (m Model) View(width int) string {
	if !m.visible || len(m.items) == 0 {
		return ""
	}

	inner := width - m.styles.Box.GetHorizontalFrameSize() - 2
	views := make([]string, 0, len(m.items))
	for i, item := range m.items {
		style := m.styles.Item
		prefix := "  "
		if i == m.selected {
			style = m.styles.Selected
			prefix = "▸ "
		}
		if inner > 4 && lipgloss.Width(item) > inner {
			item = truncate(item, inner)
		}
		views = append(views, style.Render(prefix+item))
	}

	return m.styles.Box.Render(strings.Join(views, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
