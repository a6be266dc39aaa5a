package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/quill/internal/ui/icons"
)

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Schema source
	if m.profile != nil {
		label := fmt.Sprintf("%s %s", icons.GetDatabaseIcon(m.profile.Type), m.profile.Name)
		parts = append(parts, m.styles.Profile.Render(label))
	} else {
		parts = append(parts, m.styles.Profile.Render("manual schema"))
	}

	// 2. Schema loading
	if m.schemaLoading {
		loading := lipgloss.NewStyle().Foreground(m.styles.highlight).Padding(0, 1)
		parts = append(parts, loading.Render(m.spinner.View()+" Loading schema..."))
	}

	// 3. Option position
	if len(m.options) > 1 {
		pos := lipgloss.NewStyle().Foreground(m.styles.secondary).Padding(0, 1)
		parts = append(parts, pos.Render(fmt.Sprintf("%d/%d", m.optionIdx+1, len(m.options))))
	}

	// 4. Transient notice
	if m.notice != "" {
		if m.noticeIsErr {
			parts = append(parts, m.styles.NoticeErr.Render(icons.IconError+" "+m.notice))
		} else {
			parts = append(parts, m.styles.NoticeOK.Render(icons.IconSuccess+" "+m.notice))
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return m.styles.StatusBar.Width(m.width).Render(content)
}
