package ui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

// Clipboard writes text to the platform clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses xclip/xsel/wl-copy, pbcopy or the Windows API
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// copyToClipboardCmd copies text to the clipboard off the update loop
func (m Model) copyToClipboardCmd(text string) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			return ClipboardCopiedMsg{Err: err}
		}
		return ClipboardCopiedMsg{Text: text}
	}
}

// expireNoticeCmd clears the notice with the given ID after noticeTTL
func expireNoticeCmd(id int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
