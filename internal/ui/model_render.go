package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/quill/internal/ui/highlight"
)

const (
	appTitle    = "Natural Language SQL Autocomplete"
	appSubtitle = "Start typing a question in plain English and see autocomplete suggestions with matching SQL queries, based on your schema."
	emptyText   = "No suggestions yet. Start typing a question and submit to see autocomplete completions and SQL queries."
)

// layout resizes the inputs to the window
func (m Model) layout() Model {
	inner := m.contentWidth() - m.styles.Input.GetHorizontalFrameSize()
	m.question.SetWidth(inner)
	m.schema.SetWidth(inner)

	schemaHeight := 8
	if m.height > 0 && m.height < 36 {
		schemaHeight = 4
	}
	m.schema.SetHeight(schemaHeight)

	m.results.Width = m.contentWidth()
	return m.refreshResults()
}

func (m Model) contentWidth() int {
	w := m.width - 2
	if w > 120 {
		w = 120
	}
	if w < 20 {
		w = 20
	}
	return w
}

// refreshResults re-renders the result cards into the viewport
func (m Model) refreshResults() Model {
	if len(m.options) == 0 {
		m.results.SetContent("")
		return m
	}

	cardWidth := m.contentWidth() - m.styles.Card.GetHorizontalFrameSize()
	cards := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		style := m.styles.Card
		if i == m.optionIdx {
			style = m.styles.CardActive
		}

		header := m.styles.Badge.Render(fmt.Sprintf("Option %d", i+1))
		if i == m.optionIdx {
			header += "  " + m.styles.HelpDesc.Render(m.keys.Copy.Help().Key+" Copy SQL")
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.styles.Completion.Width(cardWidth).Render(opt.CompletionText),
			"",
			m.styles.CodeBlock.Render(highlight.SQL(opt.SQLQuery, m.styles.codeStyle)),
		)
		cards = append(cards, style.Width(cardWidth).Render(body))
	}
	m.results.SetContent(strings.Join(cards, "\n"))
	m.results.GotoTop()
	return m
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	width := m.contentWidth()

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(appTitle),
		m.styles.Subtitle.Width(width).Render(appSubtitle),
	)

	form := []string{
		"",
		m.styles.Label.Render("Your partially typed question"),
		m.inputStyle(FieldQuestion).Render(m.question.View()),
	}
	if s := m.suggestions.View(width); s != "" {
		form = append(form, s)
	}
	form = append(form,
		m.styles.Label.Render("Schema description"),
		m.inputStyle(FieldSchema).Render(m.schema.View()),
	)
	if msg := m.state.Error(); msg != "" {
		form = append(form, m.styles.ErrorBanner.Render("⚠ "+msg))
	}
	form = append(form, m.renderButton())

	top := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, form...)...)
	section := m.styles.Section.Render("Autocomplete Suggestions")
	statusBar := m.renderStatusBar()
	help := m.renderHelp()

	chrome := lipgloss.Height(top) + lipgloss.Height(section) + lipgloss.Height(statusBar) + lipgloss.Height(help)
	resultsHeight := m.height - chrome
	if resultsHeight < 3 {
		resultsHeight = 3
	}

	var results string
	switch {
	case len(m.options) > 0:
		m.results.Height = resultsHeight
		results = m.results.View()
	case m.state.Kind == Loading:
		results = lipgloss.NewStyle().Height(resultsHeight).Render(m.spinner.View() + " " + LabelSubmitLoading)
	default:
		results = lipgloss.NewStyle().Height(resultsHeight).Render(m.styles.Empty.Width(width).Render(emptyText))
	}

	main := lipgloss.JoinVertical(lipgloss.Left, top, section, results, statusBar, help)

	if m.historyOpen {
		main = m.renderHistoryPopup(main)
	}
	return main
}

func (m Model) inputStyle(f Field) lipgloss.Style {
	if m.focus == f {
		return m.styles.InputActive
	}
	return m.styles.Input
}

func (m Model) renderButton() string {
	if m.state.Kind == Loading {
		return m.styles.ButtonBusy.Render(m.spinner.View() + " " + LabelSubmitLoading)
	}
	return m.styles.Button.Render(LabelSubmit)
}
