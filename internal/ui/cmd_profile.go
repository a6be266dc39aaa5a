package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/config"
)

const schemaLoadTimeout = 30 * time.Second

// loadSchemaCmd introspects the profile's database into a schema description
func (m Model) loadSchemaCmd(p *config.Profile) tea.Cmd {
	loader := m.loadSchema
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), schemaLoadTimeout)
		defer cancel()

		schema, err := loader(ctx, p)
		return SchemaLoadedMsg{Profile: p.Name, Schema: schema, Err: err}
	}
}
