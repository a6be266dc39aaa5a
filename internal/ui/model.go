// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"
	"github.com/rs/zerolog"

	"github.com/nhath/quill/internal/autocomplete"
	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/db"
	"github.com/nhath/quill/internal/history"
	"github.com/nhath/quill/internal/ui/components/suggestions"
)

// HistoryStore is the subset of history.Store the UI uses
type HistoryStore interface {
	Add(entry *history.Entry) error
	List(limit, offset int) ([]history.Entry, error)
	Delete(id int64) error
}

// SchemaLoader renders the schema description of a profile's database
type SchemaLoader func(ctx context.Context, p *config.Profile) (string, error)

// Options wires the model to its collaborators
type Options struct {
	Config    *config.Config
	Completer autocomplete.Completer
	History   HistoryStore // optional
	Clipboard Clipboard    // defaults to the system clipboard
	Logger    zerolog.Logger

	// Profile, when set, is the database whose schema ctrl+r loads
	Profile *config.Profile
	// LoadSchemaOnStart introspects Profile during Init
	LoadSchemaOnStart bool
	// Schema overrides the configured default schema text
	Schema string
	// SchemaLoader defaults to db.DescribeProfile
	SchemaLoader SchemaLoader
}

// Model is the root Bubble Tea model and the suggestion controller
type Model struct {
	// Collaborators
	config     *config.Config
	completer  autocomplete.Completer
	store      HistoryStore
	clipboard  Clipboard
	log        zerolog.Logger
	profile    *config.Profile
	loadSchema SchemaLoader
	initSchema bool

	// Layout
	width, height int
	styles        Styles
	keys          keyMap

	// Form
	question textarea.Model
	schema   textarea.Model
	focus    Field

	// Live suggestions
	suggestions suggestions.Model
	debounceID  int
	suggestSeq  uint64

	// Submission
	submitSeq uint64
	state     RequestState
	options   []autocomplete.Option
	optionIdx int
	spinner   spinner.Model
	results   viewport.Model

	// Transient status notice (clipboard, history, schema)
	notice      string
	noticeIsErr bool
	noticeID    int

	// History popup
	historyOpen    bool
	historyEntries []history.Entry
	historyTable   bbtable.Model

	schemaLoading bool
}

// NewModel creates a new UI model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	styles := NewStyles(cfg.Theme)

	q := newTextArea(styles, "Example: total profit in the last", 2)
	q.Focus()

	schemaText := opts.Schema
	if schemaText == "" {
		schemaText = cfg.DefaultSchema
	}
	s := newTextArea(styles, "Table: ...", 8)
	s.SetValue(schemaText)

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	loader := opts.SchemaLoader
	if loader == nil {
		log := opts.Logger
		loader = func(ctx context.Context, p *config.Profile) (string, error) {
			return db.DescribeProfile(ctx, p, log)
		}
	}

	initSchema := opts.LoadSchemaOnStart && opts.Profile != nil

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.accent)

	return Model{
		config:      cfg,
		completer:   opts.Completer,
		store:       opts.History,
		clipboard:   clip,
		log:         opts.Logger,
		profile:     opts.Profile,
		loadSchema:  loader,
		initSchema:  initSchema,
		styles:      styles,
		keys:        newKeyMap(cfg.Keys),
		question:    q,
		schema:      s,
		focus:       FieldQuestion,
		suggestions: suggestions.New().SetMaxShow(cfg.MaxSuggestions).SetStyles(styles.Suggestions()),
		spinner:     sp,
		results:     viewport.New(80, 10),

		schemaLoading: initSchema,
	}
}

func newTextArea(styles Styles, placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 10000
	ta.SetHeight(height)
	ta.SetWidth(80)
	ta.ShowLineNumbers = false
	// Keep the cursor line transparent
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.faint)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.faint)
	return ta
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.initSchema {
		cmds = append(cmds, m.loadSchemaCmd(m.profile))
	}
	return tea.Batch(cmds...)
}

// Question returns the current question draft
func (m Model) Question() string {
	return m.question.Value()
}

// Schema returns the current schema description
func (m Model) Schema() string {
	return m.schema.Value()
}

// State returns the submission request state
func (m Model) State() RequestState {
	return m.state
}

// Results returns the displayed query options
func (m Model) Results() []autocomplete.Option {
	return m.options
}

// Suggestions returns the displayed live suggestions
func (m Model) Suggestions() []string {
	if !m.suggestions.Visible() {
		return nil
	}
	return m.suggestions.Items()
}

// Notice returns the transient status notice
func (m Model) Notice() string {
	return m.notice
}
