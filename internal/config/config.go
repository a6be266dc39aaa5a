// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// EnvAPIURL overrides Service.BaseURL when set.
const EnvAPIURL = "QUILL_API_URL"

// DefaultSchema is the sample schema shown on first start
const DefaultSchema = `Table: orders
Columns:
- id (bigint, PK)
- user_id (bigint)
- total_amount (numeric)
- profit (numeric)
- order_date (timestamp)`

// LookupFunc resolves environment variables
type LookupFunc func(string) (string, bool)

// Config represents the application configuration
type Config struct {
	DefaultProfile string        `toml:"default_profile"`
	DefaultSchema  string        `toml:"default_schema"`
	DebounceMs     int           `toml:"debounce_ms"`
	MinQuestionLen int           `toml:"min_question_len"`
	MaxSuggestions int           `toml:"max_suggestions"`
	HistoryLimit   int           `toml:"history_limit"`
	Service        ServiceConfig `toml:"service"`
	Display        DisplayConfig `toml:"display"`
	Profiles       []Profile     `toml:"profiles"`
	Theme          Theme         `toml:"theme_colors"`
	Keys           KeyMap        `toml:"keys"`

	path        string
	urlOverride string
}

// ServiceConfig locates the remote autocomplete service
type ServiceConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DisplayConfig controls how submission results are shown
type DisplayConfig struct {
	// ShowAllOptions renders every valid option instead of only the top one.
	ShowAllOptions bool `toml:"show_all_options"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
	CodeStyle     string `toml:"code_style"` // chroma style name
}

// KeyMap defines key bindings
type KeyMap struct {
	Submit       []string `toml:"submit"`
	Copy         []string `toml:"copy"`
	SwitchFocus  []string `toml:"switch_focus"`
	NextOption   []string `toml:"next_option"`
	PrevOption   []string `toml:"prev_option"`
	History      []string `toml:"history"`
	ReloadSchema []string `toml:"reload_schema"`
	Quit         []string `toml:"quit"`
}

// Debounce returns the live-suggestion debounce delay
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Timeout returns the per-request timeout for the autocomplete service
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: "",
		DefaultSchema:  DefaultSchema,
		DebounceMs:     500,
		MinQuestionLen: 3,
		MaxSuggestions: 5,
		HistoryLimit:   500,
		Service: ServiceConfig{
			BaseURL:        "https://quill-sql-autocomplete.onrender.com",
			TimeoutSeconds: 30,
		},
		Profiles: []Profile{},
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
			CodeStyle:     "nord",
		},
		Keys: KeyMap{
			Submit:       []string{"ctrl+s"},
			Copy:         []string{"ctrl+y"},
			SwitchFocus:  []string{"tab", "shift+tab"},
			NextOption:   []string{"ctrl+n"},
			PrevOption:   []string{"ctrl+p"},
			History:      []string{"ctrl+h"},
			ReloadSchema: []string{"ctrl+r"},
			Quit:         []string{"ctrl+c"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("quill/config.toml")
}

// Load loads the config from the XDG path, creating it on first run, and
// applies environment overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path, os.LookupEnv)
}

// LoadFrom loads the config at path. A missing file is created with defaults.
func LoadFrom(path string, lookup LookupFunc) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		cfg.applyEnv(lookup)
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.path = path

	// Populate defaults for missing fields (migration)
	if cfg.fillDefaults() {
		// Persist so the user can see/edit the new keys; proceed in memory on failure
		_ = cfg.Save()
	}

	cfg.decryptPasswords()

	cfg.applyEnv(lookup)
	return &cfg, nil
}

func (c *Config) fillDefaults() bool {
	defaults := DefaultConfig()
	updated := false

	if strings.TrimSpace(c.DefaultSchema) == "" {
		c.DefaultSchema = defaults.DefaultSchema
		updated = true
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = defaults.DebounceMs
		updated = true
	}
	if c.MinQuestionLen <= 0 {
		c.MinQuestionLen = defaults.MinQuestionLen
		updated = true
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = defaults.MaxSuggestions
		updated = true
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaults.HistoryLimit
		updated = true
	}
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = defaults.Service.BaseURL
		updated = true
	}
	if c.Service.TimeoutSeconds <= 0 {
		c.Service.TimeoutSeconds = defaults.Service.TimeoutSeconds
		updated = true
	}
	if c.Theme.TextPrimary == "" {
		c.Theme = defaults.Theme
		updated = true
	}
	if c.Theme.CodeStyle == "" {
		c.Theme.CodeStyle = defaults.Theme.CodeStyle
		updated = true
	}
	if len(c.Keys.Submit) == 0 {
		c.Keys = defaults.Keys
		updated = true
	}
	return updated
}

func (c *Config) applyEnv(lookup LookupFunc) {
	if lookup == nil {
		return
	}
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		c.urlOverride = strings.TrimSpace(v)
	}
}

// ServiceURL returns the autocomplete base URL, honoring the environment override
func (c *Config) ServiceURL() string {
	if c.urlOverride != "" {
		return c.urlOverride
	}
	return c.Service.BaseURL
}

func (c *Config) hasSecrets() bool {
	for _, p := range c.Profiles {
		if p.Password != "" || p.SSHPassword != "" || p.EncryptedPassword != "" || p.EncryptedSSHPassword != "" {
			return true
		}
	}
	return false
}

func (c *Config) decryptPasswords() {
	if !c.hasSecrets() {
		return
	}
	key, err := GetMasterKey()
	if err != nil {
		// Keyring unavailable: profiles load without passwords
		return
	}
	for i := range c.Profiles {
		if c.Profiles[i].EncryptedPassword != "" {
			if decrypted, err := Decrypt(c.Profiles[i].EncryptedPassword, key); err == nil {
				c.Profiles[i].Password = decrypted
			}
		}
		if c.Profiles[i].EncryptedSSHPassword != "" {
			if decrypted, err := Decrypt(c.Profiles[i].EncryptedSSHPassword, key); err == nil {
				c.Profiles[i].SSHPassword = decrypted
			}
		}
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
		c.path = p
	}

	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// Owner read/write only: the file may hold encrypted passwords
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if c.hasSecrets() {
		if key, err := GetMasterKey(); err == nil {
			for i := range c.Profiles {
				if c.Profiles[i].Password != "" {
					if encrypted, err := Encrypt(c.Profiles[i].Password, key); err == nil {
						c.Profiles[i].EncryptedPassword = encrypted
					}
				}
				if c.Profiles[i].SSHPassword != "" {
					if encrypted, err := Encrypt(c.Profiles[i].SSHPassword, key); err == nil {
						c.Profiles[i].EncryptedSSHPassword = encrypted
					}
				}
			}
		}
	}

	return toml.NewEncoder(f).Encode(c)
}
