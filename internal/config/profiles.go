// internal/config/profiles.go
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Profile is a database connection used to generate schema descriptions
type Profile struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"` // postgres, mysql, sqlite
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Database string `toml:"database"`
	// Password is kept in memory only
	Password string `toml:"-"`
	// EncryptedPassword is the one persisted in the config file
	EncryptedPassword string `toml:"password,omitempty"`

	// SSH Tunnel Configuration
	SSHHost     string `toml:"ssh_host,omitempty"`
	SSHPort     int    `toml:"ssh_port,omitempty"`
	SSHUser     string `toml:"ssh_user,omitempty"`
	SSHPassword string `toml:"-"`
	SSHKeyPath  string `toml:"ssh_key_path,omitempty"`

	EncryptedSSHPassword string `toml:"ssh_password,omitempty"`
}

// GetProfile retrieves a profile by name
func (c *Config) GetProfile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile not found: %s", name)
}

// AddProfile adds a new profile and persists the config
func (c *Config) AddProfile(p Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	for _, existing := range c.Profiles {
		if existing.Name == p.Name {
			return fmt.Errorf("profile already exists: %s", p.Name)
		}
	}
	c.Profiles = append(c.Profiles, p)
	return c.Save()
}

// DeleteProfile removes a profile and persists the config
func (c *Config) DeleteProfile(name string) error {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			if c.DefaultProfile == name {
				c.DefaultProfile = ""
			}
			return c.Save()
		}
	}
	return fmt.Errorf("profile not found: %s", name)
}

// ListProfiles returns all profile names
func (c *Config) ListProfiles() []string {
	names := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		names[i] = p.Name
	}
	return names
}

// Address returns a password-free URI for display
func (p *Profile) Address() string {
	switch p.Type {
	case "postgres":
		return fmt.Sprintf("postgres://%s@%s:%d/%s", p.User, p.Host, p.Port, p.Database)
	case "mysql":
		return fmt.Sprintf("mysql://%s@%s:%d/%s", p.User, p.Host, p.Port, p.Database)
	case "sqlite":
		return fmt.Sprintf("sqlite://%s", p.Database)
	default:
		return ""
	}
}

// ParseDSN parses a connection string into a Profile
func ParseDSN(name, dsn string) (Profile, error) {
	p := Profile{Name: name}

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return parseNetworkDSN(p, "postgres", dsn, 5432)
	case strings.HasPrefix(dsn, "mysql://"):
		return parseNetworkDSN(p, "mysql", dsn, 3306)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		p.Type = "sqlite"
		path := strings.TrimPrefix(dsn, "sqlite://")
		p.Database = strings.TrimPrefix(path, "file:")
	default:
		// Bare paths are SQLite files
		p.Type = "sqlite"
		p.Database = dsn
	}
	if p.Database == "" {
		return p, fmt.Errorf("empty database path in %q", dsn)
	}
	return p, nil
}

func parseNetworkDSN(p Profile, kind, dsn string, defaultPort int) (Profile, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return p, err
	}
	p.Type = kind
	p.Host = u.Hostname()
	p.Port = defaultPort
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return p, fmt.Errorf("invalid port %q: %w", port, err)
		}
		p.Port = n
	}
	p.User = u.User.Username()
	p.Password, _ = u.User.Password()
	p.Database = strings.TrimPrefix(u.Path, "/")
	return p, nil
}
