// cmd/quill/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nhath/quill/internal/autocomplete"
	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/history"
	"github.com/nhath/quill/internal/ui"
)

func main() {
	// Parse flags
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	profileName := flag.String("profile", "", "Load the schema from a saved connection profile")
	dsn := flag.String("dsn", "", "Load the schema from a database URL (not saved)")
	serviceURL := flag.String("url", "", "Autocomplete service URL (overrides config and "+config.EnvAPIURL+")")
	noHistory := flag.Bool("no-history", false, "Do not record submissions")
	flag.Usage = usage
	flag.Parse()

	// A missing .env file is fine
	_ = godotenv.Load()

	// Setup logging if debug enabled
	logger := zerolog.Nop()
	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("fatal: could not open debug log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = newLogger(f)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if flag.Arg(0) == "profile" {
		if err := runProfile(cfg, flag.Args()[1:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	profile, err := resolveProfile(cfg, *profileName, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	baseURL := *serviceURL
	if baseURL == "" {
		baseURL = cfg.ServiceURL()
	}
	client, err := autocomplete.NewClient(autocomplete.Config{
		BaseURL: baseURL,
		Timeout: cfg.Timeout(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid service URL: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("endpoint", client.Endpoint()).Msg("starting")

	opts := ui.Options{
		Config:            cfg,
		Completer:         client,
		Logger:            logger,
		Profile:           profile,
		LoadSchemaOnStart: profile != nil,
	}

	// Initialize history store
	if !*noHistory {
		historyStore, err := history.NewStore(cfg.HistoryLimit)
		if err != nil {
			logger.Warn().Err(err).Msg("history disabled")
		} else {
			defer historyStore.Close()
			opts.History = historyStore
		}
	}

	p := tea.NewProgram(ui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// resolveProfile picks the schema source: -dsn, then -profile, then the
// configured default profile.
func resolveProfile(cfg *config.Config, name, dsn string) (*config.Profile, error) {
	if dsn != "" {
		p, err := config.ParseDSN("dsn", dsn)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}
	if name == "" {
		name = cfg.DefaultProfile
	}
	if name == "" {
		return nil, nil
	}
	return cfg.GetProfile(name)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "  quill [flags]\n")
	fmt.Fprintf(out, "  quill profile add <name> <dsn>\n")
	fmt.Fprintf(out, "  quill profile list\n")
	fmt.Fprintf(out, "  quill profile delete <name>\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}
