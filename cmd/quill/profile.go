package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nhath/quill/internal/config"
)

var errProfileUsage = errors.New("usage: quill profile add <name> <dsn> | list | delete <name>")

// runProfile manages saved connection profiles
func runProfile(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errProfileUsage
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			return errProfileUsage
		}
		p, err := config.ParseDSN(args[1], args[2])
		if err != nil {
			return err
		}
		if err := cfg.AddProfile(p); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved profile %s (%s)\n", p.Name, p.Address())
		return nil

	case "list":
		if len(cfg.Profiles) == 0 {
			fmt.Fprintln(out, "No profiles")
			return nil
		}
		for i := range cfg.Profiles {
			p := &cfg.Profiles[i]
			marker := " "
			if p.Name == cfg.DefaultProfile {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-16s %-9s %s\n", marker, p.Name, p.Type, p.Address())
		}
		return nil

	case "delete", "rm":
		if len(args) != 2 {
			return errProfileUsage
		}
		if err := cfg.DeleteProfile(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted profile %s\n", args[1])
		return nil
	}
	return errProfileUsage
}
