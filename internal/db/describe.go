// internal/db/describe.go
package db

import (
	"context"
	"fmt"
	"strings"
)

// Table pairs a table name with its columns
type Table struct {
	Name    string
	Columns []Column
}

// DescribeSchema introspects every table reachable through d and renders
// them as a schema description.
func DescribeSchema(ctx context.Context, d Driver) (string, error) {
	names, err := d.GetTables(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoTables
	}

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		cols, err := d.GetColumns(ctx, name)
		if err != nil {
			return "", fmt.Errorf("columns of %s: %w", name, err)
		}
		tables = append(tables, Table{Name: displayName(d.Type(), name), Columns: cols})
	}
	return FormatTables(tables), nil
}

// FormatTables renders tables as blank-line separated blocks:
//
//	Table: orders
//	Columns:
//	- id (bigint, PK)
func FormatTables(tables []Table) string {
	blocks := make([]string, 0, len(tables))
	for _, t := range tables {
		var b strings.Builder
		fmt.Fprintf(&b, "Table: %s\nColumns:", t.Name)
		for _, c := range t.Columns {
			b.WriteString("\n- ")
			b.WriteString(c.Name)
			b.WriteString(" (")
			b.WriteString(columnAttrs(c))
			b.WriteString(")")
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func columnAttrs(c Column) string {
	typ := strings.ToLower(strings.TrimSpace(c.Type))
	if typ == "" {
		typ = "unknown"
	}
	switch strings.ToUpper(c.Key) {
	case "PRI":
		return typ + ", PK"
	case "UNI":
		return typ + ", UNIQUE"
	case "FK":
		return typ + ", FK"
	default:
		return typ
	}
}

// displayName drops the default Postgres schema prefix
func displayName(t DriverType, name string) string {
	if t == Postgres {
		return strings.TrimPrefix(name, "public.")
	}
	return name
}
