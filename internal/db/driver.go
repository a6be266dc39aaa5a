// internal/db/driver.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// Column represents table column metadata
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Default  string
	Key      string // PRI, UNI, MUL, FK
}

// ConnectParams holds database connection details
type ConnectParams struct {
	Host      string
	Port      int
	User      string
	Password  string
	Database  string
	SSHConfig *SSHConfig // Optional SSH tunnel config
	Logger    zerolog.Logger
}

// Driver is the read-only introspection surface used to build schema descriptions
type Driver interface {
	Connect(ctx context.Context, params ConnectParams) error
	Close() error
	Ping(ctx context.Context) error
	Type() DriverType
	GetTables(ctx context.Context) ([]string, error)
	GetColumns(ctx context.Context, tableName string) ([]Column, error)
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

func pingDB(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return WrapConnectionError(ErrNotConnected)
	}
	if err := db.PingContext(ctx); err != nil {
		return WrapConnectionError(err)
	}
	return nil
}

// queryStrings runs a single-column query and collects the values
func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	if db == nil {
		return nil, WrapConnectionError(ErrNotConnected)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, WrapQueryError(err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}
	return values, nil
}

// queryColumns runs a query returning name, type, nullable, default, key rows
func queryColumns(ctx context.Context, db *sql.DB, query string, args ...any) ([]Column, error) {
	if db == nil {
		return nil, WrapConnectionError(ErrNotConnected)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.Type, &col.Nullable, &col.Default, &col.Key); err != nil {
			return nil, WrapQueryError(err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}
	return columns, nil
}
