// internal/db/mysql.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	db     *sql.DB
	tunnel *SSHTunnel
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(ctx context.Context, params ConnectParams) error {
	cfg := mysql.NewConfig()
	cfg.User = params.User
	cfg.Passwd = params.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(params.Host, fmt.Sprint(params.Port))
	cfg.DBName = params.Database
	cfg.Timeout = 15 * time.Second

	if params.SSHConfig != nil && params.SSHConfig.Host != "" {
		tunnel, err := NewSSHTunnel(params.SSHConfig, params.Logger)
		if err != nil {
			return WrapConnectionError(fmt.Errorf("failed to create SSH tunnel: %w", err))
		}
		d.tunnel = tunnel

		// Unique network name per connection; the driver keeps registrations forever
		cfg.Net = fmt.Sprintf("mysql+ssh+%d", time.Now().UnixNano())
		mysql.RegisterDialContext(cfg.Net, func(ctx context.Context, addr string) (net.Conn, error) {
			return tunnel.DialContext(ctx, "tcp", addr)
		})
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		d.closeTunnel()
		return WrapConnectionError(err)
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	// sql.OpenDB is lazy
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		d.closeTunnel()
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

func (d *MySQLDriver) closeTunnel() {
	if d.tunnel != nil {
		d.tunnel.Close()
		d.tunnel = nil
	}
}

// Close closes the database connection and SSH tunnel
func (d *MySQLDriver) Close() error {
	var dbErr, tunnelErr error
	if d.db != nil {
		dbErr = d.db.Close()
	}
	if d.tunnel != nil {
		tunnelErr = d.tunnel.Close()
	}
	return errors.Join(dbErr, tunnelErr)
}

// Ping checks if database is reachable
func (d *MySQLDriver) Ping(ctx context.Context) error {
	return pingDB(ctx, d.db)
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}

// GetTables returns a list of tables in the current database
func (d *MySQLDriver) GetTables(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db,
		"SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name")
}

// GetColumns returns detailed column metadata for a table
func (d *MySQLDriver) GetColumns(ctx context.Context, tableName string) ([]Column, error) {
	return queryColumns(ctx, d.db, `
		SELECT
			COLUMN_NAME,
			COLUMN_TYPE,
			IS_NULLABLE = 'YES',
			IFNULL(COLUMN_DEFAULT, ''),
			COLUMN_KEY
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_NAME = ? AND TABLE_SCHEMA = DATABASE()
		ORDER BY ORDINAL_POSITION`, tableName)
}
