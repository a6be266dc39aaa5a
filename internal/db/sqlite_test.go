// internal/db/sqlite_test.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/quill/internal/config"
)

func createShopDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.db")

	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`
		CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT NOT NULL);
		CREATE TABLE orders (
			id INTEGER PRIMARY KEY,
			user_id BIGINT REFERENCES users(id),
			total_amount NUMERIC NOT NULL DEFAULT 0
		);
		INSERT INTO users (email) VALUES ('a@example.com');
	`)
	require.NoError(t, err)
	return path
}

func TestSQLiteDriverDescribe(t *testing.T) {
	path := createShopDB(t)
	ctx := context.Background()

	d := &SQLiteDriver{}
	require.NoError(t, d.Connect(ctx, ConnectParams{Database: path}))
	defer d.Close()
	require.NoError(t, d.Ping(ctx))

	tables, err := d.GetTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, tables, "sqlite_sequence is hidden")

	cols, err := d.GetColumns(ctx, "orders")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, "PRI", cols[0].Key)
	assert.False(t, cols[2].Nullable)
	assert.Equal(t, "0", cols[2].Default)

	desc, err := DescribeSchema(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, `Table: orders
Columns:
- id (integer, PK)
- user_id (bigint)
- total_amount (numeric)

Table: users
Columns:
- id (integer, PK)
- email (text)`, desc)
}

func TestSQLiteDriverMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	err := (&SQLiteDriver{}).Connect(context.Background(), ConnectParams{Database: path})

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoFileExists(t, path)
}

func TestSQLiteDriverNotConnected(t *testing.T) {
	d := &SQLiteDriver{}
	assert.ErrorIs(t, d.Ping(context.Background()), ErrNotConnected)

	_, err := d.GetTables(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestDescribeProfileSQLite(t *testing.T) {
	path := createShopDB(t)
	p, err := config.ParseDSN("shop", "sqlite://"+path)
	require.NoError(t, err)

	desc, err := DescribeProfile(context.Background(), &p, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, desc, "Table: orders")
	assert.Contains(t, desc, "- email (text)")
}

func TestDescribeProfileUnknownType(t *testing.T) {
	_, err := DescribeProfile(context.Background(), &config.Profile{Name: "x", Type: "oracle"}, zerolog.Nop())
	assert.Error(t, err)
}
