package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTables(t *testing.T) {
	out := FormatTables([]Table{
		{
			Name: "orders",
			Columns: []Column{
				{Name: "id", Type: "BIGINT", Key: "PRI"},
				{Name: "user_id", Type: "bigint", Key: "FK"},
				{Name: "code", Type: "varchar(20)", Key: "UNI"},
				{Name: "region", Type: "text", Key: "MUL"},
				{Name: "note", Type: ""},
			},
		},
		{Name: "empty"},
	})

	assert.Equal(t, `Table: orders
Columns:
- id (bigint, PK)
- user_id (bigint, FK)
- code (varchar(20), UNIQUE)
- region (text)
- note (unknown)

Table: empty
Columns:`, out)
}

func TestPostgresDescribeStripsPublicSchema(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("FROM pg_class c").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("analytics.events").
			AddRow("public.orders"))

	colRows := []string{"column_name", "data_type", "nullable", "default_value", "key_type"}
	mock.ExpectQuery("FROM pg_attribute a").
		WithArgs("analytics.events").
		WillReturnRows(sqlmock.NewRows(colRows).
			AddRow("id", "uuid", false, "gen_random_uuid()", "PRI"))
	mock.ExpectQuery("FROM pg_attribute a").
		WithArgs("public.orders").
		WillReturnRows(sqlmock.NewRows(colRows).
			AddRow("id", "bigint", false, "", "PRI").
			AddRow("profit", "numeric(12,2)", true, "", ""))

	desc, err := DescribeSchema(context.Background(), &PostgresDriver{db: conn})
	require.NoError(t, err)
	assert.Equal(t, `Table: analytics.events
Columns:
- id (uuid, PK)

Table: orders
Columns:
- id (bigint, PK)
- profit (numeric(12,2))`, desc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLGetColumns(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("FROM INFORMATION_SCHEMA.COLUMNS").
		WithArgs("customers").
		WillReturnRows(sqlmock.NewRows([]string{"COLUMN_NAME", "COLUMN_TYPE", "nullable", "default", "COLUMN_KEY"}).
			AddRow("id", "int unsigned", false, "", "PRI").
			AddRow("email", "varchar(255)", false, "", "UNI"))

	cols, err := (&MySQLDriver{db: conn}).GetColumns(context.Background(), "customers")
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "id", Type: "int unsigned", Key: "PRI"},
		{Name: "email", Type: "varchar(255)", Key: "UNI"},
	}, cols)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeSchemaErrors(t *testing.T) {
	t.Run("query failure is a QueryError", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		boom := errors.New("permission denied")
		mock.ExpectQuery("information_schema.tables").WillReturnError(boom)

		_, err = DescribeSchema(context.Background(), &MySQLDriver{db: conn})
		var qErr *QueryError
		require.ErrorAs(t, err, &qErr)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no tables", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectQuery("information_schema.tables").
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

		_, err = DescribeSchema(context.Background(), &MySQLDriver{db: conn})
		assert.ErrorIs(t, err, ErrNoTables)
	})
}
