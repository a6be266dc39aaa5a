package highlight

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestSQLKeepsText(t *testing.T) {
	code := "SELECT SUM(profit) FROM orders WHERE order_date >= now() - interval '1 month'"

	out := SQL(code, "nord")

	assert.Contains(t, out, "\x1b[", "output is colored")
	assert.Equal(t, code, ansi.ReplaceAllString(out, ""))
}

func TestSQLUnknownStyleFallsBack(t *testing.T) {
	out := SQL("SELECT 1", "no-such-style")
	assert.Equal(t, "SELECT 1", ansi.ReplaceAllString(out, ""))
}

func TestSQLBlank(t *testing.T) {
	assert.Equal(t, "  ", SQL("  ", "nord"))
}
