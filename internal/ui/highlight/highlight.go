// Package highlight renders SQL with terminal syntax colors.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// SQL returns code colored with the named chroma style using 256-color ANSI
// sequences. Unknown styles fall back to chroma's default; on any
// tokenizer error the input is returned unchanged.
func SQL(code, styleName string) string {
	if strings.TrimSpace(code) == "" {
		return code
	}

	lexer := lexers.Get("sql")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, it); err != nil {
		return code
	}
	return strings.TrimRight(b.String(), "\n")
}
