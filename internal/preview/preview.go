// Package preview formats cached declaration bodies for display in a
// picker preview pane. It is a read-only consumer of the index cache.
package preview

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property/value pair recovered from a rule body.
type Declaration struct {
	Property string
	Value    string
}

// Declarations tokenizes a raw rule body into property/value pairs,
// preserving source order. Duplicate properties (a class matched by several
// generated rules) are kept as-is so the preview shows exactly what the
// compiler produced.
func Declarations(body string) []Declaration {
	var decls []Declaration

	lexer := css.NewLexer(parse.NewInputString(body))
	var property string
	var value []string
	flush := func() {
		if property != "" && len(value) > 0 {
			decls = append(decls, Declaration{
				Property: property,
				Value:    strings.TrimSpace(strings.Join(value, "")),
			})
		}
		property = ""
		value = nil
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// EOF or malformed tail; keep whatever was complete
			flush()
			break
		}

		switch {
		case tt == css.IdentToken && property == "":
			property = string(text)
		case tt == css.ColonToken && property != "":
			continue
		case tt == css.SemicolonToken:
			flush()
		case tt == css.WhitespaceToken && strings.Contains(string(text), "\n"):
			// rule bodies accumulated from several blocks are separated
			// by newlines, not semicolons
			flush()
		case property != "":
			value = append(value, string(text))
		}
	}

	return decls
}

// Format renders a rule body as one "property: value;" line per
// declaration, the shape picker previews expect. Empty bodies render as an
// empty string.
func Format(body string, useColors bool) string {
	decls := Declarations(body)
	if len(decls) == 0 {
		return ""
	}

	var b strings.Builder
	for _, d := range decls {
		b.WriteString(renderStyle(stylePropertyName, d.Property, useColors))
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	return b.String()
}
