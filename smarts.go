// Package smarts parses SMARTS substructure-query patterns into an
// immutable abstract syntax tree.
package smarts

import (
	"github.com/xiam/smarts/ast"
	"github.com/xiam/smarts/parser"
)

// Parse parses a SMARTS pattern. On failure it returns a *parser.Error
// carrying the byte offset of the first point of failure.
func Parse(src string) (ast.Pattern, error) {
	return parser.Parse(src)
}

// MustParse is like Parse but panics on error. Intended for patterns
// known valid at compile time.
func MustParse(src string) ast.Pattern {
	pattern, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return pattern
}
