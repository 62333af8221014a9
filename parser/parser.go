// Package parser implements the recursive-descent SMARTS parser. The
// grammar is a set of ordered alternatives over an input cursor; an
// alternative that does not match restores the cursor and reports a
// soft failure, while malformed constructs (unterminated brackets, bad
// ring closures, invalid chirality) abort the whole parse with an
// offset-carrying error.
package parser

import (
	"errors"
	"strconv"

	"github.com/xiam/smarts/ast"
)

// Parser holds the input and the cursor position. It has no state
// beyond those two fields; concurrent parses on separate Parser values
// are safe.
type Parser struct {
	src string
	pos int
}

// New returns a parser over src.
func New(src string) *Parser {
	return &Parser{src: src}
}

// Parse parses a complete SMARTS pattern. The whole input must be
// consumed; trailing text fails with ErrUnexpectedCharacter at its
// offset.
func Parse(src string) (ast.Pattern, error) {
	p := New(src)

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.unexpected("")
	}
	return pattern, nil
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *Parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) accept(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) rest() string {
	return p.src[p.pos:]
}

func (p *Parser) digit() (int, bool) {
	if !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		d := int(p.src[p.pos] - '0')
		p.pos++
		return d, true
	}
	return 0, false
}

func (p *Parser) parseInt() (int, bool) {
	start := p.pos
	for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, _ := strconv.Atoi(p.src[start:p.pos])
	return n, true
}

func (p *Parser) parseNegation() ast.Negation {
	if p.accept('!') {
		return ast.Negate
	}
	return ast.Pass
}

func (p *Parser) parsePresence() ast.Presence {
	if p.accept('?') {
		return ast.Unspecified
	}
	return ast.Present
}

// parsePattern parses zero or more branches. Empty input is a valid,
// empty pattern.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	pattern := ast.Pattern{}
	for {
		save := p.pos
		br, err := p.parseBranch()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = save
				return pattern, nil
			}
			return nil, err
		}
		pattern = append(pattern, br)
	}
}

// parseBranch tries a compound (parenthesized) branch first and falls
// back to a bare linear component.
func (p *Parser) parseBranch() (ast.Branch, error) {
	if p.accept('(') {
		comp, err := p.parseComponent()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return ast.Branch{}, p.unexpected("component after '('")
			}
			return ast.Branch{}, err
		}

		var children []ast.Branch
		for {
			save := p.pos
			child, err := p.parseBranch()
			if err != nil {
				if errors.Is(err, errNoMatch) {
					p.pos = save
					break
				}
				return ast.Branch{}, err
			}
			children = append(children, child)
		}

		if !p.accept(')') {
			return ast.Branch{}, p.unexpected("')'")
		}
		return ast.Branch{Component: comp, Branches: children, Compound: true}, nil
	}

	comp, err := p.parseComponent()
	if err != nil {
		return ast.Branch{}, err
	}
	return ast.Branch{Component: comp}, nil
}

// parseComponent parses one or more (bond, atom) links. A link whose
// bond is textually absent gets the synthesized default single bond.
func (p *Parser) parseComponent() (ast.Component, error) {
	var comp ast.Component
	for {
		save := p.pos

		bond, err := p.parseBondExpr()
		if err != nil {
			return nil, err
		}

		a, err := p.parseSpecificAtom()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = save
				break
			}
			return nil, err
		}

		comp = append(comp, ast.Link{Bond: bond, Atom: a})
	}

	if len(comp) == 0 {
		return nil, errNoMatch
	}
	return comp, nil
}
