package parser

import (
	"errors"

	"github.com/xiam/smarts/ast"
	"github.com/xiam/smarts/atom"
)

// parseSpecificAtom parses either a bracketed atom description or a
// bare primitive atom, each followed by any ring-closure indices. Once
// "[" is consumed the description is committed; a bracket that cannot
// be completed is a hard error.
func (p *Parser) parseSpecificAtom() (ast.SpecificAtom, error) {
	if p.accept('[') {
		expr, err := parseExpression(p, (*Parser).parseSpec)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return ast.SpecificAtom{}, p.failInBracket("atom specification")
			}
			return ast.SpecificAtom{}, err
		}

		if !p.accept(']') {
			return ast.SpecificAtom{}, p.failInBracket("']'")
		}

		rings, err := p.parseRingClosures()
		if err != nil {
			return ast.SpecificAtom{}, err
		}
		return ast.SpecificAtom{Desc: expr, Rings: rings}, nil
	}

	prim, err := p.parsePrimitive()
	if err != nil {
		return ast.SpecificAtom{}, err
	}

	rings, err := p.parseRingClosures()
	if err != nil {
		return ast.SpecificAtom{}, err
	}
	return ast.SpecificAtom{Prim: &prim, Rings: rings}, nil
}

// failInBracket classifies a failure inside "[...]": a letter that
// matched no table entry is an unknown symbol, anything else is an
// unexpected character or end of input.
func (p *Parser) failInBracket(expecting string) error {
	if p.eof() {
		return p.errorAt(p.pos, ErrUnexpectedEOF, expecting)
	}
	if isLetter(p.peek()) {
		return p.errorAt(p.pos, ErrUnknownSymbol, expecting)
	}
	return p.errorAt(p.pos, ErrUnexpectedCharacter, expecting)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parsePrimitive parses a bare atom: a wildcard or an organic-subset
// element symbol.
func (p *Parser) parsePrimitive() (ast.Primitive, error) {
	switch {
	case p.accept('*'):
		return ast.Primitive{Kind: ast.PrimAny}, nil
	case p.accept('A'):
		return ast.Primitive{Kind: ast.PrimAnyAliphatic}, nil
	case p.accept('a'):
		return ast.Primitive{Kind: ast.PrimAnyAromatic}, nil
	}

	sym, ok := atom.Match(atom.OrganicSubset, p.rest())
	if !ok {
		return ast.Primitive{}, errNoMatch
	}
	p.pos += len(sym)
	return ast.Primitive{Kind: ast.PrimAtom, Symbol: sym}, nil
}

// parseRingClosures parses the ring-closure indices after an atom: a
// single digit, or "%" followed by exactly two digits.
func (p *Parser) parseRingClosures() ([]int, error) {
	var rings []int
	for {
		switch c := p.peek(); {
		case c >= '0' && c <= '9':
			p.pos++
			rings = append(rings, int(c-'0'))

		case c == '%':
			start := p.pos
			p.pos++
			hi, okHi := p.digit()
			lo, okLo := p.digit()
			if !okHi || !okLo {
				return nil, p.errorAt(start, ErrMalformedRingClosure, "two digits after '%'")
			}
			rings = append(rings, hi*10+lo)

		default:
			return rings, nil
		}
	}
}
