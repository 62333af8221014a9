package parser

import (
	"github.com/xiam/smarts/ast"
	"github.com/xiam/smarts/atom"
)

// parseSpec parses one atom-property leaf inside brackets. The element
// table is consulted first; the one-letter property codes are disjoint
// from it by construction (the table carries no lone "H"), so the
// remaining alternatives dispatch on their defining symbol.
func (p *Parser) parseSpec() (ast.Spec, error) {
	save := p.pos
	neg := p.parseNegation()

	if sym, ok := atom.Match(atom.Symbols, p.rest()); ok {
		p.pos += len(sym)
		return ast.Spec{Kind: ast.SpecElement, Negation: neg, Symbol: sym}, nil
	}

	switch p.peek() {
	case 'D':
		p.pos++
		return p.countSpec(ast.SpecDegree, neg, 1), nil
	case 'H':
		p.pos++
		return p.countSpec(ast.SpecTotalH, neg, 1), nil
	case 'h':
		p.pos++
		return p.countSpec(ast.SpecImplicitH, neg, 1), nil
	case 'R':
		p.pos++
		return p.countSpec(ast.SpecRingMembership, neg, -1), nil
	case 'r':
		p.pos++
		return p.countSpec(ast.SpecRingSize, neg, -1), nil
	case 'v':
		p.pos++
		return p.countSpec(ast.SpecValence, neg, 1), nil
	case 'X':
		p.pos++
		return p.countSpec(ast.SpecConnectivity, neg, 1), nil
	case 'x':
		p.pos++
		return p.countSpec(ast.SpecRingConnectivity, neg, -1), nil
	case '-':
		p.pos++
		return p.countSpec(ast.SpecNegativeCharge, neg, 1), nil
	case '+':
		p.pos++
		return p.countSpec(ast.SpecPositiveCharge, neg, 1), nil
	case '#':
		p.pos++
		n, ok := p.parseInt()
		if !ok {
			return ast.Spec{}, p.unexpected("digits after '#'")
		}
		return ast.Spec{Kind: ast.SpecAtomicNumber, Negation: neg, Value: n}, nil
	case '@':
		return p.parseChirality(neg)
	case '$':
		return p.parseRecursive(neg)
	case ':':
		// The atom-map class takes no negation.
		if neg == ast.Negate {
			break
		}
		p.pos++
		n, ok := p.parseInt()
		if !ok {
			return ast.Spec{}, p.unexpected("digits after ':'")
		}
		return ast.Spec{Kind: ast.SpecClass, Value: n}, nil
	}

	// A bare integer is an atomic mass, as in [13C].
	if n, ok := p.parseInt(); ok {
		return ast.Spec{Kind: ast.SpecAtomicMass, Negation: neg, Value: n}, nil
	}

	p.pos = save
	return ast.Spec{}, errNoMatch
}

// countSpec finishes a numeric leaf whose digits are optional,
// substituting the variant's documented default when absent.
func (p *Parser) countSpec(kind ast.SpecKind, neg ast.Negation, def int) ast.Spec {
	n, ok := p.parseInt()
	if !ok {
		n = def
	}
	return ast.Spec{Kind: kind, Negation: neg, Value: n}
}

// parseChirality resolves the "@" sub-grammar: an optional second "@",
// an optional chirality-class code, an optional "?". A class code or a
// "?" after "@@" is a syntax error.
func (p *Parser) parseChirality(neg ast.Negation) (ast.Spec, error) {
	start := p.pos
	p.pos++ // "@"
	double := p.accept('@')

	if cls, n, ok := atom.MatchChirality(p.rest()); ok {
		if double {
			return ast.Spec{}, p.errorAt(start, ErrInvalidChirality, "no class code after '@@'")
		}
		p.pos += n
		return ast.Spec{
			Kind:      ast.SpecChiralityClass,
			Negation:  neg,
			Chirality: cls,
			Presence:  p.parsePresence(),
		}, nil
	}

	if double {
		if p.peek() == '?' {
			return ast.Spec{}, p.errorAt(start, ErrInvalidChirality, "no '?' after '@@'")
		}
		return ast.Spec{Kind: ast.SpecClockwise, Negation: neg}, nil
	}

	return ast.Spec{Kind: ast.SpecCounterClockwise, Negation: neg, Presence: p.parsePresence()}, nil
}

// parseRecursive parses "$(" Pattern ")". The embedded pattern goes
// through the ordinary top-level grammar on the same cursor, so error
// offsets stay absolute in the original string.
func (p *Parser) parseRecursive(neg ast.Negation) (ast.Spec, error) {
	p.pos++ // "$"
	if !p.accept('(') {
		return ast.Spec{}, p.unexpected("'(' after '$'")
	}

	pattern, err := p.parsePattern()
	if err != nil {
		return ast.Spec{}, err
	}

	if !p.accept(')') {
		return ast.Spec{}, p.unexpected("')'")
	}
	return ast.Spec{Kind: ast.SpecRecursive, Negation: neg, Pattern: pattern}, nil
}
