package parser

import (
	"errors"

	"github.com/xiam/smarts/ast"
)

// parseBondExpr parses the bond expression leading into an atom. When
// the input holds no bond token at all the synthesized default single
// bond is substituted; the bracketed atom grammar has no equivalent
// default, and the asymmetry is deliberate.
func (p *Parser) parseBondExpr() (ast.BondExpr, error) {
	expr, err := parseExpression(p, (*Parser).parseBond)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return ast.DefaultBond(), nil
		}
		return nil, err
	}
	return expr, nil
}

// parseBond parses a single bond leaf: an optional "!", the bond
// symbol, and for the directional bonds an optional trailing "?".
func (p *Parser) parseBond() (ast.Bond, error) {
	save := p.pos
	neg := p.parseNegation()

	var kind ast.BondKind
	switch {
	case p.accept('='):
		kind = ast.BondDouble
	case p.accept('#'):
		kind = ast.BondTriple
	case p.accept(':'):
		kind = ast.BondAromatic
	case p.accept('/'):
		kind = ast.BondUp
	case p.accept('\\'):
		kind = ast.BondDown
	case p.accept('@'):
		kind = ast.BondRing
	case p.accept('~'):
		kind = ast.BondAny
	case p.accept('-'):
		kind = ast.BondSingle
	default:
		p.pos = save
		return ast.Bond{}, errNoMatch
	}

	bond := ast.Bond{Kind: kind, Negation: neg}
	if kind == ast.BondUp || kind == ast.BondDown {
		bond.Presence = p.parsePresence()
	}
	return bond, nil
}
