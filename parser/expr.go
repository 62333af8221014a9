package parser

import (
	"errors"

	"github.com/xiam/smarts/ast"
)

// The four-level boolean expression engine, generic over the leaf
// parser. Precedence, tightest to loosest: juxtaposition, "&", ",",
// ";". Once a separator is consumed the following unit is committed:
// its absence is a hard error, never a backtrack.

func parseExpression[L any](p *Parser, leaf func(*Parser) (L, error)) (ast.Expr[L], error) {
	first, err := parseOrClause(p, leaf)
	if err != nil {
		return nil, err
	}

	expr := ast.Expr[L]{first}
	for p.accept(';') {
		clause, err := parseOrClause(p, leaf)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("expression after ';'")
			}
			return nil, err
		}
		expr = append(expr, clause)
	}
	return expr, nil
}

func parseOrClause[L any](p *Parser, leaf func(*Parser) (L, error)) (ast.OrClause[L], error) {
	first, err := parseAndClause(p, leaf)
	if err != nil {
		return nil, err
	}

	clause := ast.OrClause[L]{first}
	for p.accept(',') {
		alt, err := parseAndClause(p, leaf)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("expression after ','")
			}
			return nil, err
		}
		clause = append(clause, alt)
	}
	return clause, nil
}

func parseAndClause[L any](p *Parser, leaf func(*Parser) (L, error)) (ast.AndClause[L], error) {
	first, err := parseTerm(p, leaf)
	if err != nil {
		return nil, err
	}

	clause := ast.AndClause[L]{first}
	for p.accept('&') {
		term, err := parseTerm(p, leaf)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("expression after '&'")
			}
			return nil, err
		}
		clause = append(clause, term)
	}
	return clause, nil
}

func parseTerm[L any](p *Parser, leaf func(*Parser) (L, error)) (ast.Term[L], error) {
	var term ast.Term[L]
	for {
		l, err := leaf(p)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				break
			}
			return nil, err
		}
		term = append(term, l)
	}

	if len(term) == 0 {
		return nil, errNoMatch
	}
	return term, nil
}
