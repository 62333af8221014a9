package ast

// The four-level boolean sublanguage shared by bond and atom
// expressions. Precedence, tightest to loosest: juxtaposition,
// "&", ",", ";". Every level holds at least one element; an empty
// level is a parse failure, never a vacuous truth.

// Expr is a ";"-joined conjunction of or-clauses; all must hold.
type Expr[L any] []OrClause[L]

// OrClause is a ","-joined disjunction; any alternative may hold.
type OrClause[L any] []AndClause[L]

// AndClause is a "&"-joined conjunction; all terms must hold.
type AndClause[L any] []Term[L]

// Term is a run of juxtaposed leaves, the tightest-binding AND.
type Term[L any] []L

// Singleton wraps one leaf into a full four-level expression.
func Singleton[L any](leaf L) Expr[L] {
	return Expr[L]{{{{leaf}}}}
}
