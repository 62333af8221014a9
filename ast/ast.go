// Package ast defines the value tree produced by parsing a SMARTS
// pattern. The tree is built in one pass and never mutated afterwards.
package ast

// Negation marks whether a leaf is negated with "!".
type Negation uint8

const (
	Pass Negation = iota
	Negate
)

func (n Negation) String() string {
	if n == Negate {
		return "negate"
	}
	return "pass"
}

// Presence marks whether a directional-bond or chirality property must
// definitely hold, or is merely unconfirmed (trailing "?").
type Presence uint8

const (
	Present Presence = iota
	Unspecified
)

func (p Presence) String() string {
	if p == Unspecified {
		return "unspecified"
	}
	return "present"
}
