package ast

import (
	"github.com/xiam/smarts/atom"
)

// SpecKind identifies an atom-property leaf inside brackets.
type SpecKind uint8

const (
	SpecElement SpecKind = iota
	SpecDegree
	SpecTotalH
	SpecImplicitH
	SpecRingMembership
	SpecRingSize
	SpecValence
	SpecConnectivity
	SpecRingConnectivity
	SpecNegativeCharge
	SpecPositiveCharge
	SpecAtomicNumber
	SpecCounterClockwise
	SpecClockwise
	SpecChiralityClass
	SpecAtomicMass
	SpecRecursive
	SpecClass
)

var specKindName = map[SpecKind]string{
	SpecElement:          "element",
	SpecDegree:           "degree",
	SpecTotalH:           "total-h",
	SpecImplicitH:        "implicit-h",
	SpecRingMembership:   "ring-membership",
	SpecRingSize:         "ring-size",
	SpecValence:          "valence",
	SpecConnectivity:     "connectivity",
	SpecRingConnectivity: "ring-connectivity",
	SpecNegativeCharge:   "negative-charge",
	SpecPositiveCharge:   "positive-charge",
	SpecAtomicNumber:     "atomic-number",
	SpecCounterClockwise: "counterclockwise",
	SpecClockwise:        "clockwise",
	SpecChiralityClass:   "chirality-class",
	SpecAtomicMass:       "atomic-mass",
	SpecRecursive:        "recursive",
	SpecClass:            "class",
}

func (k SpecKind) String() string {
	if s, ok := specKindName[k]; ok {
		return s
	}
	return "invalid"
}

// Spec is one atom-property leaf. Which fields are meaningful depends
// on Kind: Symbol for SpecElement, Value for the numeric kinds,
// Chirality and Presence for the chirality kinds, Pattern for
// SpecRecursive. A value of -1 on the ring kinds means "any nonzero".
type Spec struct {
	Kind      SpecKind            `json:"kind"`
	Negation  Negation            `json:"negation"`
	Symbol    string              `json:"symbol,omitempty"`
	Value     int                 `json:"value,omitempty"`
	Chirality atom.ChiralityClass `json:"chirality,omitempty"`
	Presence  Presence            `json:"presence,omitempty"`
	Pattern   Pattern             `json:"pattern,omitempty"`
}

// SpecExpr is a boolean expression over atom-property leaves.
type SpecExpr = Expr[Spec]
