package ast

// BondKind identifies a bond leaf.
type BondKind uint8

const (
	BondSingle BondKind = iota
	BondDouble
	BondTriple
	BondAromatic
	BondUp
	BondDown
	BondRing
	BondAny
)

var bondKindName = map[BondKind]string{
	BondSingle:   "single",
	BondDouble:   "double",
	BondTriple:   "triple",
	BondAromatic: "aromatic",
	BondUp:       "up",
	BondDown:     "down",
	BondRing:     "ring",
	BondAny:      "any",
}

func (k BondKind) String() string {
	if s, ok := bondKindName[k]; ok {
		return s
	}
	return "invalid"
}

// Bond is a single bond leaf. Presence is meaningful only for the
// directional kinds BondUp and BondDown.
type Bond struct {
	Kind     BondKind `json:"kind"`
	Negation Negation `json:"negation"`
	Presence Presence `json:"presence"`
}

// BondExpr is a boolean expression over bond leaves.
type BondExpr = Expr[Bond]

// DefaultBond returns the expression synthesized when two atoms are
// adjacent with no bond token between them: a non-negated single bond.
func DefaultBond() BondExpr {
	return Singleton(Bond{Kind: BondSingle})
}

// IsDefaultBond reports whether e is exactly the synthesized default
// single-bond expression.
func IsDefaultBond(e BondExpr) bool {
	if len(e) != 1 || len(e[0]) != 1 || len(e[0][0]) != 1 || len(e[0][0][0]) != 1 {
		return false
	}
	return e[0][0][0][0] == Bond{Kind: BondSingle}
}
