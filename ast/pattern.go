package ast

// PrimKind identifies a bare (unbracketed) atom.
type PrimKind uint8

const (
	PrimAtom PrimKind = iota
	PrimAny
	PrimAnyAliphatic
	PrimAnyAromatic
)

var primKindName = map[PrimKind]string{
	PrimAtom:         "atom",
	PrimAny:          "any",
	PrimAnyAliphatic: "any-aliphatic",
	PrimAnyAromatic:  "any-aromatic",
}

func (k PrimKind) String() string {
	if s, ok := primKindName[k]; ok {
		return s
	}
	return "invalid"
}

// Primitive is a bare atom: a wildcard or an organic-subset symbol.
type Primitive struct {
	Kind   PrimKind `json:"kind"`
	Symbol string   `json:"symbol,omitempty"`
}

// SpecificAtom is either a bare primitive atom or a bracketed
// description; exactly one of Prim and Desc is set. Rings holds the
// ring-closure indices that follow the atom.
type SpecificAtom struct {
	Prim  *Primitive `json:"prim,omitempty"`
	Desc  SpecExpr   `json:"desc,omitempty"`
	Rings []int      `json:"rings,omitempty"`
}

// Link pairs the bond leading into an atom with the atom itself. The
// bond expression of a link whose bond was textually absent is the
// synthesized default single bond, never empty.
type Link struct {
	Bond BondExpr     `json:"bond"`
	Atom SpecificAtom `json:"atom"`
}

// Component is a non-empty chain of links.
type Component []Link

// Branch is one element of a pattern. A compound branch is a
// parenthesized side-chain: its component is the anchor and Branches
// are the continuations from that anchor. A linear branch is a bare
// component with Compound false and no children.
type Branch struct {
	Component Component `json:"component"`
	Branches  []Branch  `json:"branches,omitempty"`
	Compound  bool      `json:"compound,omitempty"`
}

// Pattern is the parsed query: an ordered sequence of branches. Order
// is significant, and an empty pattern (from empty input) is valid.
type Pattern []Branch
