package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode renders a pattern back to SMARTS notation. Default single
// bonds are omitted, so Encode(parse(s)) is canonical rather than
// byte-identical to s; reparsing the result yields an identical tree.
func Encode(p Pattern) string {
	var b strings.Builder
	encodePattern(&b, p)
	return b.String()
}

func encodePattern(b *strings.Builder, p Pattern) {
	for _, br := range p {
		encodeBranch(b, br)
	}
}

func encodeBranch(b *strings.Builder, br Branch) {
	if br.Compound {
		b.WriteByte('(')
		encodeComponent(b, br.Component)
		for _, child := range br.Branches {
			encodeBranch(b, child)
		}
		b.WriteByte(')')
		return
	}
	encodeComponent(b, br.Component)
}

func encodeComponent(b *strings.Builder, c Component) {
	for _, link := range c {
		if !IsDefaultBond(link.Bond) {
			encodeExpr(b, link.Bond, encodeBond)
		}
		encodeAtom(b, link.Atom)
	}
}

func encodeExpr[L any](b *strings.Builder, e Expr[L], leaf func(*strings.Builder, L)) {
	for i, or := range e {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, and := range or {
			if j > 0 {
				b.WriteByte(',')
			}
			for k, term := range and {
				if k > 0 {
					b.WriteByte('&')
				}
				for _, l := range term {
					leaf(b, l)
				}
			}
		}
	}
}

var bondSymbol = map[BondKind]string{
	BondSingle:   "-",
	BondDouble:   "=",
	BondTriple:   "#",
	BondAromatic: ":",
	BondUp:       "/",
	BondDown:     "\\",
	BondRing:     "@",
	BondAny:      "~",
}

func encodeBond(b *strings.Builder, bond Bond) {
	if bond.Negation == Negate {
		b.WriteByte('!')
	}
	b.WriteString(bondSymbol[bond.Kind])
	if (bond.Kind == BondUp || bond.Kind == BondDown) && bond.Presence == Unspecified {
		b.WriteByte('?')
	}
}

func encodeAtom(b *strings.Builder, a SpecificAtom) {
	if a.Prim != nil {
		encodePrimitive(b, *a.Prim)
	} else {
		b.WriteByte('[')
		encodeExpr(b, a.Desc, encodeSpec)
		b.WriteByte(']')
	}
	for _, n := range a.Rings {
		if n < 10 {
			b.WriteString(strconv.Itoa(n))
		} else {
			fmt.Fprintf(b, "%%%02d", n)
		}
	}
}

func encodePrimitive(b *strings.Builder, prim Primitive) {
	switch prim.Kind {
	case PrimAny:
		b.WriteByte('*')
	case PrimAnyAliphatic:
		b.WriteByte('A')
	case PrimAnyAromatic:
		b.WriteByte('a')
	default:
		b.WriteString(prim.Symbol)
	}
}

func encodeSpec(b *strings.Builder, s Spec) {
	if s.Negation == Negate {
		b.WriteByte('!')
	}

	switch s.Kind {
	case SpecElement:
		b.WriteString(s.Symbol)
	case SpecDegree:
		b.WriteString("D" + strconv.Itoa(s.Value))
	case SpecTotalH:
		b.WriteString("H" + strconv.Itoa(s.Value))
	case SpecImplicitH:
		b.WriteString("h" + strconv.Itoa(s.Value))
	case SpecRingMembership:
		encodeRingCount(b, "R", s.Value)
	case SpecRingSize:
		encodeRingCount(b, "r", s.Value)
	case SpecRingConnectivity:
		encodeRingCount(b, "x", s.Value)
	case SpecValence:
		b.WriteString("v" + strconv.Itoa(s.Value))
	case SpecConnectivity:
		b.WriteString("X" + strconv.Itoa(s.Value))
	case SpecNegativeCharge:
		b.WriteString("-" + strconv.Itoa(s.Value))
	case SpecPositiveCharge:
		b.WriteString("+" + strconv.Itoa(s.Value))
	case SpecAtomicNumber:
		b.WriteString("#" + strconv.Itoa(s.Value))
	case SpecCounterClockwise:
		b.WriteByte('@')
		if s.Presence == Unspecified {
			b.WriteByte('?')
		}
	case SpecClockwise:
		b.WriteString("@@")
	case SpecChiralityClass:
		b.WriteString("@" + s.Chirality.String())
		if s.Presence == Unspecified {
			b.WriteByte('?')
		}
	case SpecAtomicMass:
		b.WriteString(strconv.Itoa(s.Value))
	case SpecRecursive:
		b.WriteString("$(")
		encodePattern(b, s.Pattern)
		b.WriteByte(')')
	case SpecClass:
		b.WriteString(":" + strconv.Itoa(s.Value))
	}
}

func encodeRingCount(b *strings.Builder, symbol string, value int) {
	b.WriteString(symbol)
	if value >= 0 {
		b.WriteString(strconv.Itoa(value))
	}
}

// Print writes a human-readable tree representation of a pattern.
func Print(w io.Writer, p Pattern) {
	printPattern(w, p, 0)
}

func printPattern(w io.Writer, p Pattern, level int) {
	printf(w, level, "(pattern)[%d]", len(p))
	for _, br := range p {
		printBranch(w, br, level+1)
	}
}

func printBranch(w io.Writer, br Branch, level int) {
	if br.Compound {
		printf(w, level, "(compound)[%d]", len(br.Branches))
	} else {
		printf(w, level, "(linear)")
	}
	for _, link := range br.Component {
		printf(w, level+1, "(link): bond %q", exprString(link.Bond, encodeBond))
		printAtom(w, link.Atom, level+2)
	}
	for _, child := range br.Branches {
		printBranch(w, child, level+1)
	}
}

func printAtom(w io.Writer, a SpecificAtom, level int) {
	if a.Prim != nil {
		printf(w, level, "(%s): %q rings %v", a.Prim.Kind, a.Prim.Symbol, a.Rings)
		return
	}
	printf(w, level, "(description): %q rings %v", exprString(a.Desc, encodeSpec), a.Rings)
	for _, or := range a.Desc {
		for _, and := range or {
			for _, term := range and {
				for _, s := range term {
					if s.Kind == SpecRecursive {
						printPattern(w, s.Pattern, level+1)
					}
				}
			}
		}
	}
}

func exprString[L any](e Expr[L], leaf func(*strings.Builder, L)) string {
	var b strings.Builder
	encodeExpr(&b, e, leaf)
	return b.String()
}

func printf(w io.Writer, level int, format string, args ...interface{}) {
	fmt.Fprint(w, strings.Repeat("    ", level))
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}
