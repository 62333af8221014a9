// Package atom holds the element-symbol tables and the chirality-class
// enumeration shared by the SMARTS grammar.
package atom

import (
	"fmt"
	"strings"
)

// OrganicSubset lists the element symbols accepted outside brackets.
// Two-letter symbols come before any one-letter symbol they start with,
// so that a prefix match against the table in order picks the longest
// symbol ("Cl" before "C", "Br" before "B").
var OrganicSubset = []string{
	"Cl", "Br",
	"B", "C", "N", "O", "S", "P", "F", "I",
	"b", "c", "n", "o", "s", "p",
}

// Symbols lists every element symbol accepted inside brackets, including
// the lowercase aromatic forms. All two-letter symbols precede all
// one-letter symbols, which keeps the table safe for maximal-munch
// matching. The lone "H" is deliberately absent: inside brackets a bare
// H is the attached-hydrogen count, not hydrogen the element.
var Symbols = []string{
	"He", "Li", "Be", "Ne", "Na", "Mg", "Al", "Si", "Cl", "Ar",
	"Ca", "Sc", "Ti", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Zr", "Nb",
	"Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb",
	"Te", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm",
	"Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu", "Hf",
	"Ta", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi",
	"Po", "At", "Rn", "Fr", "Ra", "Ac", "Th", "Pa", "Np", "Pu",
	"Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr", "Rf",
	"Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl",
	"Mc", "Lv", "Ts", "Og",
	"se", "as",
	"B", "C", "N", "O", "F", "P", "S", "K", "V", "W", "Y", "U", "I",
	"b", "c", "n", "o", "p", "s",
}

// Match returns the first table entry that is a prefix of s. With a
// table ordered per CheckOrder this is a maximal-munch match.
func Match(table []string, s string) (string, bool) {
	for _, sym := range table {
		if strings.HasPrefix(s, sym) {
			return sym, true
		}
	}
	return "", false
}

// CheckOrder reports an error if any table entry is a proper prefix of
// a later entry, which would make Match pick the shorter symbol and
// leave the tail of the longer one behind.
func CheckOrder(table []string) error {
	for i, short := range table {
		for _, long := range table[i+1:] {
			if long != short && strings.HasPrefix(long, short) {
				return fmt.Errorf("symbol table: %q listed before %q", short, long)
			}
		}
	}
	return nil
}
