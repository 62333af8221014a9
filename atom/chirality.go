package atom

import (
	"strconv"
	"strings"
)

// ChiralityClass identifies one of the named chirality geometries.
type ChiralityClass uint8

// The closed set of chirality classes, in notation order: tetrahedral,
// allenal, square-planar, trigonal-bipyramidal and octahedral families.
const (
	TH1 ChiralityClass = iota
	TH2
	AL1
	AL2
	SP1
	SP2
	SP3
	TB1
	TB2
	TB3
	TB4
	TB5
	TB6
	TB7
	TB8
	TB9
	TB10
	TB11
	TB12
	TB13
	TB14
	TB15
	TB16
	TB17
	TB18
	TB19
	TB20
	OH1
	OH2
	OH3
	OH4
	OH5
	OH6
	OH7
	OH8
	OH9
	OH10
	OH11
	OH12
	OH13
	OH14
	OH15
	OH16
	OH17
	OH18
	OH19
	OH20
	OH21
	OH22
	OH23
	OH24
	OH25
	OH26
	OH27
	OH28
	OH29
	OH30

	numChiralityClasses
)

var chiralityFamilies = []struct {
	prefix string
	base   ChiralityClass
	max    int
}{
	{"TH", TH1, 2},
	{"AL", AL1, 2},
	{"SP", SP1, 3},
	{"TB", TB1, 20},
	{"OH", OH1, 30},
}

func (c ChiralityClass) String() string {
	for _, f := range chiralityFamilies {
		n := int(c-f.base) + 1
		if n >= 1 && n <= f.max {
			return f.prefix + strconv.Itoa(n)
		}
	}
	return "invalid"
}

// MatchChirality matches a chirality-class code at the start of s,
// preferring longer codes ("TB10" before "TB1"). It returns the class
// and the length of the matched code.
func MatchChirality(s string) (ChiralityClass, int, bool) {
	for _, f := range chiralityFamilies {
		if !strings.HasPrefix(s, f.prefix) {
			continue
		}
		for n := f.max; n >= 1; n-- {
			code := f.prefix + strconv.Itoa(n)
			if strings.HasPrefix(s, code) {
				return f.base + ChiralityClass(n-1), len(code), true
			}
		}
	}
	return 0, 0, false
}
