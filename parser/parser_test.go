package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/smarts/ast"
)

func TestParseValidPatterns(t *testing.T) {
	testCases := []string{
		"",
		"C",
		"CC",
		"CCO",
		"c1ccccc1",
		"C1CCCCC1",
		"N%10CC%10",
		"C=C",
		"C#N",
		"C~*",
		"C/C=C\\C",
		"C/?C",
		"C!@C",
		"CC(=O)O",
		"C(=O)(O)N",
		"(CC(N)(O)C)",
		"*AaC",
		"[C]",
		"[Cl-]",
		"[CH3]",
		"[Cu+2]",
		"[13CH4]",
		"[C,N;+0]",
		"[!C;R]",
		"[C@H](N)C(=O)O",
		"[$(C=O)]",
		"[$([CX3]=[OX1])]",
		"[#6]",
		"[C:2]",
		"[se]",
		"ClBr",
	}

	for _, in := range testCases {
		pattern, err := Parse(in)
		assert.NoError(t, err, "input %q", in)
		assert.NotNil(t, pattern, "input %q", in)
	}
}

func TestParseEmptyInput(t *testing.T) {
	pattern, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, ast.Pattern{}, pattern)
}

func TestDefaultBondSynthesized(t *testing.T) {
	pattern, err := Parse("CC=O")
	require.NoError(t, err)
	require.Len(t, pattern, 1)

	comp := pattern[0].Component
	require.Len(t, comp, 3)

	assert.True(t, ast.IsDefaultBond(comp[0].Bond))
	assert.True(t, ast.IsDefaultBond(comp[1].Bond))
	assert.Equal(t, ast.Singleton(ast.Bond{Kind: ast.BondDouble}), comp[2].Bond)
}

func TestExplicitSingleBondEqualsDefault(t *testing.T) {
	implicit, err := Parse("CC")
	require.NoError(t, err)
	explicit, err := Parse("C-C")
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit)
}

func TestExpressionPrecedence(t *testing.T) {
	// "C,N;+0" groups as (C OR N) AND (+0).
	pattern, err := Parse("[C,N;+0]")
	require.NoError(t, err)

	want := ast.SpecExpr{
		{
			{{ast.Spec{Kind: ast.SpecElement, Symbol: "C"}}},
			{{ast.Spec{Kind: ast.SpecElement, Symbol: "N"}}},
		},
		{
			{{ast.Spec{Kind: ast.SpecPositiveCharge, Value: 0}}},
		},
	}
	assert.Equal(t, want, pattern[0].Component[0].Atom.Desc)
}

func TestExpressionExplicitAnd(t *testing.T) {
	// "C&X4,N" groups as (C AND X4) OR N inside a single or-clause.
	pattern, err := Parse("[C&X4,N]")
	require.NoError(t, err)

	want := ast.SpecExpr{
		{
			{
				{ast.Spec{Kind: ast.SpecElement, Symbol: "C"}},
				{ast.Spec{Kind: ast.SpecConnectivity, Value: 4}},
			},
			{
				{ast.Spec{Kind: ast.SpecElement, Symbol: "N"}},
			},
		},
	}
	assert.Equal(t, want, pattern[0].Component[0].Atom.Desc)
}

func TestExpressionJuxtaposition(t *testing.T) {
	// Juxtaposed leaves bind tighter than "&".
	pattern, err := Parse("[13CH3&+0]")
	require.NoError(t, err)

	want := ast.SpecExpr{
		{
			{
				{
					ast.Spec{Kind: ast.SpecAtomicMass, Value: 13},
					ast.Spec{Kind: ast.SpecElement, Symbol: "C"},
					ast.Spec{Kind: ast.SpecTotalH, Value: 3},
				},
				{
					ast.Spec{Kind: ast.SpecPositiveCharge, Value: 0},
				},
			},
		},
	}
	assert.Equal(t, want, pattern[0].Component[0].Atom.Desc)
}

func TestRingClosures(t *testing.T) {
	testCases := []struct {
		in    string
		rings []int
	}{
		{"C1", []int{1}},
		{"C12", []int{1, 2}},
		{"C%12", []int{12}},
		{"C%05", []int{5}},
		{"C1%23", []int{1, 23}},
		{"[CH2]1", []int{1}},
	}

	for _, tc := range testCases {
		pattern, err := Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.rings, pattern[0].Component[0].Atom.Rings, "input %q", tc.in)
	}
}

func TestMalformedRingClosure(t *testing.T) {
	for _, in := range []string{"C%1", "C%", "C%x1"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrMalformedRingClosure, "input %q", in)

		var perr *Error
		require.ErrorAs(t, err, &perr, "input %q", in)
		assert.Equal(t, 1, perr.Offset, "input %q", in)
	}
}

func TestRecursivePattern(t *testing.T) {
	pattern, err := Parse("[$(C=O)]")
	require.NoError(t, err)

	want := ast.Pattern{
		{Component: ast.Component{
			{Bond: ast.DefaultBond(), Atom: ast.SpecificAtom{
				Desc: ast.SpecExpr{{{{ast.Spec{
					Kind: ast.SpecRecursive,
					Pattern: ast.Pattern{
						{Component: ast.Component{
							{
								Bond: ast.DefaultBond(),
								Atom: ast.SpecificAtom{Prim: &ast.Primitive{Kind: ast.PrimAtom, Symbol: "C"}},
							},
							{
								Bond: ast.Singleton(ast.Bond{Kind: ast.BondDouble}),
								Atom: ast.SpecificAtom{Prim: &ast.Primitive{Kind: ast.PrimAtom, Symbol: "O"}},
							},
						}},
					},
				}}}}},
			}},
		}},
	}

	if diff := cmp.Diff(want, pattern); diff != "" {
		t.Errorf("pattern mismatch (-want +got):\n%s", diff)
	}
}

func TestRecursiveErrorOffsetIsAbsolute(t *testing.T) {
	// The "%" sits at offset 5 of the whole input.
	_, err := Parse("[$(CC%1)]")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrMalformedRingClosure)
	assert.Equal(t, 5, perr.Offset)
}

func TestMaximalMunch(t *testing.T) {
	pattern, err := Parse("[Cl]")
	require.NoError(t, err)
	leaf := pattern[0].Component[0].Atom.Desc[0][0][0][0]
	assert.Equal(t, ast.Spec{Kind: ast.SpecElement, Symbol: "Cl"}, leaf)

	pattern, err = Parse("Cl")
	require.NoError(t, err)
	assert.Equal(t, &ast.Primitive{Kind: ast.PrimAtom, Symbol: "Cl"}, pattern[0].Component[0].Atom.Prim)

	pattern, err = Parse("[Sc]")
	require.NoError(t, err)
	leaf = pattern[0].Component[0].Atom.Desc[0][0][0][0]
	assert.Equal(t, ast.Spec{Kind: ast.SpecElement, Symbol: "Sc"}, leaf)
}

func TestCompoundBranch(t *testing.T) {
	pattern, err := Parse("C(=O)N")
	require.NoError(t, err)
	require.Len(t, pattern, 3)

	assert.False(t, pattern[0].Compound)
	assert.True(t, pattern[1].Compound)
	assert.Empty(t, pattern[1].Branches)
	assert.False(t, pattern[2].Compound)

	comp := pattern[1].Component
	require.Len(t, comp, 1)
	assert.Equal(t, ast.Singleton(ast.Bond{Kind: ast.BondDouble}), comp[0].Bond)
}

func TestNestedCompoundBranches(t *testing.T) {
	pattern, err := Parse("(CC(N)(O)C)")
	require.NoError(t, err)
	require.Len(t, pattern, 1)

	br := pattern[0]
	assert.True(t, br.Compound)
	assert.Len(t, br.Component, 2)
	require.Len(t, br.Branches, 3)
	assert.True(t, br.Branches[0].Compound)
	assert.True(t, br.Branches[1].Compound)
	assert.False(t, br.Branches[2].Compound)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		in     string
		kind   error
		offset int
	}{
		{"C)", ErrUnexpectedCharacter, 1},
		{"(C", ErrUnexpectedEOF, 2},
		{"()", ErrUnexpectedCharacter, 1},
		{"[C", ErrUnexpectedEOF, 2},
		{"[", ErrUnexpectedEOF, 1},
		{"[]", ErrUnexpectedCharacter, 1},
		{"[Qz]", ErrUnknownSymbol, 1},
		{"[C;]", ErrUnexpectedCharacter, 3},
		{"[C,,N]", ErrUnexpectedCharacter, 3},
		{"[C&]", ErrUnexpectedCharacter, 3},
		{"[#]", ErrUnexpectedCharacter, 2},
		{"[C:x]", ErrUnexpectedCharacter, 3},
		{"[$C]", ErrUnexpectedCharacter, 2},
		{"[$(C]", ErrUnexpectedCharacter, 4},
		{"[$(C", ErrUnexpectedEOF, 4},
	}

	for _, tc := range testCases {
		_, err := Parse(tc.in)
		require.Error(t, err, "input %q", tc.in)
		assert.ErrorIs(t, err, tc.kind, "input %q", tc.in)

		var perr *Error
		require.ErrorAs(t, err, &perr, "input %q", tc.in)
		assert.Equal(t, tc.offset, perr.Offset, "input %q", tc.in)
	}
}

func TestParseIdempotence(t *testing.T) {
	inputs := []string{
		"c1ccccc1",
		"CC(=O)O",
		"[C@H](N)C(=O)O",
		"[$(C=O)]",
		"[!C;R]",
	}

	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		second, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, first, second, "input %q", in)
	}
}
