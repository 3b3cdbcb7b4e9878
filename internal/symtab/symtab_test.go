package symtab_test

import (
	"testing"

	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/symtab"
	"github.com/stretchr/testify/require"
)

func TestDefineAssignsSequentialIndicesPerKind(t *testing.T) {
	st := symtab.New()
	st.Define("x", "int", symtab.Field)
	st.Define("y", "int", symtab.Field)
	st.Define("count", "int", symtab.Static)

	require.Equal(t, 2, st.VarCount(symtab.Field))
	require.Equal(t, 1, st.VarCount(symtab.Static))
	require.Equal(t, 0, st.IndexOf("x"))
	require.Equal(t, 1, st.IndexOf("y"))
	require.Equal(t, 0, st.IndexOf("count"))
}

func TestStartSubroutineResetsOnlyArgumentAndLocal(t *testing.T) {
	st := symtab.New()
	st.Define("field1", "int", symtab.Field)
	st.Define("arg1", "int", symtab.Argument)
	st.Define("local1", "int", symtab.Local)

	st.StartSubroutine()

	require.Equal(t, 1, st.VarCount(symtab.Field), "field counter must survive a subroutine reset")
	require.Equal(t, 0, st.VarCount(symtab.Argument))
	require.Equal(t, 0, st.VarCount(symtab.Local))
	require.Equal(t, symtab.None, st.KindOf("arg1"), "subroutine scope must be cleared")
	require.Equal(t, symtab.Field, st.KindOf("field1"), "class scope survives")
}

func TestLookupPrefersSubroutineScopeOverClassScope(t *testing.T) {
	st := symtab.New()
	st.Define("x", "int", symtab.Field)
	st.StartSubroutine()
	st.Define("x", "boolean", symtab.Local)

	require.Equal(t, symtab.Local, st.KindOf("x"))
	require.Equal(t, "boolean", st.TypeOf("x"))
	require.Equal(t, 0, st.IndexOf("x"))
}

func TestUndeclaredNameYieldsZeroValues(t *testing.T) {
	st := symtab.New()
	require.Equal(t, symtab.None, st.KindOf("ghost"))
	require.Equal(t, "", st.TypeOf("ghost"))
	require.Equal(t, -1, st.IndexOf("ghost"))
}

func TestRedefinitionSilentlyOverwritesAndStillConsumesAnIndex(t *testing.T) {
	st := symtab.New()
	st.Define("x", "int", symtab.Local)
	st.Define("x", "boolean", symtab.Local)

	require.Equal(t, "boolean", st.TypeOf("x"))
	require.Equal(t, 1, st.IndexOf("x"), "redefinition still consumes a fresh index")
	require.Equal(t, 2, st.VarCount(symtab.Local))
}

func TestKindSegmentMapping(t *testing.T) {
	cases := map[symtab.Kind]string{
		symtab.Static:   "static",
		symtab.Field:    "this",
		symtab.Argument: "argument",
		symtab.Local:    "local",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.Segment())
	}
}
