package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionaryAddFind(t *testing.T) {
	var d Dictionary
	var sym symbols

	id := d.AddPrimitive(&sym, 0, "dup", opDup)
	require.Equal(t, WordID(1), id)
	require.Equal(t, id, d.Find(&sym, "DUP"), "find is case-insensitive")
	require.Equal(t, WordID(0), d.Find(&sym, "nope"))
}

func TestDictionaryFlags(t *testing.T) {
	var d Dictionary
	var sym symbols

	imm := d.AddImmediate(&sym, 0, "if", opIfImm)
	require.True(t, d.Word(imm).Immediate())
	require.False(t, d.Word(imm).CompileOnly())

	co := d.AddCompileOnly(&sym, 0, "lit", opLit)
	require.True(t, d.Word(co).CompileOnly())
	require.False(t, d.Word(co).Immediate())

	both := d.AddImmediateAndCompileOnly(&sym, 0, ";", opSemicolon)
	w := d.Word(both)
	require.True(t, w.Immediate())
	require.True(t, w.CompileOnly())
}

func TestDictionaryHiddenWordIsNotFound(t *testing.T) {
	var d Dictionary
	var sym symbols

	id := d.add(Word{Symbol: sym.symbolicate("foo"), Flags: FlagHidden})
	require.Equal(t, WordID(0), d.Find(&sym, "foo"))

	w := d.Word(id)
	w.Flags &^= FlagHidden
	d.SetWord(id, w)
	require.Equal(t, id, d.Find(&sym, "foo"))
}

func TestDictionaryFindPrefersNewestDefinition(t *testing.T) {
	var d Dictionary
	var sym symbols

	first := d.AddPrimitive(&sym, 0, "x", opDup)
	second := d.AddPrimitive(&sym, 0, "x", opDrop)
	require.Equal(t, second, d.Find(&sym, "x"))
	require.NotEqual(t, first, second)
}

func TestDictionaryTruncate(t *testing.T) {
	var d Dictionary
	var sym symbols

	d.AddPrimitive(&sym, 0, "a", opDup)
	mark := d.Len()
	d.AddPrimitive(&sym, 0, "b", opDrop)
	d.AddPrimitive(&sym, 0, "c", opSwap)

	d.Truncate(mark)
	require.Equal(t, mark, d.Len())
	require.Equal(t, WordID(0), d.Find(&sym, "b"))
	require.NotEqual(t, WordID(0), d.Find(&sym, "a"))
}

func TestSymbolsCaseInsensitiveLookupCasePreservingStorage(t *testing.T) {
	var sym symbols
	id := sym.symbolicate("DUP")
	require.Equal(t, id, sym.symbol("dup"))
	require.Equal(t, "DUP", sym.string(id), "original casing is preserved for display")
}

func TestSymbolsTruncate(t *testing.T) {
	var sym symbols
	sym.symbolicate("a")
	mark := sym.len()
	sym.symbolicate("b")
	sym.truncate(mark)
	require.Equal(t, mark, sym.len())
	require.Equal(t, uint32(0), sym.symbol("b"))
}
