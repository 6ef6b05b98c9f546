package forth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumperWritesDictionaryAndStacks(t *testing.T) {
	vm := New(WithTaskCount(1))
	require.NoError(t, vm.Evaluate(": greet 1 2 3 ;"))
	require.NoError(t, vm.Evaluate("greet"))

	var out bytes.Buffer
	d := Dumper{VM: vm, Out: &out}
	d.Dump()

	s := out.String()
	require.Contains(t, s, "# dictionary")
	require.Contains(t, s, "greet")
	require.Contains(t, s, "# data stack:")
	require.Contains(t, s, "[1 2 3]")
	require.Contains(t, s, "# here:")
}

func TestDumperFlagsImmediateAndCompileOnlyWords(t *testing.T) {
	vm := New(WithTaskCount(1))
	var out bytes.Buffer
	d := Dumper{VM: vm, Out: &out}
	d.Dump()

	s := out.String()
	require.Contains(t, s, "immediate", "IF and friends are registered as immediate words")
	require.Contains(t, s, "compile-only")
}
