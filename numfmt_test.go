package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCellBase(t *testing.T) {
	require.Equal(t, "255", formatCellBase(255, 10))
	require.Equal(t, "ff", formatCellBase(255, 16))
	require.Equal(t, "-7", formatCellBase(-7, 10))
	require.Equal(t, "255", formatCellBase(255, 0), "an out-of-range base falls back to decimal")
	require.Equal(t, "255", formatCellBase(255, 37))
}

// numericPicture drives <# #S SIGN #> the way a signed "." word would: the
// magnitude goes through #S, the original (possibly negative) value is kept
// aside and handed to SIGN afterwards, the way gothird's bootstrap idiom
// saves it on the return stack before DABS.
func numericPicture(t *testing.T, vm *VM, task *Task, orig Cell) string {
	t.Helper()
	abs := orig
	if abs < 0 {
		abs = -abs
	}
	require.NoError(t, primLessNum(vm, task))
	require.NoError(t, task.Data.Push(abs))
	require.NoError(t, primNumSignS(vm, task))
	require.NoError(t, task.Data.Push(orig))
	require.NoError(t, primSign(vm, task))
	require.NoError(t, primNumGT(vm, task))

	n, err := task.Data.Pop()
	require.NoError(t, err)
	addr, err := task.Data.Pop()
	require.NoError(t, err)
	return string(vm.DS.GetBytes(Addr(addr), int(n)))
}

func TestNumericPictureWordsPositive(t *testing.T) {
	vm := New(WithTaskCount(1))
	require.Equal(t, "123", numericPicture(t, vm, vm.CurrentTask(), 123))
}

func TestNumericPictureWordsNegative(t *testing.T) {
	vm := New(WithTaskCount(1))
	require.Equal(t, "-42", numericPicture(t, vm, vm.CurrentTask(), -42))
}

func TestNumericPictureWordsZero(t *testing.T) {
	vm := New(WithTaskCount(1))
	require.Equal(t, "0", numericPicture(t, vm, vm.CurrentTask(), 0))
}

func TestHoldAppendsRawCharacterBeforeDigits(t *testing.T) {
	vm := New(WithTaskCount(1))
	task := vm.CurrentTask()

	require.NoError(t, primLessNum(vm, task))
	require.NoError(t, task.Data.Push(0))
	require.NoError(t, primNumSignS(vm, task)) // holds a single "0" digit, leaves the remainder (0) on the stack
	require.NoError(t, task.Data.Push(Cell('x')))
	require.NoError(t, primHold(vm, task)) // appends 'x' after the digit already held
	require.NoError(t, primNumGT(vm, task))

	n, err := task.Data.Pop()
	require.NoError(t, err)
	addr, err := task.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, "x0", string(vm.DS.GetBytes(Addr(addr), int(n))), "#> reverses hold order, so a char held after a digit prints before it")
}
