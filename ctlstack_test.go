package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestControlStackPushPopOrder(t *testing.T) {
	cs := NewControlStack(4)
	require.NoError(t, cs.push(ctlEntry{kind: ctlIf, addr: 1}))
	require.NoError(t, cs.push(ctlEntry{kind: ctlBegin, addr: 2}))
	require.Equal(t, 2, cs.Len())

	top, err := cs.pop()
	require.NoError(t, err)
	require.Equal(t, ctlBegin, top.kind)

	bottom, err := cs.pop()
	require.NoError(t, err)
	require.Equal(t, ctlIf, bottom.kind)
	require.True(t, cs.IsEmpty())
}

func TestControlStackPopEmptyUnderflows(t *testing.T) {
	cs := NewControlStack(4)
	_, err := cs.pop()
	require.Error(t, err)
	require.True(t, isErrKind(err, ErrControlStackUnderflow))
}

func TestControlStackPopExpectMismatchReportsBothKinds(t *testing.T) {
	cs := NewControlStack(4)
	require.NoError(t, cs.push(ctlEntry{kind: ctlBegin}))
	_, err := cs.popExpect(ctlIf, "then")
	require.Error(t, err)
	require.Contains(t, err.Error(), "then")
	require.Contains(t, err.Error(), "if")
	require.Contains(t, err.Error(), "begin")
}

func TestControlStackPopExpectOnEmptyNamesTheCloser(t *testing.T) {
	cs := NewControlStack(4)
	_, err := cs.popExpect(ctlIf, "then")
	require.Error(t, err)
	require.True(t, isErrKind(err, ErrControlStackUnderflow))
	require.Contains(t, err.Error(), "then")
}

func TestControlStackPeekDoesNotRemove(t *testing.T) {
	cs := NewControlStack(4)
	require.NoError(t, cs.push(ctlEntry{kind: ctlDo, addr: 5}))
	top, err := cs.peek()
	require.NoError(t, err)
	require.Equal(t, Addr(5), top.addr)
	require.Equal(t, 1, cs.Len(), "peek must not pop")
}

func TestControlStackOverflow(t *testing.T) {
	cs := NewControlStack(MinStackCapacity)
	for i := 0; i < MinStackCapacity; i++ {
		require.NoError(t, cs.push(ctlEntry{kind: ctlIf}))
	}
	err := cs.push(ctlEntry{kind: ctlIf})
	require.Error(t, err)
	require.True(t, isErrKind(err, ErrStackOverflow))
}

func TestControlStackClear(t *testing.T) {
	cs := NewControlStack(4)
	cs.push(ctlEntry{kind: ctlIf})
	cs.push(ctlEntry{kind: ctlBegin})
	cs.Clear()
	require.True(t, cs.IsEmpty())
}

func TestCtlKindString(t *testing.T) {
	require.Equal(t, "if", ctlIf.String())
	require.Equal(t, "else", ctlElse.String())
	require.Equal(t, "begin", ctlBegin.String())
	require.Equal(t, "while", ctlWhile.String())
	require.Equal(t, "do", ctlDo.String())
}

func isErrKind(err error, kind ErrKind) bool {
	e, ok := err.(Error)
	return ok && e.Kind == kind
}
