package forth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack(4)
	require.True(t, s.IsEmpty())
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.Equal(t, 2, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, Cell(2), v)

	v, err = s.Last()
	require.NoError(t, err)
	require.Equal(t, Cell(1), v)
}

func TestStackCapacityClamped(t *testing.T) {
	require.Equal(t, MinStackCapacity, NewStack(0).Cap())
	require.Equal(t, MaxStackCapacity, NewStack(1<<20).Cap())
}

func TestStackOverflowUnderflow(t *testing.T) {
	s := NewStack(MinStackCapacity)
	for s.SpaceLeft() > 0 {
		require.NoError(t, s.Push(0))
	}
	err := s.Push(1)
	require.Error(t, err)
	require.True(t, errors.Is(err, Error{Kind: ErrStackOverflow}))

	empty := NewStack(4)
	_, err = empty.Pop()
	require.True(t, errors.Is(err, Error{Kind: ErrStackUnderflow}))
}

func TestStackPush2IsAtomic(t *testing.T) {
	s := NewStack(4)
	require.NoError(t, s.Push(0))
	require.NoError(t, s.Push(0))
	require.NoError(t, s.Push(0))
	// only one slot left: push2 must fail and leave the stack untouched
	err := s.Push2(1, 2)
	require.Error(t, err)
	require.Equal(t, 3, s.Len())
}

func TestStackPush3Pop3Order(t *testing.T) {
	s := NewStack(8)
	require.NoError(t, s.Push3(10, 20, 30))
	top, err := s.Last()
	require.NoError(t, err)
	require.Equal(t, Cell(30), top, "Push3(a,b,c) must leave c on top")

	a, b, c, err := s.Pop3()
	require.NoError(t, err)
	require.Equal(t, Cell(10), a)
	require.Equal(t, Cell(20), b)
	require.Equal(t, Cell(30), c)
}

func TestStackGetSet(t *testing.T) {
	s := NewStack(8)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.NoError(t, s.Push(3))

	v, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, Cell(3), v, "Get(0) is top of stack")

	v, err = s.Get(2)
	require.NoError(t, err)
	require.Equal(t, Cell(1), v)

	require.NoError(t, s.Set(0, 99))
	v, err = s.Last()
	require.NoError(t, err)
	require.Equal(t, Cell(99), v)
}

func TestFloatStack(t *testing.T) {
	fs := NewFloatStack(4)
	require.NoError(t, fs.Push(1.5))
	require.NoError(t, fs.Push(2.5))
	v, err := fs.Pop()
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.True(t, errors.Is(mustFloatUnderflow(fs), Error{Kind: ErrFloatStackUnderflow}))
}

func mustFloatUnderflow(fs *FloatStack) error {
	fs.Clear()
	_, err := fs.Pop()
	return err
}
