package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskSetSourceResetsCursorAndNesting(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.PushSource("nested", "unused")
	task.State.SourceIndex = 3

	task.SetSource("top", "1 2 3")
	require.Equal(t, 0, task.State.SourceIndex)
	require.Equal(t, 0, task.State.SourceID)
	require.Equal(t, "1 2 3", task.currentText())
}

func TestTaskPushPopSourceRestoresPosition(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("outer", "abc def")
	word, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "abc", word)

	task.PushSource("inner", "xyz")
	require.Equal(t, "xyz", task.currentText())
	require.Equal(t, 1, task.State.SourceID)

	inner, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "xyz", inner)

	_, ok = task.parseWord()
	require.False(t, ok, "inner frame is exhausted")
	require.True(t, task.popSource())
	require.Equal(t, "outer", task.sources[len(task.sources)-1].name)

	rest, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "def", rest, "outer frame resumes exactly where it left off")
}

func TestTaskPopSourceFailsOnLastFrame(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("only", "x")
	require.False(t, task.popSource())
}

func TestTaskHasPendingInput(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	require.False(t, task.hasPendingInput(), "a task with no source at all has nothing pending")

	task.SetSource("s", "  hello   ")
	require.True(t, task.hasPendingInput())

	task.parseWord()
	require.False(t, task.hasPendingInput(), "trailing whitespace alone is not pending input")

	task.PushSource("nested", "")
	require.True(t, task.hasPendingInput(), "a nested frame beneath the current one always counts as pending")
}

func TestTaskClearStacksLeavesInterpreterStateAlone(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.Data.Push(1)
	task.Return.Push(2)
	task.Float.Push(3.0)
	task.State.IsCompiling = true
	task.State.IP = 42

	task.ClearStacks()
	require.True(t, task.Data.IsEmpty())
	require.True(t, task.Return.IsEmpty())
	require.True(t, task.Float.IsEmpty())
	require.True(t, task.State.IsCompiling, "ClearStacks does not touch interpreter state")
	require.Equal(t, Addr(42), task.State.IP)
}

func TestTaskQuitResetsEverything(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "1 2 3")
	task.Return.Push(7)
	task.State.IsCompiling = true
	task.State.IP = 10

	task.Quit()
	require.True(t, task.Return.IsEmpty())
	require.Nil(t, task.sources)
	require.False(t, task.State.IsCompiling)
	require.Equal(t, Addr(0), task.State.IP)
}
