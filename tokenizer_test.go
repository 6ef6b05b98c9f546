package forth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWordSkipsLeadingAndTrailingWhitespace(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "  \tfoo   bar\n")

	word, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "foo", word)

	word, ok = task.parseWord()
	require.True(t, ok)
	require.Equal(t, "bar", word)

	_, ok = task.parseWord()
	require.False(t, ok)
}

func TestParseWordEmptyInput(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "   ")
	_, ok := task.parseWord()
	require.False(t, ok)
}

func TestParseDelimConsumesUpToAndIncludingDelimiter(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "comment text) after")
	text := task.parseDelim(')')
	require.Equal(t, "comment text", text)

	rest, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "after", rest)
}

func TestParseDelimRunsToEndWhenDelimiterMissing(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "no closing delim here")
	text := task.parseDelim(')')
	require.Equal(t, "no closing delim here", text)
	_, ok := task.parseWord()
	require.False(t, ok)
}

func TestRestOfLineConsumesThroughNewline(t *testing.T) {
	task := NewTask(DefaultStackConfig)
	task.SetSource("s", "ignored comment\nnext")
	task.restOfLine()
	word, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "next", word)
}

func TestParenCommentPrimitiveSkipsComment(t *testing.T) {
	vm := New(WithTaskCount(1))
	task := vm.CurrentTask()
	task.SetSource("s", "this is skipped ) 42")
	require.NoError(t, primParenComment(vm, task))
	word, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "42", word)
}

func TestBackslashCommentPrimitiveSkipsRestOfLine(t *testing.T) {
	vm := New(WithTaskCount(1))
	task := vm.CurrentTask()
	task.SetSource("s", "rest of the line ignored\n7")
	require.NoError(t, primBackslashComment(vm, task))
	word, ok := task.parseWord()
	require.True(t, ok)
	require.Equal(t, "7", word)
}

func TestBracketCharCompilesFirstRuneLiteral(t *testing.T) {
	vm := New(WithTaskCount(1))
	task := vm.CurrentTask()
	task.SetSource("s", "A more-text")
	require.NoError(t, primBracketChar(vm, task))

	// the literal was compiled into data space as LIT <cell 'A'>; confirm by
	// running it through the inner interpreter directly, followed by an EXIT
	// back to ip 0 so the loop ends idle rather than running past here.
	litAt := vm.DS.Here() - 4 - 4
	vm.DS.CompileU32(uint32(vm.fwd.exit))
	task.Return.Push(0)
	task.State.IP = litAt
	require.NoError(t, vm.run(task))
	v, err := task.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, Cell('A'), v)
}

func TestBracketCharOnEmptyInputFails(t *testing.T) {
	vm := New(WithTaskCount(1))
	task := vm.CurrentTask()
	task.SetSource("s", "")
	err := primBracketChar(vm, task)
	require.Error(t, err)
	require.True(t, isErrKind(err, ErrUnexpectedEndOfFile))
}
