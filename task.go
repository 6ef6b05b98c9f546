package forth

// sourceFrame names one level of nested input the way gothird's
// ioCore/internal/fileinput.Input track a queue of readers: a name (for
// diagnostics) and the text itself. The loader that pushes real files onto
// this stack is an external collaborator (spec.md §1); the core only needs
// the slot to exist and to be popped/pushed symmetrically.
type sourceFrame struct {
	name string
	text string
	pos  int
}

// Task is an independent execution context sharing the Dictionary and
// DataSpace with every other Task in the VM, but owning its own stacks and
// input buffer (spec.md §3/§4.9). Exactly one task — the operator task,
// task 0 by convention — starts with a terminal input buffer; the rest
// start empty and are populated by the host before being woken.
type Task struct {
	Awake bool
	State State

	Data    *Stack
	Return  *Stack
	Control *ControlStack
	Float   *FloatStack

	// sources is the stack of nested input frames (spec.md §5 "source
	// frames opened by the loader are owned by the current task"). sources
	// is non-empty from SetSource until Quit resets it to nil; the bottom
	// frame is the task's own top-level buffer.
	sources []sourceFrame
}

// StackConfig bounds the capacities new Tasks are built with (spec.md §4.1:
// each stack's capacity is fixed at construction, 2..2048).
type StackConfig struct {
	Data    int
	Return  int
	Control int
	Float   int
}

// DefaultStackConfig matches gothird's default memory layout in spirit: big
// enough for nontrivial programs without pretending to be unbounded.
var DefaultStackConfig = StackConfig{Data: 256, Return: 256, Control: 64, Float: 64}

// NewTask allocates a Task with fresh, empty stacks per cfg. The task
// starts asleep with no input source; callers (typically VM.New for the
// operator task, or the host for additional tasks) call SetSource and wake
// it explicitly.
func NewTask(cfg StackConfig) *Task {
	return &Task{
		Data:    NewStack(cfg.Data),
		Return:  NewStack(cfg.Return),
		Control: NewControlStack(cfg.Control),
		Float:   NewFloatStack(cfg.Float),
	}
}

// SetSource replaces the task's top-level input with text, resetting
// SourceIndex to 0 and discarding any nested source frames (spec.md §6
// "set_source(text) writes to the current task's input buffer and resets
// source_index to 0").
func (t *Task) SetSource(name, text string) {
	t.sources = []sourceFrame{{name: name, text: text}}
	t.State.SourceIndex = 0
	t.State.SourceID = 0
}

// PushSource nests a new input frame on top of the current one (used by an
// external loader primitive, e.g. INCLUDE, to switch the tokenizer onto a
// file's contents without losing the caller's position). Popped
// automatically when the nested frame is exhausted.
func (t *Task) PushSource(name, text string) {
	if len(t.sources) > 0 {
		t.sources[len(t.sources)-1].pos = t.State.SourceIndex
	}
	t.sources = append(t.sources, sourceFrame{name: name, text: text})
	t.State.SourceIndex = 0
	t.State.SourceID++
}

// popSource discards the current (exhausted) frame and resumes the one
// beneath it, if any. Reports whether a frame remained to resume.
func (t *Task) popSource() bool {
	if len(t.sources) <= 1 {
		return false
	}
	t.sources = t.sources[:len(t.sources)-1]
	t.State.SourceIndex = t.sources[len(t.sources)-1].pos
	return true
}

// currentText returns the active input frame's text, or "" if the task has
// no input source at all.
func (t *Task) currentText() string {
	if len(t.sources) == 0 {
		return ""
	}
	return t.sources[len(t.sources)-1].text
}

// hasPendingInput reports whether a future parseWord call could still
// produce a token: either a nested source frame is waiting beneath the
// current one, or the current frame has non-whitespace left past
// SourceIndex. Used by the scheduler to tell "paused mid-word" apart from
// "ran out of things to do" (schedule.go).
func (t *Task) hasPendingInput() bool {
	if len(t.sources) == 0 {
		return false
	}
	if len(t.sources) > 1 {
		return true
	}
	text := t.sources[0].text
	i := t.State.SourceIndex
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i < len(text)
}

// ClearStacks empties every stack without touching interpreter state; used
// by Abort.
func (t *Task) ClearStacks() {
	t.Data.Clear()
	t.Return.Clear()
	t.Control.Clear()
	t.Float.Clear()
}

// Quit resets return stack, input buffer and interpreter mode back to top
// level, per spec.md §4.10.
func (t *Task) Quit() {
	t.Return.Clear()
	t.sources = nil
	t.State.Reset()
}
