package forth

// State is the per-task interpreter state described in spec.md §3/§5: the
// compile/interpret mode flag, the instruction pointer, the word currently
// being executed, and the cursor into the task's input buffer. gothird
// keeps the equivalent of IP and compile-mode directly on its single
// implicit VM (vm.prog, first.go); this type exists because spec.md's
// tasks each need their own.
type State struct {
	// IsCompiling is true while the outer interpreter is appending to a
	// colon definition rather than executing words directly.
	IsCompiling bool
	// IP is the inner interpreter's instruction pointer: a data-space
	// address, or 0 when idle.
	IP Addr
	// WP is the id of the word currently being executed by the inner loop,
	// primarily for introspection/tracing.
	WP WordID
	// SourceIndex is the cursor into the task's input buffer that the
	// tokenizer advances.
	SourceIndex int
	// SourceID distinguishes nested input sources (e.g. a string passed to
	// EVALUATE versus the task's own top-level buffer); 0 is the task's own
	// buffer.
	SourceID int
}

// Reset clears interpreter state back to idle/interpreting, used by QUIT.
func (s *State) Reset() {
	*s = State{}
}
