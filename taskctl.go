package forth

// primPause implements PAUSE: it does nothing to VM state beyond raising
// SigPause, which unwinds run() (and, if PAUSE was invoked directly from
// interpret mode, invoke()) back to the scheduler without disturbing
// State.IP — the next run() call on this Task resumes exactly here
// (spec.md §4.9).
func primPause(vm *VM, t *Task) error {
	return SigPause
}
