package forth

// ABORT, QUIT and BYE are ordinary primitives whose entire job is to raise
// the matching Signal; evalLoop and RunTasks are what actually perform the
// reset (spec.md §4.10). HALT sets ip to 0 and raises Quit, the same
// top-level reset QUIT itself performs — it is a normal reset word, not the
// VM-corruption escape hatch vm.halt (vm.go) guards against.

func primAbort(vm *VM, t *Task) error { return SigAbort }
func primQuit(vm *VM, t *Task) error  { return SigQuit }
func primBye(vm *VM, t *Task) error   { return SigBye }

func primHalt(vm *VM, t *Task) error {
	t.State.IP = 0
	return SigQuit
}
