package forth

// The control-flow words are immediate and compile-only: their primFunc
// runs at compile time, emitting branch/0branch/_do/_loop/_+loop cells and
// backpatching addresses through the Task's ControlStack (spec.md §4.7).
// Grounded on gothird's THIRD bootstrap (third.go), which builds IF/THEN
// and BEGIN/WHILE/REPEAT by smuggling backpatch addresses through the data
// stack; here that bookkeeping moves to the typed ControlStack described in
// ctlstack.go, and DO/LOOP/+LOOP/LEAVE/RECURSE are added outright since
// THIRD never implements counted loops.

func primIf(vm *VM, t *Task) error {
	vm.DS.CompileU32(uint32(vm.fwd.zbranch))
	patch := vm.DS.Here()
	vm.DS.CompileU32(0)
	return t.Control.push(ctlEntry{kind: ctlIf, addr: patch})
}

func primElse(vm *VM, t *Task) error {
	ifFrame, err := t.Control.popExpect(ctlIf, "else")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.branch))
	patch := vm.DS.Here()
	vm.DS.CompileU32(0)
	if err := vm.DS.PutU32(ifFrame.addr, uint32(vm.DS.Here())); err != nil {
		return err
	}
	return t.Control.push(ctlEntry{kind: ctlIf, addr: patch})
}

func primThen(vm *VM, t *Task) error {
	f, err := t.Control.popExpect(ctlIf, "then")
	if err != nil {
		return err
	}
	return vm.DS.PutU32(f.addr, uint32(vm.DS.Here()))
}

func primBegin(vm *VM, t *Task) error {
	return t.Control.push(ctlEntry{kind: ctlBegin, addr: vm.DS.Here()})
}

func primAgain(vm *VM, t *Task) error {
	f, err := t.Control.popExpect(ctlBegin, "again")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.branch))
	vm.DS.CompileU32(uint32(f.addr))
	return nil
}

func primWhile(vm *VM, t *Task) error {
	beginFrame, err := t.Control.popExpect(ctlBegin, "while")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.zbranch))
	patch := vm.DS.Here()
	vm.DS.CompileU32(0)
	return t.Control.push(ctlEntry{kind: ctlWhile, addr: patch, patch: beginFrame.addr})
}

func primRepeat(vm *VM, t *Task) error {
	f, err := t.Control.popExpect(ctlWhile, "repeat")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.branch))
	vm.DS.CompileU32(uint32(f.patch))
	return vm.DS.PutU32(f.addr, uint32(vm.DS.Here()))
}

// primDoCompile compiles _do followed by a placeholder cell that will hold
// the post-loop address; the body's start address (right after the
// placeholder) is remembered for LOOP/+LOOP's back-branch.
func primDoCompile(vm *VM, t *Task) error {
	vm.DS.CompileU32(uint32(vm.fwd.do))
	patch := vm.DS.Here()
	vm.DS.CompileU32(0)
	return t.Control.push(ctlEntry{kind: ctlDo, addr: vm.DS.Here(), patch: patch})
}

func primLoopCompile(vm *VM, t *Task) error {
	f, err := t.Control.popExpect(ctlDo, "loop")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.loop))
	vm.DS.CompileU32(uint32(f.addr))
	return vm.DS.PutU32(f.patch, uint32(vm.DS.Here()))
}

func primPlusLoopCompile(vm *VM, t *Task) error {
	f, err := t.Control.popExpect(ctlDo, "+loop")
	if err != nil {
		return err
	}
	vm.DS.CompileU32(uint32(vm.fwd.ploop))
	vm.DS.CompileU32(uint32(f.addr))
	return vm.DS.PutU32(f.patch, uint32(vm.DS.Here()))
}

// primRecurseCompile compiles a call to the word currently being defined,
// found via Dictionary.LastDefinition so it works even while the
// definition is still hidden (spec.md §4.7).
func primRecurseCompile(vm *VM, t *Task) error {
	id := vm.Dict.LastDefinition()
	if id == 0 {
		return errf(ErrUnsupportedOperation, "recurse outside a definition")
	}
	vm.DS.CompileU32(uint32(id))
	return nil
}
