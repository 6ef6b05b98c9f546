package forth

// run drives the inner interpreter: fetch a word id at ip, advance ip past
// it, execute the word's action, and repeat until ip goes idle (0) or a
// signal/error interrupts the loop. Grounded on gothird's VM.exec
// (internals.go), generalized to dispatch through the opcode table instead
// of gothird's closure-per-word scheme, and to treat SigNest as "keep
// looping" rather than a terminal condition (spec.md §4.6).
//
// The loop invariant is 0 < ip < here (spec.md §4.6); a branch that lands
// ip at or past here without tripping the idle check is a runaway and
// raises InvalidMemoryAddress rather than letting the next fetch read back
// a zeroed word id and misreport itself as UndefinedWord.
func (vm *VM) run(t *Task) error {
	for t.State.IP != 0 {
		if t.State.IP >= vm.DS.Here() {
			return errf(ErrInvalidMemoryAddress, "ip %v past here %v", t.State.IP, vm.DS.Here())
		}
		id := WordID(vm.DS.GetU32(t.State.IP))
		t.State.IP += 4

		if vm.logfn != nil {
			vm.traceStep(t, id)
		}

		err := vm.execute(t, id)
		if err == nil {
			continue
		}
		if sig, ok := IsSignal(err); ok && sig == SigNest {
			continue
		}
		return err
	}
	return nil
}

// invoke runs a single word to completion from interpret mode: if it is a
// primitive, its action already ran to completion by the time execute
// returns; if it is a colon definition, execute only entered it (returning
// SigNest), so invoke must drive run() the rest of the way (spec.md §4.6
// "Nest... is not an error — call run()").
func (vm *VM) invoke(t *Task, id WordID) error {
	err := vm.execute(t, id)
	if err == nil {
		return nil
	}
	if sig, ok := IsSignal(err); ok && sig == SigNest {
		return vm.run(t)
	}
	return err
}

// --- threaded-code runtime primitives -------------------------------

func primLit(vm *VM, t *Task) error {
	v := vm.DS.GetI32(t.State.IP)
	t.State.IP += 4
	return t.Data.Push(Cell(v))
}

func primFlit(vm *VM, t *Task) error {
	v := vm.DS.GetF64(t.State.IP)
	t.State.IP += 8
	return t.Float.Push(v)
}

func primExit(vm *VM, t *Task) error {
	ip, err := t.Return.Pop()
	if err != nil {
		return err
	}
	t.State.IP = Addr(ip)
	return nil
}

func primBranch(vm *VM, t *Task) error {
	target := Addr(vm.DS.GetU32(t.State.IP))
	t.State.IP = target
	return nil
}

func primZeroBranch(vm *VM, t *Task) error {
	target := Addr(vm.DS.GetU32(t.State.IP))
	t.State.IP += 4
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	if v == 0 {
		t.State.IP = target
	}
	return nil
}

// --- DO/LOOP runtime ----------------------------------------------------
//
// The return stack carries, top to bottom while a loop body runs:
// [index, limit, postLoopAddr, ...caller frames...]. This mirrors
// spec.md §4.7's description of the loop-control block living alongside
// return addresses, generalized from gothird's THIRD (third.go), which has
// no DO/LOOP at all and builds iteration from BEGIN/WHILE only.

// The three cells are pushed/popped as (postLoopAddr, limit, index) so that
// index always ends up on top, where I/Last and the rest of the stack's
// usual "top of stack" convention expect it.

func primDoRuntime(vm *VM, t *Task) error {
	postLoopAddr := Addr(vm.DS.GetU32(t.State.IP))
	t.State.IP += 4
	limit, index, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return t.Return.Push3(Cell(postLoopAddr), limit, index)
}

func primLoopRuntime(vm *VM, t *Task) error {
	backAddr := Addr(vm.DS.GetU32(t.State.IP))
	t.State.IP += 4
	postLoopAddr, limit, index, err := t.Return.Pop3()
	if err != nil {
		return err
	}
	index++
	if index < limit {
		if err := t.Return.Push3(postLoopAddr, limit, index); err != nil {
			return err
		}
		t.State.IP = backAddr
		return nil
	}
	return nil
}

func primPlusLoopRuntime(vm *VM, t *Task) error {
	backAddr := Addr(vm.DS.GetU32(t.State.IP))
	t.State.IP += 4
	step, err := t.Data.Pop()
	if err != nil {
		return err
	}
	postLoopAddr, limit, index, err := t.Return.Pop3()
	if err != nil {
		return err
	}
	oldIndex := index
	index += step
	crossed := ((int64(oldIndex) - int64(limit)) ^ (int64(index) - int64(limit))) < 0
	if !crossed {
		if err := t.Return.Push3(postLoopAddr, limit, index); err != nil {
			return err
		}
		t.State.IP = backAddr
		return nil
	}
	return nil
}

func primLeave(vm *VM, t *Task) error {
	postLoopAddr, _, _, err := t.Return.Pop3()
	if err != nil {
		return err
	}
	t.State.IP = Addr(postLoopAddr)
	return nil
}

func primUnloop(vm *VM, t *Task) error {
	_, _, _, err := t.Return.Pop3()
	return err
}

func primI(vm *VM, t *Task) error {
	v, err := t.Return.Last()
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

func primJ(vm *VM, t *Task) error {
	v, err := t.Return.Get(3)
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}
