package forth

// The defining words each parse a name from the input, add a Dictionary
// entry for it, and (variable/constant/create) reserve data-space storage.
// Grounded on gothird's define/compileHeader (internals.go, first.go),
// generalized from gothird's single CREATE-like "define" primitive into
// the fuller set spec.md §4.8 names.

func primColon(vm *VM, t *Task) error {
	name, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, ":")
	}
	dfa := vm.DS.Here()
	vm.Dict.add(Word{Symbol: vm.sym.symbolicate(name), DFA: dfa, Action: opNest, Flags: FlagHidden})
	t.State.IsCompiling = true
	return nil
}

func primSemicolon(vm *VM, t *Task) error {
	vm.DS.CompileU32(uint32(vm.fwd.exit))
	id := vm.Dict.LastDefinition()
	w := vm.Dict.Word(id)
	w.Flags &^= FlagHidden
	vm.Dict.SetWord(id, w)
	t.State.IsCompiling = false
	return nil
}

// primVariableDefine implements VARIABLE: reserve one cell of storage and
// bind the new name to a word that pushes that cell's address when run.
func primVariableDefine(vm *VM, t *Task) error {
	name, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "variable")
	}
	dfa := vm.DS.CompileI32(0)
	vm.Dict.add(Word{Symbol: vm.sym.symbolicate(name), DFA: dfa, Action: opPushDFA})
	return nil
}

// primCreateDefine implements CREATE: bind name to a word that pushes the
// address of whatever Here is right now, without reserving any storage
// itself (the body is filled in by ALLOT/, calls that follow).
func primCreateDefine(vm *VM, t *Task) error {
	name, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "create")
	}
	dfa := vm.DS.Here()
	vm.Dict.add(Word{Symbol: vm.sym.symbolicate(name), DFA: dfa, Action: opPushDFA})
	return nil
}

func primPushDFA(vm *VM, t *Task) error {
	w := vm.Dict.Word(t.State.WP)
	return t.Data.Push(Cell(w.DFA))
}

// primConstantDefine implements CONSTANT: pop a value, store it, and bind
// name to a word that pushes that stored value when run.
func primConstantDefine(vm *VM, t *Task) error {
	name, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "constant")
	}
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	dfa := vm.DS.CompileI32(int32(v))
	vm.Dict.add(Word{Symbol: vm.sym.symbolicate(name), DFA: dfa, Action: opPushConstant})
	return nil
}

func primPushConstant(vm *VM, t *Task) error {
	w := vm.Dict.Word(t.State.WP)
	return t.Data.Push(Cell(vm.DS.GetI32(w.DFA)))
}

// markerSnapshot records the Dictionary/symbols/data-space extents in
// effect right before a MARKER word was linked in, so running it can
// unwind everything defined from that point on, including the marker
// itself (spec.md §9's MARKER-vs-snapshot question, resolved in favor of
// "the marker is the earliest thing it removes").
type markerSnapshot struct {
	words int
	syms  int
	here  Addr
}

func primMarkerDefine(vm *VM, t *Task) error {
	name, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "marker")
	}
	snap := markerSnapshot{words: vm.Dict.Len(), syms: vm.sym.len(), here: vm.DS.Here()}
	id := vm.Dict.add(Word{Symbol: vm.sym.symbolicate(name), DFA: vm.DS.Here(), Action: opMarkerRun})
	vm.markers[id] = snap
	return nil
}

func primMarkerRun(vm *VM, t *Task) error {
	snap, ok := vm.markers[t.State.WP]
	if !ok {
		return errf(ErrUnsupportedOperation, "marker lost its snapshot")
	}
	delete(vm.markers, t.State.WP)
	vm.Dict.Truncate(snap.words)
	vm.sym.truncate(snap.syms)
	vm.DS.Truncate(snap.here)
	return nil
}
