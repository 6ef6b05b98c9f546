package forth

import (
	_ "embed"
	"strconv"
)

// compileLiteral appends a LIT cell to the current definition: the lit
// primitive's word id followed by the 32-bit value it will push when run
// (spec.md §4.4 "default evaluator... compiles a literal"; §6 "lit is
// followed by a 32-bit signed integer"). Values that don't fit in 32 bits
// are truncated on the wire, the same narrowing @/!/,/CONSTANT apply.
func (vm *VM) compileLiteral(v Cell) {
	vm.DS.CompileU32(uint32(vm.fwd.lit))
	vm.DS.CompileI32(int32(v))
}

// compileFloatLiteral is compileLiteral's float-stack counterpart, using
// FLIT instead of LIT.
func (vm *VM) compileFloatLiteral(v float64) {
	vm.DS.CompileU32(uint32(vm.fwd.flit))
	vm.DS.CompileF64(v)
}

// --- numeric labels -------------------------------------------------
//
// spec.md §9 notes a bitset-based label/goto protocol but declines to
// mandate it. This core resolves LABEL/GOTO with plain Go maps instead:
// labels holds addresses already defined, labelPatches holds branch sites
// still waiting on a label that hasn't been seen yet. Both are VM-wide and
// nothing clears them: neither QUIT nor MARKER touches either map.

// primLabel reads a small integer and marks the current Here as that
// label's target, patching any GOTOs that referenced it before it was
// defined.
func primLabel(vm *VM, t *Task) error {
	word, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "label")
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return errf(ErrUnsupportedOperation, "label expects a number, got %q", word)
	}
	here := vm.DS.Here()
	vm.labels[n] = here
	for _, site := range vm.labelPatches[n] {
		_ = vm.DS.PutU32(site, uint32(here))
	}
	delete(vm.labelPatches, n)
	return nil
}

// primGoto compiles an unconditional branch to the address LABEL will (or
// already did) mark. If the label hasn't been seen yet, the branch operand
// is left as a placeholder and queued in labelPatches.
func primGoto(vm *VM, t *Task) error {
	word, ok := t.parseWord()
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "goto")
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return errf(ErrUnsupportedOperation, "goto expects a number, got %q", word)
	}
	vm.DS.CompileU32(uint32(vm.fwd.branch))
	site := vm.DS.Here()
	if target, ok := vm.labels[n]; ok {
		vm.DS.CompileU32(uint32(target))
	} else {
		vm.DS.CompileU32(0)
		vm.labelPatches[n] = append(vm.labelPatches[n], site)
	}
	return nil
}

//go:embed bootstrap/core.fs
var bootstrapSource string

// bootstrap evaluates the embedded core.fs source against task 0, layering
// higher-level definitions (arithmetic conveniences, numeric-output words)
// on top of the Go primitives, the way gothird's THIRD is evaluated on top
// of its 13 bootstrap primitives (third.go) — generalized here to a much
// larger primitive set, so core.fs only needs to add what spec.md's Go
// primitives don't already cover directly.
func (vm *VM) bootstrap() error {
	if bootstrapSource == "" {
		return nil
	}
	limit := vm.evaluationLimit
	vm.evaluationLimit = 0 // the whole script runs regardless of WithEvaluationLimit
	defer func() { vm.evaluationLimit = limit }()
	return vm.Evaluate(bootstrapSource)
}
