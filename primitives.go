package forth

import "strconv"

// Opcode values. opNest is the zero value deliberately: every colon
// definition's Word carries Action == opNest, and execute handles it before
// any table lookup, so the common case (call a user-defined word) never
// touches prims.
const (
	opNest Opcode = iota

	opLit
	opFlit
	opExit
	opBranch
	opZeroBranch

	op_do
	op_loop
	op_plusLoop
	opLeave
	opUnloop
	opI
	opJ
	opRecurse

	opDup
	opDrop
	opSwap
	opOver
	opRot
	opTwoDup
	opTwoDrop
	opTwoSwap
	opQDup
	opPick
	opDepth

	opAdd
	opSub
	opMul
	opDiv
	opMod
	opDivMod
	opNegate
	opAbs
	opMin
	opMax
	opAnd
	opOr
	opXor
	opInvert
	opLshift
	opRshift
	op1Plus
	op1Minus
	op2Plus
	op2Minus
	op2Mul
	op2Div

	opEq
	opNe
	opLt
	opGt
	opLe
	opGe
	op0Eq
	op0Lt
	op0Gt

	opFetch
	opStore
	opCFetch
	opCStore
	opPlusStore
	opComma
	opCComma
	opAllot
	opHere

	opToR
	opRFrom
	opRFetch

	opFAdd
	opFSub
	opFMul
	opFDiv
	opFApprox
	opFDup
	opFDrop
	opFSwap
	opFFetch
	opFStore
	opFDot

	opEmit
	opType
	opKey
	opCR
	opSpace
	opDot

	opPause

	opAbort
	opQuit
	opBye
	opHalt

	opColon
	opSemicolon
	opVariable
	opConstant
	opCreate
	opMarker
	opPushDFA
	opPushConstant
	opMarkerRun

	opIfImm
	opElseImm
	opThenImm
	opBeginImm
	opAgainImm
	opWhileImm
	opRepeatImm
	opDoImm
	opLoopImm
	opPlusLoopImm

	opBase
	opDecimal
	opHex

	opLabel
	opGoto

	opMS
	opUTime

	opParenComment
	opBackslashComment
	opBracketChar

	opLessNum
	opNumSign
	opNumSignS
	opHold
	opSign
	opNumGT

	opNumOpcodes
)

type primFunc func(vm *VM, t *Task) error

// registerPrimitives installs every builtin word into the Dictionary and
// fills the opcode dispatch table. Grounded on gothird's vmCodeTable/
// vmCodeNames (first.go), generalized from gothird's 20-odd bootstrap
// primitives to the larger vocabulary spec.md §4 names directly, since this
// core does not derive its control structures from a 2-primitive bootstrap
// the way THIRD does.
func (vm *VM) registerPrimitives() {
	vm.prims = make([]primFunc, opNumOpcodes)

	type def struct {
		name  string
		op    Opcode
		fn    primFunc
		imm   bool
		cOnly bool
	}
	defs := []def{
		{name: "nest", op: opNest, fn: nil}, // never dispatched directly; colon words reuse it
		{name: "lit", op: opLit, fn: primLit, cOnly: true},
		{name: "flit", op: opFlit, fn: primFlit, cOnly: true},
		{name: "exit", op: opExit, fn: primExit, cOnly: true},
		{name: "branch", op: opBranch, fn: primBranch, cOnly: true},
		{name: "0branch", op: opZeroBranch, fn: primZeroBranch, cOnly: true},

		{name: "_do", op: op_do, fn: primDoRuntime, cOnly: true},
		{name: "_loop", op: op_loop, fn: primLoopRuntime, cOnly: true},
		{name: "_+loop", op: op_plusLoop, fn: primPlusLoopRuntime, cOnly: true},
		{name: "leave", op: opLeave, fn: primLeave, cOnly: true},
		{name: "unloop", op: opUnloop, fn: primUnloop, cOnly: true},
		{name: "i", op: opI, fn: primI, cOnly: true},
		{name: "j", op: opJ, fn: primJ, cOnly: true},
		{name: "recurse", op: opRecurse, fn: primRecurseCompile, imm: true, cOnly: true},

		{name: "dup", op: opDup, fn: primDup},
		{name: "drop", op: opDrop, fn: primDrop},
		{name: "swap", op: opSwap, fn: primSwap},
		{name: "over", op: opOver, fn: primOver},
		{name: "rot", op: opRot, fn: primRot},
		{name: "2dup", op: opTwoDup, fn: primTwoDup},
		{name: "2drop", op: opTwoDrop, fn: primTwoDrop},
		{name: "2swap", op: opTwoSwap, fn: primTwoSwap},
		{name: "?dup", op: opQDup, fn: primQDup},
		{name: "pick", op: opPick, fn: primPick},
		{name: "depth", op: opDepth, fn: primDepth},

		{name: "+", op: opAdd, fn: primAdd},
		{name: "-", op: opSub, fn: primSub},
		{name: "*", op: opMul, fn: primMul},
		{name: "/", op: opDiv, fn: primDiv},
		{name: "mod", op: opMod, fn: primMod},
		{name: "/mod", op: opDivMod, fn: primDivMod},
		{name: "negate", op: opNegate, fn: primNegate},
		{name: "abs", op: opAbs, fn: primAbs},
		{name: "min", op: opMin, fn: primMin},
		{name: "max", op: opMax, fn: primMax},
		{name: "and", op: opAnd, fn: primAnd},
		{name: "or", op: opOr, fn: primOr},
		{name: "xor", op: opXor, fn: primXor},
		{name: "invert", op: opInvert, fn: primInvert},
		{name: "lshift", op: opLshift, fn: primLshift},
		{name: "rshift", op: opRshift, fn: primRshift},
		{name: "1+", op: op1Plus, fn: prim1Plus},
		{name: "1-", op: op1Minus, fn: prim1Minus},
		{name: "2+", op: op2Plus, fn: prim2Plus},
		{name: "2-", op: op2Minus, fn: prim2Minus},
		{name: "2*", op: op2Mul, fn: prim2Mul},
		{name: "2/", op: op2Div, fn: prim2Div},

		{name: "=", op: opEq, fn: primEq},
		{name: "<>", op: opNe, fn: primNe},
		{name: "<", op: opLt, fn: primLt},
		{name: ">", op: opGt, fn: primGt},
		{name: "<=", op: opLe, fn: primLe},
		{name: ">=", op: opGe, fn: primGe},
		{name: "0=", op: op0Eq, fn: prim0Eq},
		{name: "0<", op: op0Lt, fn: prim0Lt},
		{name: "0>", op: op0Gt, fn: prim0Gt},

		{name: "@", op: opFetch, fn: primFetch},
		{name: "!", op: opStore, fn: primStore},
		{name: "c@", op: opCFetch, fn: primCFetch},
		{name: "c!", op: opCStore, fn: primCStore},
		{name: "+!", op: opPlusStore, fn: primPlusStore},
		{name: ",", op: opComma, fn: primComma},
		{name: "c,", op: opCComma, fn: primCComma},
		{name: "allot", op: opAllot, fn: primAllot},
		{name: "here", op: opHere, fn: primHere},

		{name: ">r", op: opToR, fn: primToR, cOnly: true},
		{name: "r>", op: opRFrom, fn: primRFrom, cOnly: true},
		{name: "r@", op: opRFetch, fn: primRFetch, cOnly: true},

		{name: "f+", op: opFAdd, fn: primFAdd},
		{name: "f-", op: opFSub, fn: primFSub},
		{name: "f*", op: opFMul, fn: primFMul},
		{name: "f/", op: opFDiv, fn: primFDiv},
		{name: "f~", op: opFApprox, fn: primFApprox},
		{name: "fdup", op: opFDup, fn: primFDup},
		{name: "fdrop", op: opFDrop, fn: primFDrop},
		{name: "fswap", op: opFSwap, fn: primFSwap},
		{name: "f@", op: opFFetch, fn: primFFetch},
		{name: "f!", op: opFStore, fn: primFStore},
		{name: "f.", op: opFDot, fn: primFDot},

		{name: "emit", op: opEmit, fn: primEmit},
		{name: "type", op: opType, fn: primType},
		{name: "key", op: opKey, fn: primKey},
		{name: "cr", op: opCR, fn: primCR},
		{name: "space", op: opSpace, fn: primSpace},
		{name: ".", op: opDot, fn: primDot},

		{name: "pause", op: opPause, fn: primPause},

		{name: "abort", op: opAbort, fn: primAbort},
		{name: "quit", op: opQuit, fn: primQuit},
		{name: "bye", op: opBye, fn: primBye},
		{name: "halt", op: opHalt, fn: primHalt},

		{name: ":", op: opColon, fn: primColon},
		{name: ";", op: opSemicolon, fn: primSemicolon, imm: true, cOnly: true},
		{name: "variable", op: opVariable, fn: primVariableDefine},
		{name: "constant", op: opConstant, fn: primConstantDefine},
		{name: "create", op: opCreate, fn: primCreateDefine},
		{name: "marker", op: opMarker, fn: primMarkerDefine},

		{name: "if", op: opIfImm, fn: primIf, imm: true, cOnly: true},
		{name: "else", op: opElseImm, fn: primElse, imm: true, cOnly: true},
		{name: "then", op: opThenImm, fn: primThen, imm: true, cOnly: true},
		{name: "begin", op: opBeginImm, fn: primBegin, imm: true, cOnly: true},
		{name: "again", op: opAgainImm, fn: primAgain, imm: true, cOnly: true},
		{name: "while", op: opWhileImm, fn: primWhile, imm: true, cOnly: true},
		{name: "repeat", op: opRepeatImm, fn: primRepeat, imm: true, cOnly: true},
		{name: "do", op: opDoImm, fn: primDoCompile, imm: true, cOnly: true},
		{name: "loop", op: opLoopImm, fn: primLoopCompile, imm: true, cOnly: true},
		{name: "+loop", op: opPlusLoopImm, fn: primPlusLoopCompile, imm: true, cOnly: true},

		{name: "base", op: opBase, fn: primBase},
		{name: "decimal", op: opDecimal, fn: primDecimal},
		{name: "hex", op: opHex, fn: primHex},

		{name: "label", op: opLabel, fn: primLabel, imm: true, cOnly: true},
		{name: "goto", op: opGoto, fn: primGoto, imm: true, cOnly: true},

		{name: "ms", op: opMS, fn: primMS},
		{name: "utime", op: opUTime, fn: primUTime},

		{name: "(", op: opParenComment, fn: primParenComment, imm: true},
		{name: "\\", op: opBackslashComment, fn: primBackslashComment, imm: true},
		{name: "[char]", op: opBracketChar, fn: primBracketChar, imm: true, cOnly: true},

		{name: "<#", op: opLessNum, fn: primLessNum},
		{name: "#", op: opNumSign, fn: primNumSign},
		{name: "#s", op: opNumSignS, fn: primNumSignS},
		{name: "hold", op: opHold, fn: primHold},
		{name: "sign", op: opSign, fn: primSign},
		{name: "#>", op: opNumGT, fn: primNumGT},
	}

	// opPushDFA and opPushConstant are never looked up by name: they are
	// the runtime action assigned to words VARIABLE/CREATE and CONSTANT
	// mint for their caller, dispatched purely through the opcode table.
	vm.prims[opPushDFA] = primPushDFA
	vm.prims[opPushConstant] = primPushConstant
	vm.prims[opMarkerRun] = primMarkerRun

	vm.opcodeNames = make([]string, opNumOpcodes)
	vm.opcodeNames[opNest] = "nest"
	vm.opcodeNames[opPushDFA] = "pushdfa"
	vm.opcodeNames[opPushConstant] = "pushconstant"
	vm.opcodeNames[opMarkerRun] = "markerrun"

	for _, d := range defs {
		vm.prims[d.op] = d.fn
		vm.opcodeNames[d.op] = d.name
		var id WordID
		switch {
		case d.imm && d.cOnly:
			id = vm.Dict.AddImmediateAndCompileOnly(&vm.sym, vm.DS.Here(), d.name, d.op)
		case d.imm:
			id = vm.Dict.AddImmediate(&vm.sym, vm.DS.Here(), d.name, d.op)
		case d.cOnly:
			id = vm.Dict.AddCompileOnly(&vm.sym, vm.DS.Here(), d.name, d.op)
		default:
			id = vm.Dict.AddPrimitive(&vm.sym, vm.DS.Here(), d.name, d.op)
		}
		_ = id
	}
}

// resolveForwardRefs fills in the compiler's small cache of commonly-emitted
// primitive ids, looked up once rather than by name on every compile
// (spec.md §3).
func (vm *VM) resolveForwardRefs() {
	find := func(name string) WordID { return vm.Dict.Find(&vm.sym, name) }
	vm.fwd = forwardRefs{
		lit:     find("lit"),
		flit:    find("flit"),
		exit:    find("exit"),
		branch:  find("branch"),
		zbranch: find("0branch"),
		do:      find("_do"),
		loop:    find("_loop"),
		ploop:   find("_+loop"),
		typ:     find("type"),
	}
}

// execute runs the action bound to id against t: a primitive opcode's Go
// function, or, for a colon-defined word, the universal nest action that
// pushes a return address and enters the word's body (spec.md §4.6).
func (vm *VM) execute(t *Task, id WordID) error {
	if id == 0 {
		return errf(ErrUndefinedWord, "word id 0")
	}
	w := vm.Dict.Word(id)
	t.State.WP = id
	if w.Action == opNest {
		return vm.nest(t, w)
	}
	fn := vm.prims[w.Action]
	if fn == nil {
		return errf(ErrUnsupportedOperation, "%v has no primitive implementation", vm.sym.string(w.Symbol))
	}
	return fn(vm, t)
}

// nest pushes the caller's instruction pointer on the return stack and
// transfers control into w's body, then signals SigNest so callers (run's
// loop, or a direct interpret-mode invocation) know to keep driving the
// inner interpreter rather than treating this as a completed step (spec.md
// §4.6).
func (vm *VM) nest(t *Task, w Word) error {
	if err := t.Return.Push(Cell(t.State.IP)); err != nil {
		return err
	}
	t.State.IP = w.DFA
	return SigNest
}

// --- stack manipulation -----------------------------------------------

func primDup(vm *VM, t *Task) error {
	v, err := t.Data.Last()
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

func primDrop(vm *VM, t *Task) error {
	_, err := t.Data.Pop()
	return err
}

func primSwap(vm *VM, t *Task) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return t.Data.Push2(b, a)
}

func primOver(vm *VM, t *Task) error {
	v, err := t.Data.Get(1)
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

func primRot(vm *VM, t *Task) error {
	a, b, c, err := t.Data.Pop3()
	if err != nil {
		return err
	}
	return t.Data.Push3(b, c, a)
}

func primTwoDup(vm *VM, t *Task) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	if err := t.Data.Push2(a, b); err != nil {
		return err
	}
	return t.Data.Push2(a, b)
}

func primTwoDrop(vm *VM, t *Task) error {
	_, _, err := t.Data.Pop2()
	return err
}

func primTwoSwap(vm *VM, t *Task) error {
	var vals [4]Cell
	for i := 3; i >= 0; i-- {
		v, err := t.Data.Pop()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	if err := t.Data.Push2(vals[2], vals[3]); err != nil {
		return err
	}
	return t.Data.Push2(vals[0], vals[1])
}

func primQDup(vm *VM, t *Task) error {
	v, err := t.Data.Last()
	if err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	return t.Data.Push(v)
}

func primPick(vm *VM, t *Task) error {
	n, err := t.Data.Pop()
	if err != nil {
		return err
	}
	v, err := t.Data.Get(int(n))
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

func primDepth(vm *VM, t *Task) error {
	return t.Data.Push(Cell(t.Data.Len()))
}

// --- arithmetic ---------------------------------------------------------

func binop(t *Task, f func(a, b Cell) Cell) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return t.Data.Push(f(a, b))
}

func primAdd(vm *VM, t *Task) error { return binop(t, func(a, b Cell) Cell { return a + b }) }
func primSub(vm *VM, t *Task) error { return binop(t, func(a, b Cell) Cell { return a - b }) }
func primMul(vm *VM, t *Task) error { return binop(t, func(a, b Cell) Cell { return a * b }) }

func primDiv(vm *VM, t *Task) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return errf(ErrUnsupportedOperation, "division by zero")
	}
	return t.Data.Push(a / b)
}

func primMod(vm *VM, t *Task) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return errf(ErrUnsupportedOperation, "division by zero")
	}
	return t.Data.Push(a % b)
}

func primDivMod(vm *VM, t *Task) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return errf(ErrUnsupportedOperation, "division by zero")
	}
	if err := t.Data.Push(a % b); err != nil {
		return err
	}
	return t.Data.Push(a / b)
}

func primNegate(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(-v)
}

func primAbs(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	if v < 0 {
		v = -v
	}
	return t.Data.Push(v)
}

func primMin(vm *VM, t *Task) error {
	return binop(t, func(a, b Cell) Cell {
		if a < b {
			return a
		}
		return b
	})
}

func primMax(vm *VM, t *Task) error {
	return binop(t, func(a, b Cell) Cell {
		if a > b {
			return a
		}
		return b
	})
}

func primAnd(vm *VM, t *Task) error { return binop(t, func(a, b Cell) Cell { return a & b }) }
func primOr(vm *VM, t *Task) error  { return binop(t, func(a, b Cell) Cell { return a | b }) }
func primXor(vm *VM, t *Task) error { return binop(t, func(a, b Cell) Cell { return a ^ b }) }

func primInvert(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(^v)
}

func primLshift(vm *VM, t *Task) error {
	return binop(t, func(a, b Cell) Cell { return a << uint(b) })
}

func primRshift(vm *VM, t *Task) error {
	return binop(t, func(a, b Cell) Cell { return Cell(uint64(a) >> uint(b)) })
}

func unop(t *Task, f func(Cell) Cell) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(f(v))
}

func prim1Plus(vm *VM, t *Task) error  { return unop(t, func(v Cell) Cell { return v + 1 }) }
func prim1Minus(vm *VM, t *Task) error { return unop(t, func(v Cell) Cell { return v - 1 }) }
func prim2Plus(vm *VM, t *Task) error  { return unop(t, func(v Cell) Cell { return v + 2 }) }
func prim2Minus(vm *VM, t *Task) error { return unop(t, func(v Cell) Cell { return v - 2 }) }
func prim2Mul(vm *VM, t *Task) error   { return unop(t, func(v Cell) Cell { return v * 2 }) }
func prim2Div(vm *VM, t *Task) error   { return unop(t, func(v Cell) Cell { return v >> 1 }) }

// --- comparison -----------------------------------------------------------

func cmpop(t *Task, f func(a, b Cell) bool) error {
	a, b, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return t.Data.Push(boolCell(f(a, b)))
}

func primEq(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a == b }) }
func primNe(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a != b }) }
func primLt(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a < b }) }
func primGt(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a > b }) }
func primLe(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a <= b }) }
func primGe(vm *VM, t *Task) error { return cmpop(t, func(a, b Cell) bool { return a >= b }) }

func prim0Eq(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(boolCell(v == 0))
}

func prim0Lt(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(boolCell(v < 0))
}

func prim0Gt(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(boolCell(v > 0))
}

// --- memory ---------------------------------------------------------------

func primFetch(vm *VM, t *Task) error {
	a, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(Cell(vm.DS.GetI32(Addr(a))))
}

func primStore(vm *VM, t *Task) error {
	a, v, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return vm.DS.PutI32(Addr(v), int32(a))
}

func primCFetch(vm *VM, t *Task) error {
	a, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(Cell(vm.DS.GetU8(Addr(a))))
}

func primCStore(vm *VM, t *Task) error {
	a, v, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	return vm.DS.PutU8(Addr(v), uint8(a))
}

func primPlusStore(vm *VM, t *Task) error {
	a, v, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	cur := vm.DS.GetI32(Addr(v))
	return vm.DS.PutI32(Addr(v), cur+int32(a))
}

func primComma(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	vm.DS.CompileI32(int32(v))
	return nil
}

func primCComma(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	vm.DS.CompileU8(uint8(v))
	return nil
}

func primAllot(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return vm.DS.Allot(int(v))
}

func primHere(vm *VM, t *Task) error {
	return t.Data.Push(Cell(vm.DS.Here()))
}

// --- return stack -----------------------------------------------------

func primToR(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Return.Push(v)
}

func primRFrom(vm *VM, t *Task) error {
	v, err := t.Return.Pop()
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

func primRFetch(vm *VM, t *Task) error {
	v, err := t.Return.Last()
	if err != nil {
		return err
	}
	return t.Data.Push(v)
}

// --- float stack --------------------------------------------------------

func ffbinop(t *Task, f func(a, b float64) float64) error {
	a, b, err := t.Float.Pop2()
	if err != nil {
		return err
	}
	return t.Float.Push(f(a, b))
}

func primFAdd(vm *VM, t *Task) error { return ffbinop(t, func(a, b float64) float64 { return a + b }) }
func primFSub(vm *VM, t *Task) error { return ffbinop(t, func(a, b float64) float64 { return a - b }) }
func primFMul(vm *VM, t *Task) error { return ffbinop(t, func(a, b float64) float64 { return a * b }) }
func primFDiv(vm *VM, t *Task) error { return ffbinop(t, func(a, b float64) float64 { return a / b }) }

// primFApprox implements F~: pop a tolerance then two floats, push a
// boolean cell for |a-b| <= tolerance (a practical float-equality test, the
// one spec.md §8's scenario expects rather than exact IEEE comparison).
func primFApprox(vm *VM, t *Task) error {
	tol, err := t.Float.Pop()
	if err != nil {
		return err
	}
	a, b, err := t.Float.Pop2()
	if err != nil {
		return err
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return t.Data.Push(boolCell(d <= tol))
}

func primFDup(vm *VM, t *Task) error {
	v, err := t.Float.Last()
	if err != nil {
		return err
	}
	return t.Float.Push(v)
}

func primFDrop(vm *VM, t *Task) error {
	_, err := t.Float.Pop()
	return err
}

func primFSwap(vm *VM, t *Task) error {
	a, b, err := t.Float.Pop2()
	if err != nil {
		return err
	}
	if err := t.Float.Push(b); err != nil {
		return err
	}
	return t.Float.Push(a)
}

func primFFetch(vm *VM, t *Task) error {
	a, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return t.Float.Push(vm.DS.GetF64(Addr(a)))
}

func primFStore(vm *VM, t *Task) error {
	a, err := t.Data.Pop()
	if err != nil {
		return err
	}
	v, err := t.Float.Pop()
	if err != nil {
		return err
	}
	return vm.DS.PutF64(Addr(a), v)
}

func primFDot(vm *VM, t *Task) error {
	v, err := t.Float.Pop()
	if err != nil {
		return err
	}
	vm.writeString(strconv.FormatFloat(v, 'g', -1, 64))
	vm.writeString(" ")
	return nil
}

// --- I/O --------------------------------------------------------------

func primEmit(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	return vm.emitRune(rune(v))
}

func primType(vm *VM, t *Task) error {
	addr, n, err := t.Data.Pop2()
	if err != nil {
		return err
	}
	p := vm.DS.GetBytes(Addr(addr), int(n))
	vm.writeBytes(p)
	return nil
}

func primKey(vm *VM, t *Task) error {
	if err := vm.Flush(); err != nil {
		return err
	}
	r, ok := vm.readKey(t)
	if !ok {
		return errf(ErrUnexpectedEndOfFile, "key")
	}
	return t.Data.Push(Cell(r))
}

func primCR(vm *VM, t *Task) error {
	vm.writeString("\n")
	return nil
}

func primSpace(vm *VM, t *Task) error {
	vm.writeString(" ")
	return nil
}

func primDot(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	vm.writeString(formatCellBase(int64(v), int(vm.DS.Base())))
	vm.writeString(" ")
	return nil
}

// --- numeric base ---------------------------------------------------------

func primBase(vm *VM, t *Task) error { return t.Data.Push(Cell(baseOffset)) }

func primDecimal(vm *VM, t *Task) error {
	vm.DS.SetBase(10)
	return nil
}

func primHex(vm *VM, t *Task) error {
	vm.DS.SetBase(16)
	return nil
}

// --- clock ----------------------------------------------------------------

func primMS(vm *VM, t *Task) error {
	return t.Data.Push(Cell(vm.elapsedMillis()))
}

func primUTime(vm *VM, t *Task) error {
	return t.Data.Push(Cell(vm.elapsedMicros()))
}
