package forth

import (
	"fmt"
	"strings"
)

// logging is a small tracing mixin embedded by VM. It is a no-op until a
// Logf function is installed via WithLogf; the inner loop uses it to emit
// one line per step (word name, opcode name, return/data stack contents)
// the way a threaded-code debugger would.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
	funcWidth int
	codeWidth int
}

// withLogPrefix temporarily prefixes every log line with prefix, returning a
// func that restores the prior logfn. Nothing in this package calls it; the
// evaluator and inner loop log without a prefix.
func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

// traceStep emits one trace line per inner-loop step when a Logf is
// installed: the word about to run, the opcode behind it, and the current
// return/data stacks, mirroring gothird's step() (internals.go). id has
// already been fetched and t.State.IP advanced past it by the time this is
// called, so the mark is the address the fetch came from.
func (vm *VM) traceStep(t *Task, id WordID) {
	w := vm.Dict.Word(id)
	name := vm.sym.string(w.Symbol)
	if name == "" {
		name = fmt.Sprintf("call(%v)", id)
	}
	if vm.funcWidth < len(name) {
		vm.funcWidth = len(name)
	}

	code := ""
	if int(w.Action) >= 0 && int(w.Action) < len(vm.opcodeNames) {
		code = vm.opcodeNames[w.Action]
	}
	if code == "" {
		code = fmt.Sprintf("op(%v)", w.Action)
	}
	if vm.codeWidth < len(code) {
		vm.codeWidth = len(code)
	}

	mark := fmt.Sprintf("@%v", t.State.IP-4)
	vm.logf(mark, "% *v.% -*v r:%v s:%v",
		vm.funcWidth, name,
		vm.codeWidth, code,
		t.Return.Slice(), t.Data.Slice())
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
