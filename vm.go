package forth

import (
	"io"
	"time"

	"github.com/mpxlabs/stitchforth/internal/flushio"
)

// forwardRefs caches the word ids of the small set of primitives the
// compiler needs to emit without a name lookup on every use (spec.md §3
// "Forward references... resolved once at core initialization"). Built as
// named fields rather than a map, the way gothird resolves its own handful
// of builtin opcodes once at startup (first.go's vmCodeTable).
type forwardRefs struct {
	lit, flit       WordID
	exit            WordID
	branch, zbranch WordID
	do, loop, ploop WordID
	typ             WordID
}

// LiteralEvaluator attempts to interpret token as a literal value for t,
// pushing it (interpret mode) or compiling it (compile mode) itself on
// success. A non-nil error means "not recognized, try the next evaluator"
// (spec.md §4.4); the final UndefinedWord is raised by the caller once
// every evaluator has declined.
type LiteralEvaluator func(vm *VM, t *Task, token string) error

// VM hosts the tasks, the shared Dictionary and DataSpace, the symbol
// table, the forward-reference cache, the output/hold buffers, the error
// slot and the current-task selector (spec.md §3). It is the aggregate
// gothird's own VM (first.go) already is, generalized from gothird's single
// flat memory blob into the component-owning struct spec.md describes.
type VM struct {
	logging

	Dict Dictionary
	sym  symbols
	DS   *DataSpace

	tasks   []*Task
	current int

	fwd               forwardRefs
	literalEvaluators []LiteralEvaluator
	evaluationLimit   int
	prims             []primFunc
	opcodeNames       []string

	out     flushio.WriteFlusher
	closers []io.Closer

	holdBuf []byte // held characters, in reverse output order, during <# ... #>

	lastToken string
	err       error

	clockOrigin time.Time

	labels       map[int]Addr
	labelPatches map[int][]Addr
	markers      map[WordID]markerSnapshot

	dataLimit   uint32
	taskCount   int
	stackConfig StackConfig
}

// New constructs a VM: primitives are registered, forward references are
// resolved, and the bootstrap core script (bootstrap/core.fs) is evaluated
// to install higher-level definitions on top of them (spec.md §3
// Lifecycle).
func New(opts ...Option) *VM {
	vm := &VM{
		labels:       make(map[int]Addr),
		labelPatches: make(map[int][]Addr),
		markers:      make(map[WordID]markerSnapshot),
		clockOrigin:  time.Now(),
	}
	defaultOptions.apply(vm)
	Options(opts...).apply(vm)

	vm.DS = NewDataSpace(vm.dataLimit)
	if vm.taskCount < 1 {
		vm.taskCount = 1
	}
	vm.tasks = make([]*Task, vm.taskCount)
	for i := range vm.tasks {
		vm.tasks[i] = NewTask(vm.stackConfig)
	}
	vm.tasks[0].Awake = true // the operator task

	vm.registerPrimitives()
	vm.resolveForwardRefs()
	vm.literalEvaluators = []LiteralEvaluator{evalInteger, evalFloat}

	// reserve the sysvars block now that the halt primitive has a word id.
	haltID := vm.Dict.Find(&vm.sym, "halt")
	vm.DS.CompileU32(uint32(haltID))
	vm.DS.CompileI32(10) // base defaults to decimal

	if err := vm.bootstrap(); err != nil {
		vm.halt(err)
	}

	return vm
}

// haltError wraps an error that corrupted VM invariants badly enough that
// no further operation can be trusted; it is the one condition this core
// treats as fatal rather than recoverable (spec.md §7 "errors do not
// unwind compiled code partially" assumes the VM stays structurally sound,
// which a botched bootstrap would violate).
type haltError struct{ error }

func (err haltError) Error() string { return "halt: " + err.error.Error() }
func (err haltError) Unwrap() error { return err.error }

func (vm *VM) halt(err error) {
	if vm.out != nil {
		vm.out.Flush()
	}
	panic(haltError{err})
}

// CurrentTask returns the task the VM will run next.
func (vm *VM) CurrentTask() *Task { return vm.tasks[vm.current] }

// TaskCount reports how many task slots the VM owns.
func (vm *VM) TaskCount() int { return len(vm.tasks) }

// Task returns task i (0-based), or nil if out of range.
func (vm *VM) Task(i int) *Task {
	if i < 0 || i >= len(vm.tasks) {
		return nil
	}
	return vm.tasks[i]
}

// SetCurrentTask selects which task CurrentTask/Evaluate/SetSource operate on
// (spec.md §6 Scheduling).
func (vm *VM) SetCurrentTask(i int) {
	if i >= 0 && i < len(vm.tasks) {
		vm.current = i
	}
}

// Awake reports whether task i is eligible for scheduling.
func (vm *VM) Awake(i int) bool {
	if t := vm.Task(i); t != nil {
		return t.Awake
	}
	return false
}

// SetAwake marks task i awake or asleep.
func (vm *VM) SetAwake(i int, awake bool) {
	if t := vm.Task(i); t != nil {
		t.Awake = awake
	}
}

// Here returns the data space's current end-of-compiled-code address.
func (vm *VM) Here() Addr { return vm.DS.Here() }

// LastError returns the VM's error slot (spec.md §6 Introspection).
func (vm *VM) LastError() error { return vm.err }

// ClearError empties the error slot.
func (vm *VM) ClearError() { vm.err = nil }

// SetSource writes text into the current task's input buffer (spec.md §6
// Lifecycle).
func (vm *VM) SetSource(text string) {
	vm.CurrentTask().SetSource("<input>", text)
}

// ExtendEvaluator appends a literal evaluator, tried after every
// already-registered one once a token fails dictionary lookup (spec.md §6
// Extension).
func (vm *VM) ExtendEvaluator(f LiteralEvaluator) {
	vm.literalEvaluators = append(vm.literalEvaluators, f)
}

// Close flushes and releases any writers owned via WithOutput/WithTee.
func (vm *VM) Close() (err error) {
	if vm.out != nil {
		err = vm.out.Flush()
	}
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}
