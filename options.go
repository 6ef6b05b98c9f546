package forth

import (
	"io"
	"io/ioutil"

	"github.com/mpxlabs/stitchforth/internal/flushio"
)

// Option configures a VM at construction time. The composite/apply shape is
// carried near-verbatim from gothird's api.go/options.go.
type Option interface{ apply(vm *VM) }

type options []Option

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type noption struct{}

func (noption) apply(*VM) {}

// Options flattens a list of Options into one, the way gothird's
// VMOptions does, so New can apply defaults-then-overrides uniformly.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

var defaultOptions = Options(
	withOutput(ioutil.Discard),
	withTaskCount(5),
	withStackConfig(DefaultStackConfig),
	withDataLimit(0),
)

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type dataLimitOption uint32
type taskCountOption int
type stackConfigOption StackConfig
type evalLimitOption int
type logfOption func(mess string, args ...interface{})

// WithOutput sets the VM's output writer; output is flushed eagerly enough
// that blocking reads (e.g. KEY) always see prior output first (spec.md §6
// "stdout bytes for the output buffer").
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee additionally mirrors all output to w, e.g. for test capture
// alongside a human-readable stream.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithDataLimit caps the data space at limit bytes (0 means unlimited). The
// cap is checked by ALLOT and the data-space store paths; appends made while
// compiling (, c, literals, definitions) are not checked against it.
func WithDataLimit(limit uint32) Option { return dataLimitOption(limit) }

// WithTaskCount sets how many Task slots the VM owns (spec.md §4.9
// "typically 5").
func WithTaskCount(n int) Option { return taskCountOption(n) }

// WithStackConfig sets the per-task stack capacities used for every task
// the VM constructs.
func WithStackConfig(cfg StackConfig) Option { return stackConfigOption(cfg) }

// WithEvaluationLimit sets the default per-call token cap used by
// Evaluate (0 means unlimited), per spec.md §4.4.
func WithEvaluationLimit(n int) Option { return evalLimitOption(n) }

// WithLogf installs a step-trace callback, invoked once per inner-loop step
// when set.
func WithLogf(logf func(mess string, args ...interface{})) Option { return logfOption(logf) }

func withOutput(w io.Writer) Option        { return outputOption{w} }
func withTee(w io.Writer) Option           { return teeOption{w} }
func withDataLimit(n uint32) Option        { return dataLimitOption(n) }
func withTaskCount(n int) Option           { return taskCountOption(n) }
func withStackConfig(c StackConfig) Option { return stackConfigOption(c) }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (n dataLimitOption) apply(vm *VM)   { vm.dataLimit = uint32(n) }
func (n taskCountOption) apply(vm *VM)   { vm.taskCount = int(n) }
func (c stackConfigOption) apply(vm *VM) { vm.stackConfig = StackConfig(c) }
func (n evalLimitOption) apply(vm *VM)   { vm.evaluationLimit = int(n) }
func (f logfOption) apply(vm *VM)        { vm.logfn = f }
