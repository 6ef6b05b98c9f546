package forth

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mpxlabs/stitchforth/internal/panicerr"
)

// RunTasks drives the cooperative scheduler: round-robin over every awake
// task, giving each one a time slice that runs until it calls PAUSE, runs
// out of input, or raises QUIT/ABORT/BYE (spec.md §4.9/§4.10). A task that
// runs a slice to completion with no pending input left puts itself to
// sleep, the way a process exiting would. An awake task with nothing to
// resume and no input left (e.g. one just reset by QUIT or ABORT) is
// skipped without being put to sleep; RunTasks returns once a round finds
// no task to run.
//
// Each slice runs on its own goroutine via panicerr.Recover so one task's
// panic surfaces as an error instead of bringing every task down, and the
// per-round fan-out is coordinated with errgroup.Group the way a host
// running several independent workers would, even though at most one
// slice is ever in flight at a time — the VM's stacks and data space are
// not safe for concurrent access from two tasks at once.
func (vm *VM) RunTasks(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ranAny := false
		for i := range vm.tasks {
			if !vm.Awake(i) {
				continue
			}
			task := vm.tasks[i]
			if task.State.IP == 0 && !task.hasPendingInput() {
				continue // awake but idle: nothing to resume and no input left
			}
			ranAny = true
			vm.SetCurrentTask(i)

			g, _ := errgroup.WithContext(ctx)
			g.Go(func() error {
				return panicerr.Recover("task", func() error {
					return vm.runTaskSlice(task)
				})
			})
			if err := g.Wait(); err != nil {
				if sig, ok := IsSignal(err); ok && sig == SigBye {
					return nil
				}
				if panicerr.IsPanic(err) {
					vm.logf("panic", "task %v paniced, stack:\n%s", i, panicerr.PanicStack(err))
				} else if panicerr.IsExit(err) {
					vm.logf("exit", "task %v called runtime.Goexit", i)
				}
				return err
			}
		}
		if !ranAny {
			return nil
		}
	}
}

// runTaskSlice resumes a task already mid-word (State.IP != 0, left there
// by a prior PAUSE) or, if idle, drives the outer interpreter over
// whatever remains of its input buffer. Returns nil on PAUSE, since that
// is the expected way a slice ends; a slice that ends cleanly with no
// pending input left puts the task to sleep (see sleepIfDone), while an
// error or a QUIT/ABORT reset leaves it awake.
func (vm *VM) runTaskSlice(t *Task) error {
	if t.State.IP != 0 {
		err := vm.run(t)
		if sig, ok := IsSignal(err); ok {
			switch sig {
			case SigPause:
				vm.err = err
				return nil
			case SigQuit:
				t.Quit()
				vm.err = nil
				return nil
			case SigAbort:
				t.ClearStacks()
				t.Quit()
				vm.err = err
				return nil
			}
		}
		vm.sleepIfDone(t, err)
		return err
	}
	err := vm.evalLoop(t)
	if sig, ok := IsSignal(err); ok && sig == SigPause {
		return nil
	}
	vm.sleepIfDone(t, err)
	return err
}

// sleepIfDone puts t to sleep once a slice finishes cleanly (no error, no
// signal) and there is nothing left for a future slice to resume. A nil
// sources slice means QUIT or ABORT just reset the task rather than input
// running out, and that resets the task without putting it to sleep.
func (vm *VM) sleepIfDone(t *Task, err error) {
	if err != nil || t.sources == nil {
		return
	}
	if !t.hasPendingInput() {
		t.Awake = false
	}
}
