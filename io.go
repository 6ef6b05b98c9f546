package forth

import (
	"strconv"
	"time"

	"github.com/mpxlabs/stitchforth/internal/runeio"
)

// writeString writes s to the VM's configured output, the way gothird's
// ioCore funnels every primitive's output through one WriteFlusher (io.go).
func (vm *VM) writeString(s string) {
	if vm.out == nil {
		return
	}
	_, _ = vm.out.Write([]byte(s))
}

func (vm *VM) writeBytes(p []byte) {
	if vm.out == nil {
		return
	}
	_, _ = vm.out.Write(p)
}

// emitRune writes r using the EMIT convention (ASCII passthrough, C1
// controls folded into their 7-bit escape form), flushing output
// afterwards since EMIT is the primitive most often used for
// prompt-then-read sequences.
func (vm *VM) emitRune(r rune) error {
	if vm.out == nil {
		return nil
	}
	if _, err := runeio.WriteRune(vm.out, r); err != nil {
		return err
	}
	return vm.out.Flush()
}

// readKey pulls the next raw rune from t's current input source without
// tokenizing it, the way KEY bypasses the outer interpreter's word
// splitting (spec.md §4.5 describes KEY and the tokenizer as two distinct
// consumers of the same input buffer).
func (vm *VM) readKey(t *Task) (rune, bool) {
	text := t.currentText()
	if t.State.SourceIndex >= len(text) {
		return 0, false
	}
	r := rune(text[t.State.SourceIndex])
	t.State.SourceIndex++
	return r, true
}

// formatCellBase renders v in the given numeric base (2..36), matching the
// classic Forth "." convention of no prefix and a leading "-" for negative
// values.
func formatCellBase(v int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return strconv.FormatInt(v, base)
}

func (vm *VM) elapsedMillis() int64 { return time.Since(vm.clockOrigin).Milliseconds() }
func (vm *VM) elapsedMicros() int64 { return time.Since(vm.clockOrigin).Microseconds() }

// Flush flushes the VM's output writer, exposed so a host can force a
// partial line out before, e.g., waiting on a blocking prompt of its own.
func (vm *VM) Flush() error {
	if vm.out == nil {
		return nil
	}
	return vm.out.Flush()
}
