package forth

import (
	"fmt"
	"io"
)

// Dumper writes a human-readable snapshot of a VM's dictionary and the
// current task's stacks, grounded on gothird's vmDumper (io.go) and
// generalized from its single flat-memory view to this core's dictionary/
// data-space/per-task-stack split.
type Dumper struct {
	VM  *VM
	Out io.Writer
}

// Dump writes the dictionary (newest first) and the current task's stacks.
func (d Dumper) Dump() {
	fmt.Fprintf(d.Out, "# dictionary (%d words)\n", d.VM.Dict.Len())
	for id := WordID(d.VM.Dict.Len()); id >= 1; id-- {
		w := d.VM.Dict.Word(id)
		name := d.VM.sym.string(w.Symbol)
		flags := ""
		if w.Immediate() {
			flags += " immediate"
		}
		if w.CompileOnly() {
			flags += " compile-only"
		}
		if w.Hidden() {
			flags += " hidden"
		}
		fmt.Fprintf(d.Out, "  %4d %-16s dfa=%-8d action=%-4d%s\n", id, name, w.DFA, w.Action, flags)
	}

	t := d.VM.CurrentTask()
	fmt.Fprintf(d.Out, "# data stack:    %v\n", t.Data.Slice())
	fmt.Fprintf(d.Out, "# return stack:  %v\n", t.Return.Slice())
	fmt.Fprintf(d.Out, "# float stack:   %v\n", t.Float.Slice())
	fmt.Fprintf(d.Out, "# state: %+v\n", t.State)
	fmt.Fprintf(d.Out, "# here: %v\n", d.VM.Here())
}
