package forth

// WordFlags records the per-word visibility/behavior bits from spec.md §3:
// immediate (runs during compilation instead of being compiled),
// compile-only (must not run in interpret mode), and hidden (temporarily
// invisible to Find, used while a definition is incomplete).
type WordFlags uint8

const (
	FlagImmediate WordFlags = 1 << iota
	FlagCompileOnly
	FlagHidden
)

func (f WordFlags) Immediate() bool   { return f&FlagImmediate != 0 }
func (f WordFlags) CompileOnly() bool { return f&FlagCompileOnly != 0 }
func (f WordFlags) Hidden() bool      { return f&FlagHidden != 0 }

// Opcode identifies which Go primitive implements a Word's action. This is
// option (a) from spec.md §9's design notes ("an enum of primitive opcodes
// plus a fallback 'nest' for user definitions"): execute handles opNest
// directly and dispatches every other opcode by indexing the VM's table of
// primitive functions, reporting UnsupportedOperation for an opcode with no
// function registered.
type Opcode int32

// WordID identifies a Word by its position in the Dictionary. Ids are
// 1-based, as with symbols; 0 means "no such word" (the sentinel Find and
// the forward-reference cache both use).
type WordID uint32

// Word is one dictionary entry (spec.md §3/§4.3).
type Word struct {
	Symbol uint32
	Flags  WordFlags
	DFA    Addr
	Action Opcode
}

func (w Word) Immediate() bool   { return w.Flags.Immediate() }
func (w Word) CompileOnly() bool { return w.Flags.CompileOnly() }
func (w Word) Hidden() bool      { return w.Flags.Hidden() }
