package forth

// Dictionary is the ordered sequence of defined Words (spec.md §3/§4.3),
// indexed by WordID. It is grounded on gothird's lookup/compileHeader
// (internals.go, first.go) — reverse scan, case-insensitive, skip hidden —
// but generalized from gothird's singly-linked list embedded in the data
// space into an explicit slice addressed by word id, since spec.md's
// compiled code refers to words by id rather than by following an
// in-arena "previous word" pointer.
type Dictionary struct {
	words []Word
	// lastDefinition is the id of the most recently added word, exposed so
	// RECURSE can compile a call to the word currently being defined even
	// while it is still hidden (spec.md §4.7).
	lastDefinition WordID
}

// Len reports how many words are in the dictionary, including hidden ones.
func (d *Dictionary) Len() int { return len(d.words) }

// LastDefinition returns the id of the most recently added word, or 0 if
// the dictionary is empty.
func (d *Dictionary) LastDefinition() WordID { return d.lastDefinition }

// Word returns the Word at id, or the zero Word if id is out of range.
func (d *Dictionary) Word(id WordID) Word {
	if i := int(id) - 1; i >= 0 && i < len(d.words) {
		return d.words[i]
	}
	return Word{}
}

// SetWord overwrites the Word at id; used by the defining words (e.g. to
// un-hide a word once ';' completes it) and by the AddImmediate/
// AddCompileOnly helpers to set flags.
func (d *Dictionary) SetWord(id WordID, w Word) {
	if i := int(id) - 1; i >= 0 && i < len(d.words) {
		d.words[i] = w
	}
}

// add appends w and returns its new id, updating lastDefinition.
func (d *Dictionary) add(w Word) WordID {
	d.words = append(d.words, w)
	id := WordID(len(d.words))
	d.lastDefinition = id
	return id
}

// AddPrimitive allocates a symbol for name (or reuses the existing one) and
// appends a Word with no flags, dfa = Here, and the given action opcode.
func (d *Dictionary) AddPrimitive(sym *symbols, here Addr, name string, action Opcode) WordID {
	return d.add(Word{Symbol: sym.symbolicate(name), DFA: here, Action: action})
}

// AddImmediate is AddPrimitive plus FlagImmediate.
func (d *Dictionary) AddImmediate(sym *symbols, here Addr, name string, action Opcode) WordID {
	id := d.AddPrimitive(sym, here, name, action)
	w := d.Word(id)
	w.Flags |= FlagImmediate
	d.SetWord(id, w)
	return id
}

// AddCompileOnly is AddPrimitive plus FlagCompileOnly.
func (d *Dictionary) AddCompileOnly(sym *symbols, here Addr, name string, action Opcode) WordID {
	id := d.AddPrimitive(sym, here, name, action)
	w := d.Word(id)
	w.Flags |= FlagCompileOnly
	d.SetWord(id, w)
	return id
}

// AddImmediateAndCompileOnly is AddPrimitive plus both flags.
func (d *Dictionary) AddImmediateAndCompileOnly(sym *symbols, here Addr, name string, action Opcode) WordID {
	id := d.AddPrimitive(sym, here, name, action)
	w := d.Word(id)
	w.Flags |= FlagImmediate | FlagCompileOnly
	d.SetWord(id, w)
	return id
}

// Find scans from newest to oldest, skipping hidden words, and returns the
// id of the first case-insensitive name match, or 0 if none is found.
// sym provides the case-insensitive symbol lookup; find never allocates a
// new symbol.
func (d *Dictionary) Find(sym *symbols, name string) WordID {
	nameSym := sym.symbol(name)
	if nameSym == 0 {
		return 0
	}
	for i := len(d.words) - 1; i >= 0; i-- {
		w := d.words[i]
		if w.Hidden() {
			continue
		}
		if w.Symbol == nameSym {
			return WordID(i + 1)
		}
	}
	return 0
}

// Truncate discards every word defined after length n. Callers are
// responsible for also truncating the symbol table and data space to the
// matching snapshot (see MARKER, spec.md §4.8).
func (d *Dictionary) Truncate(n int) {
	if n >= len(d.words) {
		return
	}
	d.words = d.words[:n]
	d.lastDefinition = 0
	if n > 0 {
		d.lastDefinition = WordID(n)
	}
}
