package forth

import "strings"

// symbols interns word names into small integer ids, kept near-verbatim in
// shape from gothird's symbols type (core.go): a growable string slice plus
// a map back to ids. Name strings never move once interned; lookup is made
// case-insensitive here on top of gothird's case-sensitive storage, since
// spec.md §3/§4.3 requires dictionary find() to compare case-insensitively.
type symbols struct {
	strings []string
	byName  map[string]uint32
}

// symbolicate interns s (by its lowercase form) and returns its id,
// allocating a new one if s hasn't been seen before. Ids are 1-based; 0 is
// never a valid symbol id.
func (sym *symbols) symbolicate(s string) uint32 {
	key := strings.ToLower(s)
	if id, ok := sym.byName[key]; ok {
		return id
	}
	if sym.byName == nil {
		sym.byName = make(map[string]uint32)
	}
	sym.strings = append(sym.strings, s)
	id := uint32(len(sym.strings))
	sym.byName[key] = id
	return id
}

// symbol returns the id for s if it has already been interned, or 0.
func (sym symbols) symbol(s string) uint32 {
	return sym.byName[strings.ToLower(s)]
}

// string returns the originally-cased name for id, or "" if id is out of
// range.
func (sym symbols) string(id uint32) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

// len reports how many symbols have been interned.
func (sym symbols) len() int { return len(sym.strings) }

// truncate discards every symbol interned after length n, used by MARKER to
// roll back the symbol table alongside the dictionary and data space.
func (sym *symbols) truncate(n int) {
	if n >= len(sym.strings) {
		return
	}
	for _, s := range sym.strings[n:] {
		delete(sym.byName, strings.ToLower(s))
	}
	sym.strings = sym.strings[:n]
}
