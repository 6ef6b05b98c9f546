package forth

// isSpace reports whether b is ASCII whitespace. The tokenizer only ever
// splits on plain ASCII space, tab, CR and NL (spec.md's Non-goals exclude
// locale-aware or unicode-aware word splitting).
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// parseWord scans the next whitespace-delimited token from t's current
// input source, advancing SourceIndex to just past it; the whitespace that
// follows is left for the next call. Returns "", false at end of input. Grounded on gothird's
// VM.scan (internals.go), generalized to operate on a Task's own buffer
// rather than a single shared reader.
func (t *Task) parseWord() (string, bool) {
	text := t.currentText()
	i := t.State.SourceIndex
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i >= len(text) {
		t.State.SourceIndex = i
		return "", false
	}
	start := i
	for i < len(text) && !isSpace(text[i]) {
		i++
	}
	word := text[start:i]
	t.State.SourceIndex = i
	return word, true
}

// parseDelim scans input up to (and consuming) the next occurrence of delim,
// or to end of input if delim never appears; used by "(" comments. Unlike
// parseWord it does not skip leading delimiters.
func (t *Task) parseDelim(delim byte) string {
	text := t.currentText()
	i := t.State.SourceIndex
	start := i
	for i < len(text) && text[i] != delim {
		i++
	}
	end := i
	if i < len(text) {
		i++ // consume the delimiter itself
	}
	t.State.SourceIndex = i
	return text[start:end]
}

// restOfLine skips everything from the current cursor to the next newline,
// consuming through the newline if present. Used by the "\" line comment.
func (t *Task) restOfLine() {
	text := t.currentText()
	i := t.State.SourceIndex
	for i < len(text) && text[i] != '\n' {
		i++
	}
	if i < len(text) {
		i++
	}
	t.State.SourceIndex = i
}

func primParenComment(vm *VM, t *Task) error {
	t.parseDelim(')')
	return nil
}

func primBackslashComment(vm *VM, t *Task) error {
	t.restOfLine()
	return nil
}

// primBracketChar implements [CHAR]: at compile time, reads the next word
// and compiles a literal of its first rune's codepoint.
func primBracketChar(vm *VM, t *Task) error {
	word, ok := t.parseWord()
	if !ok || len(word) == 0 {
		return errf(ErrUnexpectedEndOfFile, "[char]")
	}
	r := []rune(word)[0]
	vm.compileLiteral(Cell(r))
	return nil
}
