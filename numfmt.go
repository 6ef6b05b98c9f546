package forth

// <# # #S HOLD SIGN #> implement the classic Forth numeric-output picture
// words, justifying the hold buffer named in spec.md §3: digits accumulate
// from least to most significant, so the buffer is built back-to-front and
// reversed once at #>.

func primLessNum(vm *VM, t *Task) error {
	vm.holdBuf = vm.holdBuf[:0]
	return nil
}

func primHold(vm *VM, t *Task) error {
	c, err := t.Data.Pop()
	if err != nil {
		return err
	}
	vm.holdBuf = append(vm.holdBuf, byte(c))
	return nil
}

func primSign(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	if v < 0 {
		vm.holdBuf = append(vm.holdBuf, '-')
	}
	return nil
}

// primNumSign extracts the least significant digit of the unsigned value on
// top of the data stack (in the current base) and holds it, leaving the
// quotient for the next # or #S.
func primNumSign(vm *VM, t *Task) error {
	v, err := t.Data.Pop()
	if err != nil {
		return err
	}
	base := Cell(vm.DS.Base())
	u := uint64(v)
	digit := byte(u % uint64(base))
	u /= uint64(base)
	if digit < 10 {
		vm.holdBuf = append(vm.holdBuf, '0'+digit)
	} else {
		vm.holdBuf = append(vm.holdBuf, 'a'+digit-10)
	}
	return t.Data.Push(Cell(u))
}

func primNumSignS(vm *VM, t *Task) error {
	for {
		if err := primNumSign(vm, t); err != nil {
			return err
		}
		v, err := t.Data.Last()
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// primNumGT drops the remaining (now-zero) value, reverses the held digits
// into output order, and compiles them into the data space as raw bytes
// (no count prefix) so TYPE can print them: pushes (addr, len).
func primNumGT(vm *VM, t *Task) error {
	if _, err := t.Data.Pop(); err != nil {
		return err
	}
	n := len(vm.holdBuf)
	buf := make([]byte, n)
	for i, b := range vm.holdBuf {
		buf[n-1-i] = b
	}
	vm.holdBuf = vm.holdBuf[:0]
	addr := vm.DS.CompileBytes(buf)
	if err := t.Data.Push(Cell(addr)); err != nil {
		return err
	}
	return t.Data.Push(Cell(n))
}
