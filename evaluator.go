package forth

import "strconv"

// Evaluate feeds text to the current task's outer interpreter: tokenize,
// look the token up in the Dictionary, and either execute it, compile a
// call to it, or fall through the literal evaluator chain (spec.md §4.4).
// It returns once input is exhausted, the evaluation_limit is hit between
// tokens, or an unrecovered error/Bye signal occurs.
func (vm *VM) Evaluate(text string) error {
	t := vm.CurrentTask()
	t.SetSource("<eval>", text)
	return vm.evalLoop(t)
}

// EvaluateSource behaves like Evaluate but names the source, e.g. for a
// file loaded via an external INCLUDE-style primitive.
func (vm *VM) EvaluateSource(name, text string) error {
	t := vm.CurrentTask()
	t.SetSource(name, text)
	return vm.evalLoop(t)
}

func (vm *VM) evalLoop(t *Task) error {
	processed := 0
	for {
		if vm.evaluationLimit > 0 && processed >= vm.evaluationLimit {
			return nil
		}
		word, ok := t.parseWord()
		if !ok {
			if t.popSource() {
				continue
			}
			return nil
		}
		processed++
		if err := vm.evaluateToken(t, word); err != nil {
			if sig, isSig := IsSignal(err); isSig {
				switch sig {
				case SigQuit:
					t.Quit()
					vm.err = nil
					return nil
				case SigAbort:
					t.ClearStacks()
					t.Quit()
					vm.err = err
					return nil
				case SigPause:
					vm.err = err
					return err
				default: // SigBye, or a stray SigNest escaping run()
					return err
				}
			}
			vm.err = err
			return err
		}
	}
}

func (vm *VM) evaluateToken(t *Task, word string) error {
	if id := vm.Dict.Find(&vm.sym, word); id != 0 {
		w := vm.Dict.Word(id)
		switch {
		case t.State.IsCompiling && !w.Immediate():
			vm.DS.CompileU32(uint32(id))
			return nil
		case !t.State.IsCompiling && w.CompileOnly():
			return errf(ErrInterpretingACompileOnlyWord, "%v", word)
		default:
			return vm.invoke(t, id)
		}
	}

	vm.lastToken = word
	for _, ev := range vm.literalEvaluators {
		if err := ev(vm, t, word); err == nil {
			return nil
		}
	}
	return errf(ErrUndefinedWord, "%v", word)
}

// evalInteger is the default literal evaluator (spec.md §4.4): parses word
// as a signed integer in the current BASE, pushing (interpret mode) or
// compiling (compile mode) it on success.
func evalInteger(vm *VM, t *Task, word string) error {
	v, err := strconv.ParseInt(word, int(vm.DS.Base()), 64)
	if err != nil {
		return err
	}
	if t.State.IsCompiling {
		vm.compileLiteral(Cell(v))
		return nil
	}
	return t.Data.Push(Cell(v))
}

// evalFloat is registered as a second literal evaluator (spec.md §4.4
// "floats... may be added by extension modules"): it only accepts tokens
// that parse as floating point, so it never shadows plain integers.
func evalFloat(vm *VM, t *Task, word string) error {
	v, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return err
	}
	if t.State.IsCompiling {
		vm.compileFloatLiteral(v)
		return nil
	}
	return t.Float.Push(v)
}
