package vm

import (
	"plasma/internal/bytecode"
	"plasma/internal/object"
)

// asBoolean interprets v as a boolean per the usual truthy contract:
// a Boolean value's own flag, otherwise whether the value has a
// ToString-like "Boolean" on-demand coercion; lacking one, any
// non-None value is truthy (mirrors a conventional dynamic-language
// default).
func asBoolean(e *object.Engine, c *object.Context, v *object.Value) (bool, bool) {
	if v.Kind == object.KindBoolean {
		return v.Boolean, true
	}
	if v.Kind == object.KindNone {
		return false, true
	}
	if fn, ok := v.Get("Boolean"); ok {
		result, ok := e.CallFunction(c, fn, nil)
		if !ok {
			return false, false
		}
		return result.Kind == object.KindBoolean && result.Boolean, true
	}
	return true, true
}

// handleIf implements §4.7 If/Unless(OneLiner): pop a value, interpret
// as boolean, run Body or ElseBody as a nested stream in the current
// scope. The one-liner variants additionally leave the chosen body's
// result in LastObject (already true of any nested run()). If/Unless
// never touch LastState themselves — whatever the executed body left
// (including a propagated Break/Continue/Redo/Return) is preserved so
// the enclosing loop or function boundary can react (§4.7 Control
// propagation).
func handleIf(e *object.Engine, c *object.Context, info bytecode.ConditionInfo, invert bool, oneLiner bool) (*object.Value, bool) {
	cond := c.PopValue()
	truthy, ok := asBoolean(e, c, cond)
	if !ok {
		return cond, false
	}
	if invert {
		truthy = !truthy
	}

	body := info.ElseBody
	if truthy {
		body = info.Body
	}
	if body == nil {
		c.LastObject = e.NewNone()
		return nil, true
	}
	body.Reset()
	return run(e, c, body)
}

// handleForLoop implements §4.7 ForLoop: pop a value, interpret as
// iterator, drive HasNext/Next, bind unpacked receivers, run Body.
func handleForLoop(e *object.Engine, c *object.Context, info bytecode.LoopInfo) (*object.Value, bool) {
	source := c.PopValue()
	it, ok := e.InterpretAsIterator(c, source)
	if !ok {
		return it, false
	}
	hasNextFn, ok := it.Get(object.OpHasNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(object.OpHasNext), false
	}
	nextFn, ok := it.Get(object.OpNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(object.OpNext), false
	}

	for {
		hasNext, ok := e.CallFunction(c, hasNextFn, nil)
		if !ok {
			return hasNext, false
		}
		truthy, ok := asBoolean(e, c, hasNext)
		if !ok {
			return hasNext, false
		}
		if !truthy {
			break
		}
		next, ok := e.CallFunction(c, nextFn, nil)
		if !ok {
			return next, false
		}

		received := make([]*object.Value, len(info.Receivers))
		if len(info.Receivers) == 1 {
			received[0] = next
		} else {
			errVal, ok := e.UnpackValues(c, next, len(info.Receivers), received)
			if !ok {
				return errVal, false
			}
		}
		scope := c.PeekSymbolTable()
		for i, name := range info.Receivers {
			scope.Set(name, received[i])
		}

		for {
			info.Body.Reset()
			result, ok := run(e, c, info.Body)
			if !ok {
				return result, false
			}
			stop := true
			switch c.LastState {
			case object.StateBreak:
				c.LastState = object.StateNone
				return c.LastObject, true
			case object.StateReturn:
				return c.LastObject, true
			case object.StateRedo:
				c.LastState = object.StateNone
				stop = false
			default:
				c.LastState = object.StateNone
			}
			if stop {
				break
			}
		}
	}
	c.LastObject = e.NewNone()
	return nil, true
}

// handleWhileLoop implements WhileLoop/UntilLoop/DoWhileLoop: the
// condition is re-evaluated per iteration (inverted for Until);
// DoWhile runs the body once before the first check.
func handleWhileLoop(e *object.Engine, c *object.Context, info bytecode.LoopInfo, invert bool, doWhile bool) (*object.Value, bool) {
	runBody := func() (*object.Value, bool, bool) { // result, ok, shouldStop
		info.Body.Reset()
		result, ok := run(e, c, info.Body)
		if !ok {
			return result, false, true
		}
		switch c.LastState {
		case object.StateBreak:
			c.LastState = object.StateNone
			return c.LastObject, true, true
		case object.StateReturn:
			return c.LastObject, true, true
		case object.StateRedo:
			c.LastState = object.StateNone
			return runBodyRedo(e, c, info.Body)
		default:
			c.LastState = object.StateNone
		}
		return nil, true, false
	}

	check := func() (bool, *object.Value, bool) {
		info.Condition.Reset()
		condVal, ok := run(e, c, info.Condition)
		if !ok {
			return false, condVal, false
		}
		truthy, ok := asBoolean(e, c, condVal)
		if !ok {
			return false, condVal, false
		}
		if invert {
			truthy = !truthy
		}
		return truthy, nil, true
	}

	if doWhile {
		result, ok, stop := runBody()
		if stop {
			return result, ok
		}
	}
	for {
		truthy, errVal, ok := check()
		if !ok {
			return errVal, false
		}
		if !truthy {
			break
		}
		result, ok, stop := runBody()
		if stop {
			return result, ok
		}
	}
	c.LastObject = e.NewNone()
	return nil, true
}

// runBodyRedo re-runs a loop body after a Redo signal, propagating any
// further control transfer exactly like the first run.
func runBodyRedo(e *object.Engine, c *object.Context, body *bytecode.Stream) (*object.Value, bool, bool) {
	for {
		body.Reset()
		result, ok := run(e, c, body)
		if !ok {
			return result, false, true
		}
		switch c.LastState {
		case object.StateBreak:
			c.LastState = object.StateNone
			return c.LastObject, true, true
		case object.StateReturn:
			return c.LastObject, true, true
		case object.StateRedo:
			c.LastState = object.StateNone
			continue
		default:
			c.LastState = object.StateNone
			return nil, true, false
		}
	}
}

// handleRaise implements §4.7 Raise: pop a value, require it
// implements RuntimeError, propagate as the executor's error result.
func handleRaise(e *object.Engine, c *object.Context) (*object.Value, bool) {
	v := c.PopValue()
	if !e.IsError(v) {
		return e.InvalidTypeError(v, "RuntimeError"), false
	}
	return v, false
}

// handleTryBlock implements §4.7 TryBlock: run Body; on error, walk
// ExceptBlocks in order, matching an empty Targets set against any
// error or a type-implements test otherwise; on no match run ElseBody
// only if Body succeeded without raising; run Finally unconditionally
// after any matched path or success.
func handleTryBlock(e *object.Engine, c *object.Context, info bytecode.TryInfo) (*object.Value, bool) {
	info.Body.Reset()
	result, ok := run(e, c, info.Body)

	var errVal *object.Value
	if ok {
		if info.ElseBody != nil {
			info.ElseBody.Reset()
			elseResult, elseOK := run(e, c, info.ElseBody)
			if !elseOK {
				errVal = elseResult
				ok = false
			} else {
				result = elseResult
			}
		}
	} else {
		errVal = result
	}

	if ok {
		runFinally(e, c, info.Finally)
		return result, true
	}

	for _, block := range info.ExceptBlocks {
		matched, candidates, matchOK := matchesExcept(e, c, block, errVal)
		if !matchOK {
			runFinally(e, c, info.Finally)
			return candidates, false
		}
		if !matched {
			continue
		}
		scope := c.PeekSymbolTable()
		if block.CaptureName != "" {
			scope.Set(block.CaptureName, errVal)
		}
		block.Body.Reset()
		handled, handledOK := run(e, c, block.Body)
		runFinally(e, c, info.Finally)
		return handled, handledOK
	}

	// No except matched: the error escapes. Finally does not run
	// (§7: "NOT run if no except matched").
	return errVal, false
}

func matchesExcept(e *object.Engine, c *object.Context, block bytecode.ExceptBlock, errVal *object.Value) (matched bool, errOut *object.Value, ok bool) {
	if block.Targets == nil {
		return true, nil, true
	}
	block.Targets.Reset()
	if raised, runOK := run(e, c, block.Targets); !runOK {
		return false, raised, false
	}
	container := c.PopValue()
	if container.Content == nil {
		return false, nil, true
	}
	if len(container.Content) == 0 {
		return true, nil, true
	}
	for _, target := range container.Content {
		if errVal.Implements(target) {
			return true, nil, true
		}
	}
	return false, nil, true
}

func runFinally(e *object.Engine, c *object.Context, finally *bytecode.Stream) {
	if finally == nil {
		return
	}
	finally.Reset()
	run(e, c, finally)
}
