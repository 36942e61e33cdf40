package object

// InterpretAsIterator implements §4.8: if v is already an iterator,
// return it; otherwise call its Iter method, which must yield one.
func (e *Engine) InterpretAsIterator(c *Context, v *Value) (*Value, bool) {
	if v.Kind == KindIterator {
		return v, true
	}
	iterFn, ok := v.Get(OpIter)
	if !ok {
		return e.ObjectWithNameNotFoundError(OpIter), false
	}
	return e.CallFunction(c, iterFn, nil)
}

// NewGenerator wraps upstream's HasNext/Next pair: on Next, it drives
// upstream and then, if n_receivers==1, passes the value straight to
// operation; otherwise unpacks it into n_receivers positional values
// first (§4.7 NewGenerator).
func (e *Engine) NewGenerator(c *Context, upstream *Value, nReceivers int, operation func(e *Engine, c *Context, received []*Value) (*Value, bool)) (*Value, bool) {
	it, ok := e.InterpretAsIterator(c, upstream)
	if !ok {
		return it, false
	}
	hasNextFn, ok := it.Get(OpHasNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(OpHasNext), false
	}
	nextFn, ok := it.Get(OpNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(OpNext), false
	}

	gen := e.NewIterator(
		func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.CallFunction(c, hasNextFn, nil)
		},
		func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			next, ok := e.CallFunction(c, nextFn, nil)
			if !ok {
				return next, false
			}
			received := make([]*Value, nReceivers)
			if nReceivers == 1 {
				received[0] = next
			} else {
				if err, ok := e.UnpackValues(c, next, nReceivers, received); !ok {
					return err, false
				}
			}
			return operation(e, c, received)
		},
	)
	gen.Source = upstream
	return gen, true
}

// UnpackValues implements §4.8 unpack_values: out must receive
// exactly k elements drawn from v.Content, or, failing that, by
// driving v as an iterator. Arity mismatch is
// InvalidNumberOfArgumentsError.
func (e *Engine) UnpackValues(c *Context, v *Value, k int, out []*Value) (*Value, bool) {
	if v.Content != nil {
		if len(v.Content) != k {
			return e.InvalidNumberOfArgumentsError(k, len(v.Content)), false
		}
		copy(out, v.Content)
		return nil, true
	}

	it, ok := e.InterpretAsIterator(c, v)
	if !ok {
		return it, false
	}
	hasNextFn, ok := it.Get(OpHasNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(OpHasNext), false
	}
	nextFn, ok := it.Get(OpNext)
	if !ok {
		return e.ObjectWithNameNotFoundError(OpNext), false
	}

	collected := make([]*Value, 0, k)
	for {
		hasNext, ok := e.CallFunction(c, hasNextFn, nil)
		if !ok {
			return hasNext, false
		}
		if hasNext.Kind != KindBoolean || !hasNext.Boolean {
			break
		}
		next, ok := e.CallFunction(c, nextFn, nil)
		if !ok {
			return next, false
		}
		collected = append(collected, next)
		if len(collected) > k {
			break
		}
	}
	if len(collected) != k {
		return e.InvalidNumberOfArgumentsError(k, len(collected)), false
	}
	copy(out, collected)
	return nil, true
}
