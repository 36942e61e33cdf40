// Package vm implements components G and H: the instruction executor
// and its iterator/generator machinery (spec.md §4.7, §4.8). It is the
// only package that knows how to run a *bytecode.Stream against an
// *object.Context.
package vm

import (
	"plasma/internal/bytecode"
	"plasma/internal/object"
)

func init() {
	object.SetBodyRunner(runCallableBody)
	object.SetCtorRunner(runConstructorBody)
}

// Execute is the engine's single entry point (§6.2): run stream
// against context, returning the error value and false on an
// unhandled raise, or the Return-produced value (or a fresh None) on
// success.
func Execute(e *object.Engine, c *object.Context, stream *bytecode.Stream) (*object.Value, bool) {
	v, ok := run(e, c, stream)
	if !ok {
		return v, false
	}
	if c.LastState == object.StateReturn {
		c.LastState = object.StateNone
		return v, true
	}
	return e.NewNone(), true
}

// run executes stream's instructions until exhaustion, an error, or a
// control-transfer signal. It resets LastState to None before every
// instruction (§4.7); once an instruction leaves LastState non-None
// (either directly, e.g. Break, or by a nested If/Unless propagating
// one out), run stops immediately without touching it further so the
// owning construct (loop, function boundary) can react.
func run(e *object.Engine, c *object.Context, s *bytecode.Stream) (*object.Value, bool) {
	for s.HasNext() {
		c.LastState = object.StateNone
		instr := s.Next()
		errVal, ok := dispatch(e, c, s, instr)
		if !ok {
			return errVal, false
		}
		if c.LastState != object.StateNone {
			return c.LastObject, true
		}
	}
	return c.LastObject, true
}

func dispatch(e *object.Engine, c *object.Context, s *bytecode.Stream, instr bytecode.Instruction) (*object.Value, bool) {
	switch instr.Op {
	case bytecode.OpNewString:
		c.LastObject = e.NewString(instr.Value.(string))
		return nil, true
	case bytecode.OpNewBytes:
		c.LastObject = e.NewBytes(instr.Value.([]byte))
		return nil, true
	case bytecode.OpNewInteger:
		c.LastObject = e.NewInteger(instr.Value.(int64))
		return nil, true
	case bytecode.OpNewFloat:
		c.LastObject = e.NewFloat(instr.Value.(float64))
		return nil, true
	case bytecode.OpGetTrue:
		c.LastObject = e.NewBool(true)
		return nil, true
	case bytecode.OpGetFalse:
		c.LastObject = e.NewBool(false)
		return nil, true
	case bytecode.OpGetNone:
		c.LastObject = e.NewNone()
		return nil, true

	case bytecode.OpNewTuple:
		return handleNewAggregate(e, c, instr.Value.(int), true)
	case bytecode.OpNewArray:
		return handleNewAggregate(e, c, instr.Value.(int), false)
	case bytecode.OpNewHash:
		return handleNewHash(e, c, instr.Value.(int))

	case bytecode.OpUnary:
		return handleUnary(e, c, instr.Value.(bytecode.UnaryOperator))
	case bytecode.OpBinary:
		return handleBinary(e, c, instr.Value.(bytecode.BinaryOperator))

	case bytecode.OpGetIdentifier:
		return handleGetIdentifier(e, c, instr.Value.(string))
	case bytecode.OpSelectNameFromObject:
		return handleSelectNameFromObject(e, c, instr.Value.(string))
	case bytecode.OpIndex:
		return handleIndex(e, c)

	case bytecode.OpAssignIdentifier:
		c.PeekSymbolTable().Set(instr.Value.(string), c.PopValue())
		return nil, true
	case bytecode.OpAssignSelector:
		return handleAssignSelector(e, c, instr.Value.(string))
	case bytecode.OpAssignIndex:
		return handleAssignIndex(e, c)

	case bytecode.OpMethodInvocation:
		return handleMethodInvocation(e, c, instr.Value.(int))

	case bytecode.OpNewClass, bytecode.OpNewInterface:
		return handleNewClass(e, c, s, instr.Value.(bytecode.ClassInfo))
	case bytecode.OpNewFunction:
		return handleNewFunction(e, c, s, instr.Value.(bytecode.FunctionInfo), false, false)
	case bytecode.OpNewClassFunction:
		return handleNewFunction(e, c, s, instr.Value.(bytecode.FunctionInfo), true, false)
	case bytecode.OpNewLambdaFunction:
		return handleNewFunction(e, c, s, instr.Value.(bytecode.FunctionInfo), false, true)
	case bytecode.OpLoadFunctionArguments:
		return handleLoadFunctionArguments(e, c, instr.Value.([]string))
	case bytecode.OpNewModule:
		return handleNewModule(e, c, s, instr.Value.(bytecode.FunctionInfo))
	case bytecode.OpNewGenerator:
		return handleNewGenerator(e, c, s, instr.Value.(bytecode.GeneratorInfo))

	case bytecode.OpIf:
		return handleIf(e, c, instr.Value.(bytecode.ConditionInfo), false, false)
	case bytecode.OpUnless:
		return handleIf(e, c, instr.Value.(bytecode.ConditionInfo), true, false)
	case bytecode.OpIfOneLiner:
		return handleIf(e, c, instr.Value.(bytecode.ConditionInfo), false, true)
	case bytecode.OpUnlessOneLiner:
		return handleIf(e, c, instr.Value.(bytecode.ConditionInfo), true, true)
	case bytecode.OpForLoop:
		return handleForLoop(e, c, instr.Value.(bytecode.LoopInfo))
	case bytecode.OpWhileLoop:
		return handleWhileLoop(e, c, instr.Value.(bytecode.LoopInfo), false, false)
	case bytecode.OpUntilLoop:
		return handleWhileLoop(e, c, instr.Value.(bytecode.LoopInfo), true, false)
	case bytecode.OpDoWhileLoop:
		return handleWhileLoop(e, c, instr.Value.(bytecode.LoopInfo), false, true)
	case bytecode.OpRaise:
		return handleRaise(e, c)
	case bytecode.OpTryBlock:
		return handleTryBlock(e, c, instr.Value.(bytecode.TryInfo))

	case bytecode.OpPush:
		if c.LastObject != nil {
			c.PushValue(c.LastObject)
		}
		return nil, true
	case bytecode.OpNop:
		return nil, true
	case bytecode.OpReturn:
		return handleReturn(e, c, instr.Value.(int))
	case bytecode.OpBreak:
		c.LastState = object.StateBreak
		c.LastObject = e.NewNone()
		return nil, true
	case bytecode.OpContinue:
		c.LastState = object.StateContinue
		c.LastObject = e.NewNone()
		return nil, true
	case bytecode.OpRedo:
		c.LastState = object.StateRedo
		c.LastObject = e.NewNone()
		return nil, true
	}
	return nil, true
}

func handleNewAggregate(e *object.Engine, c *object.Context, n int, tuple bool) (*object.Value, bool) {
	items := make([]*object.Value, n)
	for i := 0; i < n; i++ {
		items[i] = c.PopValue()
	}
	if tuple {
		c.LastObject = e.NewTuple(items)
	} else {
		c.LastObject = e.NewArray(items)
	}
	return nil, true
}

func handleNewHash(e *object.Engine, c *object.Context, n int) (*object.Value, bool) {
	pairs := make([]object.KeyValue, n)
	for i := 0; i < n; i++ {
		value := c.PopValue()
		key := c.PopValue()
		pairs[i] = object.KeyValue{Key: key, Value: value}
	}
	c.LastObject = e.NewHashTable(pairs, hashValue, valuesEqual)
	return nil, true
}

func handleGetIdentifier(e *object.Engine, c *object.Context, name string) (*object.Value, bool) {
	v, ok := c.PeekSymbolTable().GetAny(name)
	if !ok {
		return e.ObjectWithNameNotFoundError(name), false
	}
	c.LastObject = v
	return nil, true
}

func handleSelectNameFromObject(e *object.Engine, c *object.Context, name string) (*object.Value, bool) {
	recv := c.PopValue()
	v, ok := recv.Get(name)
	if !ok {
		return e.ObjectWithNameNotFoundError(name), false
	}
	c.LastObject = v
	return nil, true
}

func handleIndex(e *object.Engine, c *object.Context) (*object.Value, bool) {
	index := c.PopValue()
	source := c.PopValue()
	fn, ok := source.Get("Index")
	if !ok {
		return e.ObjectWithNameNotFoundError("Index"), false
	}
	result, ok := e.CallFunction(c, fn, []*object.Value{index})
	if !ok {
		return result, false
	}
	c.LastObject = result
	return nil, true
}

func handleAssignSelector(e *object.Engine, c *object.Context, name string) (*object.Value, bool) {
	receiver := c.PopValue()
	value := c.PopValue()
	receiver.Set(name, value)
	c.LastObject = value
	return nil, true
}

func handleAssignIndex(e *object.Engine, c *object.Context) (*object.Value, bool) {
	index := c.PopValue()
	receiver := c.PopValue()
	value := c.PopValue()
	fn, ok := receiver.Get("Assign")
	if !ok {
		return e.ObjectWithNameNotFoundError("Assign"), false
	}
	result, ok := e.CallFunction(c, fn, []*object.Value{index, value})
	if !ok {
		return result, false
	}
	c.LastObject = result
	return nil, true
}

func handleMethodInvocation(e *object.Engine, c *object.Context, n int) (*object.Value, bool) {
	fn := c.PopValue()
	args := make([]*object.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = c.PopValue()
	}
	result, ok := e.CallFunction(c, fn, args)
	if !ok {
		return result, false
	}
	c.LastObject = result
	return nil, true
}

func handleReturn(e *object.Engine, c *object.Context, n int) (*object.Value, bool) {
	switch n {
	case 0:
		c.LastObject = e.NewNone()
	case 1:
		c.LastObject = c.PopValue()
	default:
		items := make([]*object.Value, n)
		for i := n - 1; i >= 0; i-- {
			items[i] = c.PopValue()
		}
		c.LastObject = e.NewTuple(items)
	}
	c.LastState = object.StateReturn
	return nil, true
}
