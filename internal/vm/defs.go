package vm

import (
	"plasma/internal/bytecode"
	"plasma/internal/object"
)

// handleNewClass implements §4.7 NewClass/NewInterface: pop n_bases
// bases, consume body_length following instructions as the
// constructor body, bind name in the current scope to a fresh
// type-value.
func handleNewClass(e *object.Engine, c *object.Context, s *bytecode.Stream, info bytecode.ClassInfo) (*object.Value, bool) {
	bases := make([]*object.Value, info.NumBases)
	for i := info.NumBases - 1; i >= 0; i-- {
		bases[i] = c.PopValue()
	}
	body := s.NextN(info.BodyLength)

	ctor := &object.Constructor{Code: body}
	t := e.NewType(info.Name, bases, ctor)
	c.PeekSymbolTable().Set(info.Name, t)
	c.LastObject = t
	return nil, true
}

// handleNewFunction implements NewFunction/NewClassFunction/
// NewLambdaFunction: consume body, bind as a plasma-callable with
// info.Arity. NewClassFunction attaches to the value on top of the
// stack without popping, with self set to that value. NewLambdaFunction
// places the function in LastObject instead of binding a name.
func handleNewFunction(e *object.Engine, c *object.Context, s *bytecode.Stream, info bytecode.FunctionInfo, classFunction, lambda bool) (*object.Value, bool) {
	body := s.NextN(info.BodyLength)
	callable := &object.Callable{Arity: info.Arity, Code: body}

	fn := e.NewFunction(info.Name, info.Arity, callable)

	if classFunction {
		owner := c.PeekValue()
		fn.Self = owner
		owner.Set(info.Name, fn)
		c.LastObject = fn
		return nil, true
	}
	if lambda {
		c.LastObject = fn
		return nil, true
	}
	c.PeekSymbolTable().Set(info.Name, fn)
	c.LastObject = fn
	return nil, true
}

// handleLoadFunctionArguments implements the synthetic prologue run at
// the start of every plasma-callable body: the caller pushes args
// reversed (runCallableBody), so the stack top is the first parameter
// — bind names top-down by popping directly, in order (§4.6
// call_function, load_function_arguments_op).
func handleLoadFunctionArguments(e *object.Engine, c *object.Context, names []string) (*object.Value, bool) {
	scope := c.PeekSymbolTable()
	for _, name := range names {
		scope.Set(name, c.PopValue())
	}
	return nil, true
}

// handleNewModule implements §4.7 NewModule: execute the module body
// with a fresh scope whose symbols become the module's symbols; bind
// name in the outer scope.
func handleNewModule(e *object.Engine, c *object.Context, s *bytecode.Stream, info bytecode.FunctionInfo) (*object.Value, bool) {
	body := s.NextN(info.BodyLength)
	moduleScope := e.AllocateSymbolTable(c.Engine().Master)

	c.PushSymbolTable(moduleScope)
	result, ok := run(e, c, body)
	c.PopSymbolTable()
	if !ok {
		return result, false
	}

	mod := e.NewModule(info.Name, moduleScope)
	c.PeekSymbolTable().Set(info.Name, mod)
	c.LastObject = mod
	return nil, true
}

// handleNewGenerator implements §4.7 NewGenerator: pop a value,
// interpret as iterator, consume operation_length following
// instructions as the mapping body, and build an iterator whose Next
// drives upstream then runs the operation against the (possibly
// unpacked) yielded value.
func handleNewGenerator(e *object.Engine, c *object.Context, s *bytecode.Stream, info bytecode.GeneratorInfo) (*object.Value, bool) {
	upstream := c.PopValue()
	opBody := s.NextN(info.OperationLength)

	// The operation is an ordinary plasma-callable: its own
	// LoadFunctionArguments prologue (emitted by the compiler as the
	// body's first instruction) binds the n_receivers positional
	// values, exactly like any other function call.
	operationFn := e.NewFunction("<generator>", info.NumReceivers,
		&object.Callable{Arity: info.NumReceivers, Code: opBody})

	operation := func(e *object.Engine, c *object.Context, received []*object.Value) (*object.Value, bool) {
		return e.CallFunction(c, operationFn, received)
	}

	gen, ok := e.NewGenerator(c, upstream, info.NumReceivers, operation)
	if !ok {
		return gen, false
	}
	c.LastObject = gen
	return nil, true
}
