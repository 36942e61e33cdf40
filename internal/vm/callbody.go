package vm

import (
	"plasma/internal/bytecode"
	"plasma/internal/object"
)

// runCallableBody is installed as object.Engine's body runner (§4.6
// call_function, plasma-callable branch): push a fresh scope parented
// on fn.Self's attribute table's parent, push args in reverse onto the
// value stack, and run the body — whose own first instruction is
// conventionally a LoadFunctionArguments(names) prologue binding them.
// Pops the scope on every exit path; a Return unwinds to the returned
// value, an uncaught error propagates.
func runCallableBody(e *object.Engine, c *object.Context, fn *object.Value, args []*object.Value) (*object.Value, bool) {
	var parentScope *object.SymbolTable
	if fn.Self != nil && fn.Self.Symbols != nil {
		parentScope = fn.Self.Symbols.Parent()
	}
	scope := e.AllocateSymbolTable(parentScope)
	c.PushSymbolTable(scope)
	defer c.PopSymbolTable()

	for i := len(args) - 1; i >= 0; i-- {
		c.PushValue(args[i])
	}

	fn.Callable.Code.Reset()
	result, ok := Execute(e, c, fn.Callable.Code)
	return result, ok
}

// runConstructorBody is installed as object.Engine's constructor
// runner (§4.6 construct_object, bytecode branch): the instance's own
// attribute table becomes the active scope — there is no separate
// function scope the way a regular call gets one, since instance
// attributes assigned during construction must land directly in
// instance.Symbols.
func runConstructorBody(e *object.Engine, c *object.Context, instance *object.Value, code *bytecode.Stream, args []*object.Value) (*object.Value, bool) {
	c.PushSymbolTable(instance.Symbols)
	defer c.PopSymbolTable()

	for i := len(args) - 1; i >= 0; i-- {
		c.PushValue(args[i])
	}

	code.Reset()
	result, ok := Execute(e, c, code)
	if !ok {
		return result, false
	}
	return instance, true
}
