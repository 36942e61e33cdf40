package object

import "plasma/internal/bytecode"

// bodyRunner is installed by internal/vm at program start so that
// CallFunction can execute a Callable.Code stream without object
// importing vm. Left nil, a Plasma-bytecode call simply fails closed
// (InvalidTypeError) — built-in-only programs never touch it.
var bodyRunner func(e *Engine, c *Context, fn *Value, args []*Value) (*Value, bool)

// SetBodyRunner installs the instruction executor's callback for
// running Callable.Code bodies. Called once by internal/vm's package
// init.
func SetBodyRunner(run func(e *Engine, c *Context, fn *Value, args []*Value) (*Value, bool)) {
	bodyRunner = run
}

// ctorRunner is installed by internal/vm to run a type's constructor
// bytecode (§4.6 construct_object) with the instance's symbols as the
// active scope. Left nil, constructing a type whose constructor is
// bytecode (rather than a built-in initializer) fails closed.
var ctorRunner func(e *Engine, c *Context, instance *Value, code *bytecode.Stream, args []*Value) (*Value, bool)

// SetCtorRunner installs the instruction executor's callback for
// running constructor bytecode bodies.
func SetCtorRunner(run func(e *Engine, c *Context, instance *Value, code *bytecode.Stream, args []*Value) (*Value, bool)) {
	ctorRunner = run
}

// CallFunction implements §4.6's call_function: a built-in closure is
// invoked directly; a plasma-callable checks arity and defers to the
// installed body runner, which pushes a fresh scope parented on
// fn.Self.Symbols.Parent(), binds args via LoadFunctionArguments, and
// runs the body, unwinding Return into (value, true). Calling a
// type-value instead instantiates it (§4.6 construct_object).
func (e *Engine) CallFunction(c *Context, fn *Value, args []*Value) (*Value, bool) {
	if fn == nil {
		return e.InvalidTypeError(fn, "Function", "Type"), false
	}
	if fn.Kind == KindType {
		return e.callType(c, fn, args)
	}
	if fn.Callable == nil {
		return e.InvalidTypeError(fn, "Function"), false
	}
	if fn.Callable.Builtin != nil {
		return fn.Callable.Builtin(e, c, fn.Self, args)
	}
	if fn.Callable.Arity != len(args) {
		return e.InvalidNumberOfArgumentsError(fn.Callable.Arity, len(args)), false
	}
	if bodyRunner == nil {
		return e.InvalidTypeError(fn, "BuiltinFunction"), false
	}
	return bodyRunner(e, c, fn, args)
}

// callType instantiates t: construct_object builds the instance and
// runs any built-in initializer; constructor bytecode, if present, is
// then executed by the installed ctor runner with the instance's
// scope active. A type with no constructor at all falls back to
// force_initialize (§4.6 force_initialization), which locates an
// Initialize method via ordinary attribute lookup instead.
func (e *Engine) callType(c *Context, t *Value, args []*Value) (*Value, bool) {
	instance := e.ConstructObject(c, t, args)
	switch {
	case t.Ctor != nil && t.Ctor.Code != nil:
		if ctorRunner == nil {
			return e.InvalidTypeError(t, "BuiltinConstructor"), false
		}
		result, ok := ctorRunner(e, c, instance, t.Ctor.Code, args)
		if !ok {
			return result, false
		}
	case t.Ctor == nil || t.Ctor.BuiltinInit == nil:
		e.ForceInitialize(c, instance, args)
	}
	return instance, true
}
