package object

import "fmt"

// NewRuntimeError allocates an instance of the given error-kind type
// (itself a subtype of RuntimeError) carrying message, with an
// on-demand ToString matching §7: `"<TypeName>: <message>"`.
func (e *Engine) NewRuntimeError(kindType *Value, message string) *Value {
	v := e.AllocateValue()
	v.Kind = KindObject
	v.Type = kindType
	if kindType != nil {
		v.TypeName = kindType.TypeName
	}
	v.Symbols = e.AllocateSymbolTable(nil)
	if kindType != nil {
		v.Symbols.parent = kindType.Symbols
	}
	v.StringVal = message
	typeName := v.TypeName
	v.SetOnDemand(OpToString, func() *Value {
		return e.NewString(fmt.Sprintf("%s: %s", typeName, message))
	})
	return v
}

// ObjectWithNameNotFoundError builds the error raised when attribute
// lookup (§4.2) exhausts symbols, on-demand, and the type chain.
func (e *Engine) ObjectWithNameNotFoundError(name string) *Value {
	return e.NewRuntimeError(e.BuiltinType("ObjectWithNameNotFoundError"),
		fmt.Sprintf("object has no attribute named %q", name))
}

// InvalidTypeError builds the error raised when a value's type does
// not match any of expected.
func (e *Engine) InvalidTypeError(got *Value, expected ...string) *Value {
	gotName := "<nil>"
	if got != nil {
		gotName = got.TypeName
	}
	return e.NewRuntimeError(e.BuiltinType("InvalidTypeError"),
		fmt.Sprintf("expected one of %v, got %s", expected, gotName))
}

// InvalidNumberOfArgumentsError builds the error raised on arity
// mismatch for a call or an unpack (§4.6, §4.8).
func (e *Engine) InvalidNumberOfArgumentsError(expected, got int) *Value {
	return e.NewRuntimeError(e.BuiltinType("InvalidNumberOfArgumentsError"),
		fmt.Sprintf("expected %d argument(s), got %d", expected, got))
}

// BuiltInSymbolProtectionError builds the reserved error for an
// attempted rebind of a protected built-in name.
func (e *Engine) BuiltInSymbolProtectionError(name string) *Value {
	return e.NewRuntimeError(e.BuiltinType("BuiltInSymbolProtectionError"),
		fmt.Sprintf("cannot rebind built-in name %q", name))
}

// IsError reports whether v implements RuntimeError (§4.7 Raise
// requires this before propagating).
func (e *Engine) IsError(v *Value) bool {
	if v == nil {
		return false
	}
	return v.Implements(e.BuiltinType("RuntimeError"))
}
