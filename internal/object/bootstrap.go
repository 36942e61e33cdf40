package object

import "fmt"

// runtimeErrorCtor captures the one raised argument as instance.StringVal
// and wires an on-demand ToString matching NewRuntimeError's "<TypeName>:
// <message>" form. Registered as Ctor.BuiltinInit (not a type-level
// on-demand Initialize) so construct_object hands it the real instance
// directly — an on-demand Initialize cached on the shared type would bind
// self to the type, not the instance, corrupting every instance alike.
var runtimeErrorCtor = &Constructor{
	BuiltinInit: func(e *Engine, c *Context, instance *Value, args []*Value) {
		if len(args) > 0 {
			instance.StringVal = args[0].StringVal
		}
		typeName := instance.TypeName
		message := instance.StringVal
		instance.SetOnDemand(OpToString, func() *Value {
			return e.NewString(fmt.Sprintf("%s: %s", typeName, message))
		})
	},
}

// bootstrap seeds the master symbol table with the built-in types and
// singletons every program needs before its own definitions run
// (§6.2). All bootstrap values are BuiltIn and so pinned against any
// sweep (§3).
func (e *Engine) bootstrap() {
	typeType := e.AllocateValue()
	typeType.Kind = KindType
	typeType.TypeName = "Type"
	typeType.BuiltIn = true
	typeType.Symbols = e.AllocateSymbolTable(nil)
	e.builtinTypes["Type"] = typeType

	object := e.defineBuiltinType("Object", nil)

	runtimeError := e.defineBuiltinTypeWithCtor("RuntimeError", []*Value{object}, runtimeErrorCtor)

	for _, name := range []string{
		"ObjectWithNameNotFoundError",
		"InvalidTypeError",
		"InvalidNumberOfArgumentsError",
		"BuiltInSymbolProtectionError",
	} {
		e.defineBuiltinTypeWithCtor(name, []*Value{runtimeError}, runtimeErrorCtor)
	}

	for _, name := range []string{
		"Integer", "Float", "String", "Bytes", "Boolean", "None",
		"Tuple", "Array", "HashTable", "Iterator", "Function", "Module",
	} {
		e.defineBuiltinType(name, []*Value{object})
	}

	none := e.NewNone()
	none.BuiltIn = true
	e.Master.Set("None", none)

	trueVal := e.NewBool(true)
	trueVal.BuiltIn = true
	e.Master.Set("True", trueVal)

	falseVal := e.NewBool(false)
	falseVal.BuiltIn = true
	e.Master.Set("False", falseVal)
}

// defineBuiltinType allocates a type value, registers it under name in
// both the master scope and the builtin-type lookup table, and marks
// it BuiltIn.
func (e *Engine) defineBuiltinType(name string, parents []*Value) *Value {
	return e.defineBuiltinTypeWithCtor(name, parents, nil)
}

// defineBuiltinTypeWithCtor is defineBuiltinType plus an explicit
// Constructor, for built-in types (like RuntimeError) whose instances
// need construct-time initialization rather than a bare attribute table.
func (e *Engine) defineBuiltinTypeWithCtor(name string, parents []*Value, ctor *Constructor) *Value {
	t := e.NewType(name, parents, ctor)
	t.BuiltIn = true
	e.builtinTypes[name] = t
	e.Master.Set(name, t)
	return t
}
