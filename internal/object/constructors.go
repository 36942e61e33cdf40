package object

import (
	"fmt"
)

// Component E: one factory per intrinsic kind. Each sets kind,
// type_name, initializes the payload, and wires kind-specific
// on-demand methods so they materialize only on first access (§4.5).

func (e *Engine) NewInteger(n int64) *Value {
	v := e.newValue(KindInteger, "Integer")
	v.Integer = n
	v.SetOnDemand(OpToString, func() *Value { return e.NewString(fmt.Sprintf("%d", n)) })
	registerIntegerOperators(e, v)
	return v
}

func (e *Engine) NewFloat(f float64) *Value {
	v := e.newValue(KindFloat, "Float")
	v.Floating = f
	v.SetOnDemand(OpToString, func() *Value { return e.NewString(fmt.Sprintf("%g", f)) })
	registerFloatOperators(e, v)
	return v
}

func (e *Engine) NewString(s string) *Value {
	v := e.newValue(KindString, "String")
	v.StringVal = s
	v.SetOnDemand(OpToString, func() *Value { return v })
	registerStringOperators(e, v)
	return v
}

func (e *Engine) NewBytes(b []byte) *Value {
	v := e.newValue(KindBytes, "Bytes")
	v.BytesVal = append([]byte(nil), b...)
	v.SetOnDemand(OpToString, func() *Value { return e.NewString(fmt.Sprintf("%v", v.BytesVal)) })
	registerBytesOperators(e, v)
	return v
}

func (e *Engine) NewBool(b bool) *Value {
	v := e.newValue(KindBoolean, "Boolean")
	v.Boolean = b
	v.SetOnDemand(OpToString, func() *Value {
		if b {
			return e.NewString("true")
		}
		return e.NewString("false")
	})
	return v
}

func (e *Engine) NewNone() *Value {
	v := e.newValue(KindNone, "None")
	v.SetOnDemand(OpToString, func() *Value { return e.NewString("none") })
	return v
}

// NewTuple builds an immutable aggregate from content in pop order
// (§4.7 NewTuple: "build the container in pop order").
func (e *Engine) NewTuple(content []*Value) *Value {
	v := e.newValue(KindTuple, "Tuple")
	v.Content = append([]*Value(nil), content...)
	registerCollectionOperators(e, v)
	return v
}

func (e *Engine) NewArray(content []*Value) *Value {
	v := e.newValue(KindArray, "Array")
	v.Content = append([]*Value(nil), content...)
	registerCollectionOperators(e, v)
	registerArrayMutators(e, v)
	return v
}

// NewHashTable builds a hash-bucket table from pairs in pop order;
// later duplicate keys overwrite earlier ones (§4.7 NewHash,
// invariant 3: at most one entry per equal key).
func (e *Engine) NewHashTable(pairs []KeyValue, hashOf func(*Value) uint64, equal func(a, b *Value) bool) *Value {
	v := e.newValue(KindHashTable, "HashTable")
	v.KeyValues = make(map[uint64][]KeyValue)
	for _, kv := range pairs {
		h := hashOf(kv.Key)
		bucket := v.KeyValues[h]
		replaced := false
		for i, existing := range bucket {
			if equal(existing.Key, kv.Key) {
				bucket[i] = kv
				replaced = true
				break
			}
		}
		if !replaced {
			bucket = append(bucket, kv)
		}
		v.KeyValues[h] = bucket
	}
	registerHashTableOperators(e, v, hashOf, equal)
	return v
}

// NewIterator wraps an arbitrary (HasNext, Next) pair of built-in
// closures as an Iterator value (§3 invariant 4).
func (e *Engine) NewIterator(hasNext, next BuiltinFunc) *Value {
	v := e.newValue(KindIterator, "Iterator")
	v.Symbols.Set(OpHasNext, e.newBuiltinMethod(v, 0, hasNext))
	v.Symbols.Set(OpNext, e.newBuiltinMethod(v, 0, next))
	return v
}

// NewType registers a user- or built-in-defined type value with its
// parents (declaration order, §3 invariant 5) and constructor.
func (e *Engine) NewType(name string, parents []*Value, ctor *Constructor) *Value {
	v := e.AllocateValue()
	v.Kind = KindType
	v.TypeName = name
	v.Type = e.BuiltinType("Type")
	v.Parents = append([]*Value(nil), parents...)
	v.Ctor = ctor
	var parentScope *SymbolTable
	if len(parents) > 0 && parents[0].Symbols != nil {
		parentScope = parents[0].Symbols
	}
	v.Symbols = e.AllocateSymbolTable(parentScope)
	return v
}

// NewFunction builds a plasma-bytecode callable bound in the current
// scope; self defaults to the function value itself (§3 invariant 2).
func (e *Engine) NewFunction(name string, arity int, callable *Callable) *Value {
	v := e.newValue(KindFunction, "Function")
	v.Callable = callable
	v.Callable.Arity = arity
	v.Self = v
	return v
}

// newBuiltinMethod wraps a host closure as a bound Function value
// whose receiver is self.
func (e *Engine) newBuiltinMethod(self *Value, arity int, fn BuiltinFunc) *Value {
	v := e.newValue(KindFunction, "Function")
	v.Callable = &Callable{Arity: arity, Builtin: fn}
	v.Self = self
	return v
}

// NewBoundMethod is the exported form of newBuiltinMethod, for hosts
// and the executor wiring an arbitrary closure onto a value outside
// the intrinsic-kind constructors above (e.g. a user-defined type's
// method table).
func (e *Engine) NewBoundMethod(self *Value, arity int, fn BuiltinFunc) *Value {
	return e.newBuiltinMethod(self, arity, fn)
}

// NewModule builds a module value whose Symbols become the module's
// attribute table (§4.7 NewModule).
func (e *Engine) NewModule(name string, symbols *SymbolTable) *Value {
	v := e.newValue(KindModule, "Module")
	v.Symbols = symbols
	return v
}

// NewObject allocates a bare instance of the given type with no
// payload beyond an empty attribute table parented on the type scope.
func (e *Engine) NewObject(t *Value) *Value {
	v := e.AllocateValue()
	v.Kind = KindObject
	v.Type = t
	if t != nil {
		v.TypeName = t.TypeName
	}
	var parentScope *SymbolTable
	if t != nil {
		parentScope = t.Symbols
	}
	v.Symbols = e.AllocateSymbolTable(parentScope)
	return v
}

// ConstructObject creates an instance whose Parents are t plus its
// transitive ancestors (so Implements is linear-time), then runs a
// built-in initializer if the type has one (§4.6 construct_object).
// Constructor bytecode, when present instead, is the executor's job —
// callType (call.go) runs it afterward with the instance's symbols as
// the active scope.
func (e *Engine) ConstructObject(c *Context, t *Value, args []*Value) *Value {
	instance := e.NewObject(t)
	instance.Parents = transitiveAncestors(t)
	if t != nil && t.Ctor != nil && t.Ctor.BuiltinInit != nil {
		t.Ctor.BuiltinInit(e, c, instance, args)
	}
	return instance
}

func transitiveAncestors(t *Value) []*Value {
	if t == nil {
		return nil
	}
	seen := make(map[*Value]bool)
	var out []*Value
	var walk func(*Value)
	walk = func(v *Value) {
		if v == nil || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
		for _, p := range v.Parents {
			walk(p)
		}
	}
	out = append(out, t)
	seen[t] = true
	for _, p := range t.Parents {
		walk(p)
	}
	return out
}

// ForceInitialize locates Initialize on obj and calls it, swallowing
// failure (§4.6 force_initialization) — grounded on
// original_source/src/object_creators.cpp's force_* helpers, which
// tolerate a type that does not define an initializer.
func (e *Engine) ForceInitialize(c *Context, obj *Value, args []*Value) {
	init, ok := obj.Get(OpInitialize)
	if !ok || init.Callable == nil {
		return
	}
	_, _ = e.CallFunction(c, init, args)
}
