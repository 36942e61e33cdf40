// Package object implements components B, C, E and F of the engine:
// the value model, the symbol table, the per-execution context, the
// intrinsic-kind constructors, and the binary/unary operator protocol
// (spec.md §3, §4.2-§4.6).
package object

import (
	"plasma/internal/arena"
	"plasma/internal/bytecode"
)

// valueRef is the arena address backing a Value, set at allocation
// time and consulted only by the engine's sweep/deallocate path.
type valueRef = arena.Ref

// Kind tags which payload slots of a Value are meaningful (§3).
type Kind int

const (
	KindObject Kind = iota
	KindType
	KindFunction
	KindModule
	KindString
	KindBytes
	KindInteger
	KindFloat
	KindBoolean
	KindNone
	KindTuple
	KindArray
	KindHashTable
	KindIterator
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindType:
		return "Type"
	case KindFunction:
		return "Function"
	case KindModule:
		return "Module"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Bool"
	case KindNone:
		return "None"
	case KindTuple:
		return "Tuple"
	case KindArray:
		return "Array"
	case KindHashTable:
		return "HashTable"
	case KindIterator:
		return "Iterator"
	default:
		return "Unknown"
	}
}

// KeyValue is one entry of a hash bucket (§3: "hash buckets keyed by a
// 64-bit hash yielding lists of (key,value) pairs to resolve
// collisions by equality").
type KeyValue struct {
	Key   *Value
	Value *Value
}

// BuiltinFunc is a host-provided closure satisfying the calling
// convention shared with Plasma-bytecode callables (§4.6 "built-in
// closure"). success=false means Value is an error being propagated.
type BuiltinFunc func(e *Engine, c *Context, self *Value, args []*Value) (result *Value, success bool)

// Callable is a function value's payload: either a built-in closure
// or a Plasma-bytecode body, both carrying a stated arity (glossary:
// "Plasma-callable", "Built-in callable").
type Callable struct {
	Arity   int
	Builtin BuiltinFunc
	Code    *bytecode.Stream
}

// Constructor is a type value's instance-initializer: either a
// built-in Go initializer or Plasma-bytecode constructor body (§4.5
// "new_type records... the constructor bytecode (or built-in
// initializer)").
type Constructor struct {
	BuiltinInit func(e *Engine, c *Context, instance *Value, args []*Value)
	Code        *bytecode.Stream
}

// Value is the single uniform runtime object shape (§3). Every field
// lives on every Value; Kind selects which ones are meaningful.
type Value struct {
	ID       int64
	Kind     Kind
	TypeName string
	Type     *Value // immutable once set (invariant 1)
	Symbols  *SymbolTable
	OnDemand map[string]func() *Value
	Parents  []*Value // declaration order (invariant 5)
	BuiltIn  bool      // exempt from reclamation sweeps

	// Intrinsic payload slots (§3).
	Integer   int64
	Floating  float64
	Boolean   bool
	StringVal string
	BytesVal  []byte
	Content   []*Value            // tuples / arrays, pop order preserved
	KeyValues map[uint64][]KeyValue
	Callable  *Callable // functions
	Ctor      *Constructor // types
	Self      *Value       // method receiver; defaults to the function itself (invariant 2)
	Source    *Value       // iterators: the upstream iterator

	ref valueRef // arena bookkeeping, opaque to callers
}

// Get implements §4.2 attribute lookup: local symbols table entry,
// then on-demand materializer (cached into symbols on first hit),
// then a depth-first walk of the type chain repeating both steps.
// found=false means neither step 1 nor step 2 matched anywhere in the
// chain; callers build an ObjectWithNameNotFoundError from (v, name).
func (v *Value) Get(name string) (result *Value, found bool) {
	return getFrom(v, name, make(map[*Value]bool))
}

func getFrom(v *Value, name string, visited map[*Value]bool) (*Value, bool) {
	if v == nil || visited[v] {
		return nil, false
	}
	visited[v] = true

	if v.Symbols != nil {
		if hit, ok := v.Symbols.GetSelf(name); ok {
			return hit, true
		}
	}
	if loader, ok := v.OnDemand[name]; ok {
		result := loader()
		delete(v.OnDemand, name)
		if v.Symbols != nil {
			v.Symbols.Set(name, result)
		}
		return result, true
	}
	if v.Type != nil {
		if hit, ok := getFrom(v.Type, name, visited); ok {
			return hit, true
		}
	}
	for _, parent := range v.Parents {
		if hit, ok := getFrom(parent, name, visited); ok {
			return hit, true
		}
	}
	return nil, false
}

// Set writes a local binding (§4.2 "writes a local binding").
func (v *Value) Set(name string, val *Value) {
	if v.Symbols == nil {
		return
	}
	v.Symbols.Set(name, val)
}

// SetOnDemand registers a materializer consulted by Get before the
// type-chain walk, cached into Symbols on first access (glossary:
// "On-demand symbol").
func (v *Value) SetOnDemand(name string, loader func() *Value) {
	if v.OnDemand == nil {
		v.OnDemand = make(map[string]func() *Value)
	}
	v.OnDemand[name] = loader
}

// Implements is true when other equals v's type or any ancestor,
// transitively via the type's Parents, depth-first (§4.2, invariant
// 5). Cycles are guarded against (forbidden but not enforced, §3
// invariant 5) rather than looping forever.
func (v *Value) Implements(other *Value) bool {
	if other == nil {
		return false
	}
	if v.Type == other {
		return true
	}
	if v.Type == nil {
		return false
	}
	return ancestorDFS(v.Type.Parents, other, make(map[*Value]bool))
}

func ancestorDFS(parents []*Value, target *Value, visited map[*Value]bool) bool {
	for _, p := range parents {
		if p == nil || visited[p] {
			continue
		}
		visited[p] = true
		if p == target {
			return true
		}
		if ancestorDFS(p.Parents, target, visited) {
			return true
		}
	}
	return false
}
