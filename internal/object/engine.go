package object

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"plasma/internal/arena"
)

// DebugHook lets a host observe engine lifecycle events (allocation,
// sweep) without coupling the core to any particular logger.
type DebugHook interface {
	OnAllocate(kind Kind, ref valueRef)
	OnSweep(reclaimed int)
}

// Engine owns the two paged arenas (values and symbol tables), the
// master symbol table seeded with built-in types, and the monotonic
// identity counter (§3, §6.2).
type Engine struct {
	values  *arena.Arena[Value]
	symbols *arena.Arena[SymbolTable]

	Master *SymbolTable

	nextID int64

	// InstanceID distinguishes engine instances in diagnostics; it has
	// no bearing on any Plasma-visible value.
	InstanceID string

	Hook DebugHook

	// builtins caches the handful of types every bootstrap needs
	// repeated access to.
	builtinTypes map[string]*Value

	// tracked holds every context registered via Track, consulted as
	// sweep roots.
	tracked []*Context
}

const (
	initialValuePageLength  = 256
	initialSymbolPageLength = 64
)

// NewEngine constructs an engine with a freshly seeded master scope
// containing RuntimeError, Type, Object, the primitive type values,
// and None/True/False (§6.2).
func NewEngine() *Engine {
	e := &Engine{
		values:       arena.New[Value](initialValuePageLength),
		symbols:      arena.New[SymbolTable](initialSymbolPageLength),
		InstanceID:   uuid.New().String(),
		builtinTypes: make(map[string]*Value),
	}
	e.Master = NewSymbolTable(nil)
	e.bootstrap()
	return e
}

// AllocateValue reserves a fresh arena slot, assigns the next identity
// and returns a ready-to-populate *Value (§4.4 allocate_value).
func (e *Engine) AllocateValue() *Value {
	ref, slot, err := e.values.Allocate()
	if err != nil {
		panic(errors.Wrap(err, "object: value allocation"))
	}
	e.nextID++
	*slot = Value{ID: e.nextID, ref: ref}
	if e.Hook != nil {
		e.Hook.OnAllocate(slot.Kind, ref)
	}
	return slot
}

// AllocateSymbolTable reserves a fresh scope arena slot chained to
// parent (§4.4 allocate_symbol_table).
func (e *Engine) AllocateSymbolTable(parent *SymbolTable) *SymbolTable {
	ref, slot, err := e.symbols.Allocate()
	if err != nil {
		panic(errors.Wrap(err, "object: symbol table allocation"))
	}
	*slot = SymbolTable{locals: make(map[string]*Value), parent: parent, ref: ref}
	return slot
}

// BuiltinType returns a bootstrap-seeded type by name (e.g. "Integer",
// "RuntimeError"), or nil if unknown.
func (e *Engine) BuiltinType(name string) *Value {
	return e.builtinTypes[name]
}

// newValue allocates and tags a value whose Type is resolved from the
// engine's builtin-type table, with a fresh attribute scope parented
// on that type's scope.
func (e *Engine) newValue(kind Kind, typeName string) *Value {
	v := e.AllocateValue()
	v.Kind = kind
	v.TypeName = typeName
	v.Type = e.builtinTypes[typeName]
	var parentScope *SymbolTable
	if v.Type != nil {
		parentScope = v.Type.Symbols
	}
	v.Symbols = e.AllocateSymbolTable(parentScope)
	return v
}

// ValueArenaStats exposes the value arena's occupancy for diagnostics.
func (e *Engine) ValueArenaStats() arena.Stats { return e.values.Stats() }

// SymbolArenaStats exposes the symbol-table arena's occupancy.
func (e *Engine) SymbolArenaStats() arena.Stats { return e.symbols.Stats() }
