package object

import "github.com/pkg/errors"

// ControlState is the executor's control-transfer signal (§3, §4.7).
type ControlState int

const (
	StateNone ControlState = iota
	StateReturn
	StateBreak
	StateContinue
	StateRedo
)

func (s ControlState) String() string {
	switch s {
	case StateReturn:
		return "Return"
	case StateBreak:
		return "Break"
	case StateContinue:
		return "Continue"
	case StateRedo:
		return "Redo"
	default:
		return "None"
	}
}

// Context is per-execution state: the value and symbol-table stacks,
// the protected root-extension list, the control-flow flag, and the
// last-object register (§3, §4.4).
type Context struct {
	engine *Engine

	valueStack  []*Value
	symbolStack []*SymbolTable
	protected   []*Value

	LastObject *Value
	LastState  ControlState
}

// NewContext opens a context rooted at the engine's master scope.
func NewContext(e *Engine) *Context {
	c := &Context{engine: e}
	c.symbolStack = append(c.symbolStack, e.AllocateSymbolTable(e.Master))
	e.Track(c)
	return c
}

// PushValue pushes v onto the value stack.
func (c *Context) PushValue(v *Value) {
	c.valueStack = append(c.valueStack, v)
}

// PopValue pops the top of the value stack. Popping an empty stack is
// a host-level program error, not a Plasma runtime exception (§4.4).
func (c *Context) PopValue() *Value {
	n := len(c.valueStack)
	if n == 0 {
		panic(errors.New("object: pop on empty value stack"))
	}
	v := c.valueStack[n-1]
	c.valueStack = c.valueStack[:n-1]
	return v
}

// PeekValue returns the top of the value stack without popping.
func (c *Context) PeekValue() *Value {
	n := len(c.valueStack)
	if n == 0 {
		panic(errors.New("object: peek on empty value stack"))
	}
	return c.valueStack[n-1]
}

// PushSymbolTable pushes a new current scope.
func (c *Context) PushSymbolTable(s *SymbolTable) {
	c.symbolStack = append(c.symbolStack, s)
}

// PopSymbolTable pops the current scope.
func (c *Context) PopSymbolTable() *SymbolTable {
	n := len(c.symbolStack)
	if n == 0 {
		panic(errors.New("object: pop on empty symbol-table stack"))
	}
	s := c.symbolStack[n-1]
	c.symbolStack = c.symbolStack[:n-1]
	return s
}

// PeekSymbolTable returns the current scope.
func (c *Context) PeekSymbolTable() *SymbolTable {
	n := len(c.symbolStack)
	if n == 0 {
		panic(errors.New("object: peek on empty symbol-table stack"))
	}
	return c.symbolStack[n-1]
}

// ProtectValue appends v to the protected root-extension set (§5).
func (c *Context) ProtectValue(v *Value) {
	c.protected = append(c.protected, v)
}

// ProtectedValuesState returns the current length of the protected
// set, to be restored later by RestoreProtectedState.
func (c *Context) ProtectedValuesState() int {
	return len(c.protected)
}

// RestoreProtectedState truncates the protected set back to n. Every
// operator handler that protects intermediates must call this on
// every exit path (success, error, or control transfer).
func (c *Context) RestoreProtectedState(n int) {
	c.protected = c.protected[:n]
}

// AllocateValue delegates to the owning engine (§4.4).
func (c *Context) AllocateValue() *Value {
	return c.engine.AllocateValue()
}

// AllocateSymbolTable delegates to the owning engine (§4.4).
func (c *Context) AllocateSymbolTable(parent *SymbolTable) *SymbolTable {
	return c.engine.AllocateSymbolTable(parent)
}

// Engine returns the owning engine.
func (c *Context) Engine() *Engine { return c.engine }

// Roots returns every *Value directly reachable from this context's
// own state (stacks, protected set, last object) — one contribution
// to the engine-wide mark phase (§9).
func (c *Context) Roots() []*Value {
	roots := make([]*Value, 0, len(c.valueStack)+len(c.protected)+1)
	roots = append(roots, c.valueStack...)
	roots = append(roots, c.protected...)
	if c.LastObject != nil {
		roots = append(roots, c.LastObject)
	}
	return roots
}

// SymbolTableRoots returns every symbol table directly reachable from
// this context's scope stack.
func (c *Context) SymbolTableRoots() []*SymbolTable {
	return append([]*SymbolTable(nil), c.symbolStack...)
}
