package object

import "testing"

func TestGetLookupOrder(t *testing.T) {
	e := NewEngine()

	parentType := e.NewType("Base", nil, nil)
	parentType.Symbols.Set("shared", e.NewInteger(1))

	instanceType := e.NewType("Derived", []*Value{parentType}, nil)
	instance := e.NewObject(instanceType)

	// Type-chain walk finds a name only present on an ancestor type.
	v, ok := instance.Get("shared")
	if !ok || v.Integer != 1 {
		t.Fatalf("expected inherited lookup to find 'shared'=1, got %v, %v", v, ok)
	}

	// Local symbol shadows the inherited one.
	instance.Set("shared", e.NewInteger(2))
	v, ok = instance.Get("shared")
	if !ok || v.Integer != 2 {
		t.Fatalf("expected local shadow 'shared'=2, got %v, %v", v, ok)
	}
}

func TestGetOnDemandMaterializesOnce(t *testing.T) {
	e := NewEngine()
	calls := 0
	v := e.NewObject(e.BuiltinType("Object"))
	v.SetOnDemand("lazy", func() *Value {
		calls++
		return e.NewInteger(int64(calls))
	})

	first, ok := v.Get("lazy")
	if !ok || first.Integer != 1 {
		t.Fatalf("expected first materialization to yield 1, got %v", first)
	}
	second, ok := v.Get("lazy")
	if !ok || second != first {
		t.Fatalf("expected cached result on second Get, got new value %v", second)
	}
	if calls != 1 {
		t.Fatalf("expected materializer called exactly once, got %d", calls)
	}
}

func TestImplementsWalksParentsDepthFirst(t *testing.T) {
	e := NewEngine()
	grandparent := e.NewType("GrandParent", nil, nil)
	parent := e.NewType("Parent", []*Value{grandparent}, nil)
	child := e.NewType("Child", []*Value{parent}, nil)
	instance := e.NewObject(child)

	if !instance.Implements(child) {
		t.Fatalf("expected Implements(own type) true")
	}
	if !instance.Implements(grandparent) {
		t.Fatalf("expected Implements(transitive ancestor) true")
	}
	unrelated := e.NewType("Unrelated", nil, nil)
	if instance.Implements(unrelated) {
		t.Fatalf("expected Implements(unrelated) false")
	}
}
