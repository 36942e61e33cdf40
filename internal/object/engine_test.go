package object

import (
	"testing"

	"github.com/kr/pretty"
)

func TestBootstrapSeedsMaster(t *testing.T) {
	e := NewEngine()
	for _, name := range []string{"RuntimeError", "Type", "Object", "Integer", "None", "True", "False"} {
		if _, ok := e.Master.GetSelf(name); !ok {
			t.Fatalf("expected master to have %q seeded; got %# v", name, pretty.Formatter(e.Master.Names()))
		}
	}
}

func TestAllocateValueAssignsMonotonicID(t *testing.T) {
	e := NewEngine()
	a := e.AllocateValue()
	b := e.AllocateValue()
	if b.ID <= a.ID {
		t.Fatalf("expected monotonic identity, got a=%d b=%d", a.ID, b.ID)
	}
}

func TestBuiltinValuesPinnedAgainstSweep(t *testing.T) {
	e := NewEngine()
	c := NewContext(e)
	// Allocate an unreachable, non-builtin value, then sweep.
	orphan := e.NewInteger(42)
	_ = orphan
	reclaimed := e.Sweep()
	if reclaimed == 0 {
		t.Fatalf("expected at least the orphaned integer to be reclaimed")
	}
	if _, ok := e.Master.GetSelf("None"); !ok {
		t.Fatalf("built-in None must survive sweep")
	}
	_ = c
}
