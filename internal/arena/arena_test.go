package arena

import "testing"

func TestAllocateDeallocateReusesSlot(t *testing.T) {
	a := New[int](2)
	ref1, p1, err := a.Allocate()
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	*p1 = 42

	a.Deallocate(ref1)
	if a.Live(ref1) {
		t.Fatalf("ref1 should not be live after deallocate")
	}

	ref2, p2, err := a.Allocate()
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if ref2 != ref1 {
		t.Fatalf("expected LIFO reuse of %v, got %v", ref1, ref2)
	}
	*p2 = 7
	if *a.Get(ref2) != 7 {
		t.Fatalf("expected slot to hold 7, got %d", *a.Get(ref2))
	}
}

func TestGrowsWhenExhausted(t *testing.T) {
	a := New[int](1)
	refs := make([]Ref, 0, 5)
	for i := 0; i < 5; i++ {
		ref, p, err := a.Allocate()
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		*p = i
		refs = append(refs, ref)
	}
	for i, ref := range refs {
		if *a.Get(ref) != i {
			t.Fatalf("slot %d: expected %d, got %d", i, i, *a.Get(ref))
		}
	}
}

func TestShrinkRemovesEmptyPagesOnly(t *testing.T) {
	a := New[int](2)
	r1, _, _ := a.Allocate()
	r2, _, _ := a.Allocate()
	// Force a second page.
	r3, _, _ := a.Allocate()

	a.Deallocate(r1)
	a.Deallocate(r2)
	a.Shrink()

	if a.Live(r1) || a.Live(r2) {
		t.Fatalf("expected r1/r2 slots reclaimed")
	}
	if !a.Live(r3) {
		t.Fatalf("expected r3's page to survive shrink (still live)")
	}
}

func TestArenaSoundnessInvariant(t *testing.T) {
	a := New[int](4)
	var refs []Ref
	for i := 0; i < 10; i++ {
		ref, _, err := a.Allocate()
		if err != nil {
			t.Fatalf("allocate: %v", err)
		}
		refs = append(refs, ref)
	}
	for i := 0; i < 10; i += 2 {
		a.Deallocate(refs[i])
	}
	a.Shrink()

	stats := a.Stats()
	if stats.Capacity-stats.Live != stats.FreeSlots {
		t.Fatalf("invariant violated: capacity=%d live=%d free=%d", stats.Capacity, stats.Live, stats.FreeSlots)
	}

	seen := make(map[Ref]bool)
	for _, live := range a.AllLive() {
		if seen[live] {
			t.Fatalf("slot %v reported live twice", live)
		}
		seen[live] = true
	}
}
