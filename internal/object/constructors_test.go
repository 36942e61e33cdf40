package object

import "testing"

func TestNewIntegerToString(t *testing.T) {
	e := NewEngine()
	v := e.NewInteger(5)
	ts, ok := v.Get(OpToString)
	if !ok {
		t.Fatalf("expected Integer to have ToString")
	}
	result, ok := e.CallFunction(nil, ts, nil)
	if !ok || result.StringVal != "5" {
		t.Fatalf("expected ToString(5) == \"5\", got %v, %v", result, ok)
	}
}

func TestNewTuplePreservesPopOrder(t *testing.T) {
	e := NewEngine()
	a, b, c := e.NewInteger(1), e.NewInteger(2), e.NewInteger(3)
	tup := e.NewTuple([]*Value{a, b, c})
	if len(tup.Content) != 3 || tup.Content[0] != a || tup.Content[2] != c {
		t.Fatalf("expected content to preserve pop order, got %v", tup.Content)
	}
}

func TestNewHashTableLaterDuplicateOverwrites(t *testing.T) {
	e := NewEngine()
	k := e.NewString("key")
	v1 := e.NewInteger(1)
	v2 := e.NewInteger(2)

	hashOf := func(v *Value) uint64 {
		h := uint64(0)
		for _, b := range []byte(v.StringVal) {
			h = h*31 + uint64(b)
		}
		return h
	}
	equal := func(a, b *Value) bool { return a.StringVal == b.StringVal }

	ht := e.NewHashTable([]KeyValue{{Key: k, Value: v1}, {Key: k, Value: v2}}, hashOf, equal)
	bucket := ht.KeyValues[hashOf(k)]
	if len(bucket) != 1 || bucket[0].Value != v2 {
		t.Fatalf("expected single bucket entry overwritten by later duplicate, got %v", bucket)
	}
}

func TestHashTableIndexAndAssign(t *testing.T) {
	e := NewEngine()
	k := e.NewString("key")
	other := e.NewString("other")
	v1 := e.NewInteger(1)

	ht := e.NewHashTable(nil, hashStringValue, equalStringValue)

	assign, ok := ht.Get(OpAssign)
	if !ok {
		t.Fatalf("expected HashTable to have Assign")
	}
	if _, ok := e.CallFunction(nil, assign, []*Value{k, v1}); !ok {
		t.Fatalf("expected Assign(key, 1) to succeed")
	}

	index, ok := ht.Get(OpIndex)
	if !ok {
		t.Fatalf("expected HashTable to have Index")
	}
	result, ok := e.CallFunction(nil, index, []*Value{k})
	if !ok || result.Integer != 1 {
		t.Fatalf("expected Index(key) == 1, got %v, %v", result, ok)
	}

	v2 := e.NewInteger(2)
	if _, ok := e.CallFunction(nil, assign, []*Value{k, v2}); !ok {
		t.Fatalf("expected Assign(key, 2) to succeed")
	}
	result, ok = e.CallFunction(nil, index, []*Value{k})
	if !ok || result.Integer != 2 {
		t.Fatalf("expected Index(key) == 2 after reassignment, got %v, %v", result, ok)
	}

	if _, ok := e.CallFunction(nil, index, []*Value{other}); ok {
		t.Fatalf("expected Index(other) to fail on missing key")
	}
}

func hashStringValue(v *Value) uint64 {
	h := uint64(0)
	for _, b := range []byte(v.StringVal) {
		h = h*31 + uint64(b)
	}
	return h
}

func equalStringValue(a, b *Value) bool { return a.StringVal == b.StringVal }

func TestConstructObjectLinearAncestors(t *testing.T) {
	e := NewEngine()
	grandparent := e.NewType("GrandParent", nil, nil)
	parent := e.NewType("Parent", []*Value{grandparent}, nil)

	instance := e.ConstructObject(nil, parent, nil)
	if len(instance.Parents) != 2 {
		t.Fatalf("expected transitive ancestors flattened, got %v", instance.Parents)
	}
	if !instance.Implements(grandparent) {
		t.Fatalf("expected instance to implement grandparent via flattened parents")
	}
}
