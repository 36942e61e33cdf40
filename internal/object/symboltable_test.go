package object

import "testing"

func TestSymbolTableSelfVsAny(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Set("x", &Value{Integer: 1})
	child := NewSymbolTable(root)
	child.Set("y", &Value{Integer: 2})

	if _, ok := child.GetSelf("x"); ok {
		t.Fatalf("GetSelf should not see parent bindings")
	}
	v, ok := child.GetAny("x")
	if !ok || v.Integer != 1 {
		t.Fatalf("GetAny should walk to parent binding, got %v, %v", v, ok)
	}
	if _, ok := child.GetSelf("y"); !ok {
		t.Fatalf("GetSelf should see local binding")
	}
}

func TestSymbolTableSetWritesLocal(t *testing.T) {
	root := NewSymbolTable(nil)
	child := NewSymbolTable(root)
	child.Set("z", &Value{Integer: 9})

	if _, ok := root.GetSelf("z"); ok {
		t.Fatalf("Set must write to current node only, leaked to parent")
	}
	if _, ok := child.GetSelf("z"); !ok {
		t.Fatalf("expected z bound locally")
	}
}
