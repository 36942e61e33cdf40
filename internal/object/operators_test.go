package object

import "testing"

func TestBinaryMethodNamesContainsSwapped(t *testing.T) {
	left, right, ok := BinaryMethodNames("Contains")
	if !ok || left != OpRightContains || right != OpContains {
		t.Fatalf("expected Contains lookup swapped to (RightContains, Contains), got (%s, %s)", left, right)
	}
}

func TestBinaryMethodNamesAdd(t *testing.T) {
	left, right, ok := BinaryMethodNames("Add")
	if !ok || left != "Add" || right != "RightAdd" {
		t.Fatalf("expected (Add, RightAdd), got (%s, %s)", left, right)
	}
}

func TestUnaryMethodNamePositiveUnimplemented(t *testing.T) {
	if name := UnaryMethodName("Positive"); name != "" {
		t.Fatalf("expected Positive to have no method name, got %q", name)
	}
}

func TestGetTypeSynthesizesAnchorForTypeValues(t *testing.T) {
	e := NewEngine()
	typeOfType := e.BuiltinType("Type")
	intType := e.BuiltinType("Integer")

	if got := intType.GetType(e); got != typeOfType {
		t.Fatalf("expected a type-value's GetType to return the Type anchor")
	}

	instance := e.NewInteger(5)
	if got := instance.GetType(e); got != intType {
		t.Fatalf("expected an instance's GetType to return its Type link")
	}
}
