package vm

import (
	"testing"

	"plasma/internal/bytecode"
	"plasma/internal/object"
)

func newExecFixture() (*object.Engine, *object.Context) {
	e := object.NewEngine()
	c := object.NewContext(e)
	return e, c
}

// S1 — arithmetic.
func TestArithmeticAddition(t *testing.T) {
	e, c := newExecFixture()
	stream := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpNewInteger, Value: int64(2)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewInteger, Value: int64(3)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpBinary, Value: bytecode.BinaryAdd},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpReturn, Value: 1},
	})
	result, ok := Execute(e, c, stream)
	if !ok {
		t.Fatalf("expected success, got error %v", result)
	}
	if result.Kind != object.KindInteger || result.Integer != 5 {
		t.Fatalf("expected integer 5, got %+v", result)
	}
}

// S2 — name lookup failure.
func TestNameLookupFailure(t *testing.T) {
	e, c := newExecFixture()
	stream := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpGetIdentifier, Value: "x"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpReturn, Value: 1},
	})
	result, ok := Execute(e, c, stream)
	if ok {
		t.Fatalf("expected failure for undefined identifier, got %+v", result)
	}
	if !e.IsError(result) {
		t.Fatalf("expected a RuntimeError value, got %+v", result)
	}
}

// S3 — for-loop with break.
func TestForLoopBreakLeavesLastBinding(t *testing.T) {
	e, c := newExecFixture()
	array := e.NewArray([]*object.Value{e.NewInteger(10), e.NewInteger(20), e.NewInteger(30)})
	c.PushValue(array)

	body := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpGetIdentifier, Value: "i"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewInteger, Value: int64(20)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpBinary, Value: bytecode.BinaryEquals},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpIfOneLiner, Value: bytecode.ConditionInfo{
			Body: bytecode.NewStream([]bytecode.Instruction{{Op: bytecode.OpBreak}}),
		}},
	})

	stream := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpForLoop, Value: bytecode.LoopInfo{Body: body, Receivers: []string{"i"}}},
		{Op: bytecode.OpGetIdentifier, Value: "i"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpReturn, Value: 1},
	})
	result, ok := Execute(e, c, stream)
	if !ok {
		t.Fatalf("expected success, got error %+v", result)
	}
	if result.Integer != 20 {
		t.Fatalf("expected i bound to 20 after break, got %+v", result)
	}
}

// S4 — try/except/finally.
func TestTryExceptFinally(t *testing.T) {
	e, c := newExecFixture()
	boomErr := e.BuiltinType("RuntimeError")

	tryBody := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpNewString, Value: "boom"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpGetIdentifier, Value: "RuntimeError"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpMethodInvocation, Value: 1},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpRaise},
	})
	exceptBody := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpGetIdentifier, Value: "e"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpAssignIdentifier, Value: "caught"},
	})
	finallyBody := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpGetTrue},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpAssignIdentifier, Value: "done"},
	})

	stream := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpTryBlock, Value: bytecode.TryInfo{
			Body: tryBody,
			ExceptBlocks: []bytecode.ExceptBlock{
				{CaptureName: "e", Body: exceptBody},
			},
			Finally: finallyBody,
		}},
		{Op: bytecode.OpGetNone},
		{Op: bytecode.OpReturn, Value: 0},
	})

	_, ok := Execute(e, c, stream)
	if !ok {
		t.Fatalf("expected try/except/finally to resolve successfully")
	}

	caught, ok := c.PeekSymbolTable().GetAny("caught")
	if !ok || !caught.Implements(boomErr) {
		t.Fatalf("expected 'caught' bound to the raised error, got %+v, %v", caught, ok)
	}
	done, ok := c.PeekSymbolTable().GetAny("done")
	if !ok || !done.Boolean {
		t.Fatalf("expected 'done' == true, got %+v, %v", done, ok)
	}
}

// S5 — binary double-dispatch.
func TestBinaryDoubleDispatchFallsBackToRight(t *testing.T) {
	e, c := newExecFixture()

	classA := e.NewType("A", nil, nil)
	classB := e.NewType("B", nil, nil)

	a := e.NewObject(classA)
	b := e.NewObject(classB)

	a.Symbols.Set("Add", e.NewBoundMethod(a, 1, func(e *object.Engine, c *object.Context, self *object.Value, args []*object.Value) (*object.Value, bool) {
		return e.NewString("A.Add"), true
	}))
	a.Symbols.Set("RightAdd", e.NewBoundMethod(a, 1, func(e *object.Engine, c *object.Context, self *object.Value, args []*object.Value) (*object.Value, bool) {
		return e.NewString("A.RightAdd"), true
	}))

	// B + A: B has no Add, so A's RightAdd runs.
	c.PushValue(a) // right-expression pushed first (§5)
	c.PushValue(b)
	errVal, ok := handleBinary(e, c, bytecode.BinaryAdd)
	if !ok {
		t.Fatalf("expected B+A fallback to RightAdd, got error %+v", errVal)
	}
	if c.LastObject.StringVal != "A.RightAdd" {
		t.Fatalf("expected RightAdd invoked, got %+v", c.LastObject)
	}
}

// S6 — generator map.
func TestGeneratorDoublesEachElement(t *testing.T) {
	e, c := newExecFixture()
	array := e.NewArray([]*object.Value{e.NewInteger(1), e.NewInteger(2), e.NewInteger(3)})

	opBody := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpLoadFunctionArguments, Value: []string{"x"}},
		{Op: bytecode.OpGetIdentifier, Value: "x"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewInteger, Value: int64(2)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpBinary, Value: bytecode.BinaryMul},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpReturn, Value: 1},
	})

	operationFn := e.NewFunction("<generator>", 1, &object.Callable{Arity: 1, Code: opBody})
	gen, ok := e.NewGenerator(c, array, 1, func(e *object.Engine, c *object.Context, received []*object.Value) (*object.Value, bool) {
		return e.CallFunction(c, operationFn, received)
	})
	if !ok {
		t.Fatalf("expected generator construction to succeed")
	}

	hasNextFn, _ := gen.Get(object.OpHasNext)
	nextFn, _ := gen.Get(object.OpNext)

	var got []int64
	for {
		hasNext, ok := e.CallFunction(c, hasNextFn, nil)
		if !ok || !hasNext.Boolean {
			break
		}
		next, ok := e.CallFunction(c, nextFn, nil)
		if !ok {
			t.Fatalf("unexpected generator failure: %+v", next)
		}
		got = append(got, next.Integer)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 4 || got[2] != 6 {
		t.Fatalf("expected [2 4 6], got %v", got)
	}
}
