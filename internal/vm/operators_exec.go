package vm

import (
	"plasma/internal/bytecode"
	"plasma/internal/object"
)

var binaryOperatorNames = map[bytecode.BinaryOperator]string{
	bytecode.BinaryAdd:              "Add",
	bytecode.BinarySub:              "Sub",
	bytecode.BinaryMul:              "Mul",
	bytecode.BinaryDiv:              "Div",
	bytecode.BinaryFloorDiv:         "FloorDiv",
	bytecode.BinaryMod:              "Mod",
	bytecode.BinaryPow:              "Pow",
	bytecode.BinaryBitwiseAnd:       "BitAnd",
	bytecode.BinaryBitwiseOr:        "BitOr",
	bytecode.BinaryBitwiseXor:       "BitXor",
	bytecode.BinaryBitwiseLeft:      "LeftShift",
	bytecode.BinaryBitwiseRight:     "RightShift",
	bytecode.BinaryAnd:              "And",
	bytecode.BinaryOr:               "Or",
	bytecode.BinaryEquals:           "Equals",
	bytecode.BinaryNotEqual:         "NotEquals",
	bytecode.BinaryGreaterThan:      "GreaterThan",
	bytecode.BinaryGreaterOrEqualThan: "GreaterOrEqual",
	bytecode.BinaryLessThan:         "LessThan",
	bytecode.BinaryLessOrEqualThan:  "LessOrEqual",
	bytecode.BinaryContains:         "Contains",
}

var unaryOperatorNames = map[bytecode.UnaryOperator]string{
	bytecode.UnaryNegateBits: "NegateBits",
	bytecode.UnaryNegate:     "Negate",
	bytecode.UnaryNegative:   "Negative",
	// UnaryPositive intentionally has no entry (§9 Open Questions).
}

// handleUnary implements §4.6 unary_op: pop operand, look up the
// operation name, invoke with zero arguments on the operand as
// receiver.
func handleUnary(e *object.Engine, c *object.Context, op bytecode.UnaryOperator) (*object.Value, bool) {
	operand := c.PopValue()
	mark := c.ProtectedValuesState()
	c.ProtectValue(operand)
	defer c.RestoreProtectedState(mark)

	name, ok := unaryOperatorNames[op]
	if !ok {
		return e.ObjectWithNameNotFoundError("Positive"), false
	}
	fn, ok := operand.Get(name)
	if !ok {
		return e.ObjectWithNameNotFoundError(name), false
	}
	result, ok := e.CallFunction(c, fn, nil)
	if !ok {
		return result, false
	}
	c.LastObject = result
	return nil, true
}

// handleBinary implements §4.6 binary_op: pop left then right
// (right-expression was pushed first, §5); try the left-side method
// name with right as argument, then the right-side method name with
// left as argument. Contains swaps the lookup order.
func handleBinary(e *object.Engine, c *object.Context, op bytecode.BinaryOperator) (*object.Value, bool) {
	left := c.PopValue()
	right := c.PopValue()

	// Protect both operands across the call_function hops below: a
	// handler invoked here may allocate and trigger a sweep before its
	// result is anywhere but a local variable (§5).
	mark := c.ProtectedValuesState()
	c.ProtectValue(left)
	c.ProtectValue(right)
	defer c.RestoreProtectedState(mark)

	name, ok := binaryOperatorNames[op]
	if !ok {
		return e.ObjectWithNameNotFoundError("<unknown operator>"), false
	}
	leftName, rightName, ok := object.BinaryMethodNames(name)
	if !ok {
		return e.ObjectWithNameNotFoundError(name), false
	}

	var leftErr *object.Value
	if fn, ok := left.Get(leftName); ok {
		result, success := e.CallFunction(c, fn, []*object.Value{right})
		if success {
			c.LastObject = result
			return nil, true
		}
		leftErr = result
	}
	if fn, ok := right.Get(rightName); ok {
		result, success := e.CallFunction(c, fn, []*object.Value{left})
		if success {
			c.LastObject = result
			return nil, true
		}
		// rightName resolved and ran; its failure is the real error, not
		// a name-lookup miss (§4.6: name-not-found only when neither
		// side resolves).
		return result, false
	}
	if leftErr != nil {
		return leftErr, false
	}
	return e.ObjectWithNameNotFoundError(rightName), false
}
