package object

import "math"

// registerIntegerOperators wires Integer's arithmetic, bitwise, and
// comparison methods as on-demand builtins (§4.5). For Add, Sub, Mul,
// Div, FloorDiv, Pow and the comparisons, a Float operand promotes the
// operation to float; Mod and the bitwise/shift operators accept only
// an Integer operand and raise InvalidTypeError otherwise.
func registerIntegerOperators(e *Engine, v *Value) {
	asFloat := func(x *Value) (float64, bool) {
		switch x.Kind {
		case KindInteger:
			return float64(x.Integer), true
		case KindFloat:
			return x.Floating, true
		default:
			return 0, false
		}
	}

	binaryInt := func(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) {
		v.SetOnDemand(name, func() *Value {
			return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
				right := args[0]
				if right.Kind == KindInteger && floatOp == nil {
					return e.NewInteger(intOp(self.Integer, right.Integer)), true
				}
				if right.Kind == KindInteger {
					return e.NewInteger(intOp(self.Integer, right.Integer)), true
				}
				rf, ok := asFloat(right)
				if !ok || floatOp == nil {
					return e.InvalidTypeError(right, "Integer", "Float"), false
				}
				return e.NewFloat(floatOp(float64(self.Integer), rf)), true
			})
		})
	}

	binaryInt(OpAdd, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	binaryInt(OpSub, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	binaryInt(OpMul, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	binaryInt(OpBitAnd, func(a, b int64) int64 { return a & b }, nil)
	binaryInt(OpBitOr, func(a, b int64) int64 { return a | b }, nil)
	binaryInt(OpBitXor, func(a, b int64) int64 { return a ^ b }, nil)
	binaryInt(OpLeftShift, func(a, b int64) int64 { return a << uint(b) }, nil)
	binaryInt(OpRightShift, func(a, b int64) int64 { return a >> uint(b) }, nil)

	v.SetOnDemand(OpDiv, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			rf, ok := asFloat(args[0])
			if !ok {
				return e.InvalidTypeError(args[0], "Integer", "Float"), false
			}
			return e.NewFloat(float64(self.Integer) / rf), true
		})
	})
	v.SetOnDemand(OpFloorDiv, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			right := args[0]
			if right.Kind == KindInteger {
				q := self.Integer / right.Integer
				if self.Integer%right.Integer != 0 && (self.Integer < 0) != (right.Integer < 0) {
					q--
				}
				return e.NewInteger(q), true
			}
			rf, ok := asFloat(right)
			if !ok {
				return e.InvalidTypeError(right, "Integer", "Float"), false
			}
			return e.NewFloat(math.Floor(float64(self.Integer) / rf)), true
		})
	})
	v.SetOnDemand(OpMod, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindInteger {
				return e.InvalidTypeError(args[0], "Integer"), false
			}
			return e.NewInteger(self.Integer % args[0].Integer), true
		})
	})
	v.SetOnDemand(OpPow, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			rf, ok := asFloat(args[0])
			if !ok {
				return e.InvalidTypeError(args[0], "Integer", "Float"), false
			}
			return e.NewFloat(math.Pow(float64(self.Integer), rf)), true
		})
	})

	registerNumericComparisons(e, v, func(x *Value) (float64, bool) { return asFloat(x) }, func() float64 { return float64(v.Integer) })

	v.SetOnDemand(OpNegative, func() *Value {
		return e.newBuiltinMethod(v, 0, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewInteger(-self.Integer), true
		})
	})
	v.SetOnDemand(OpNegateBits, func() *Value {
		return e.newBuiltinMethod(v, 0, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewInteger(^self.Integer), true
		})
	})
}

// registerFloatOperators mirrors the integer set with float semantics
// throughout.
func registerFloatOperators(e *Engine, v *Value) {
	asFloat := func(x *Value) (float64, bool) {
		switch x.Kind {
		case KindInteger:
			return float64(x.Integer), true
		case KindFloat:
			return x.Floating, true
		default:
			return 0, false
		}
	}

	binary := func(name string, op func(a, b float64) float64) {
		v.SetOnDemand(name, func() *Value {
			return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
				rf, ok := asFloat(args[0])
				if !ok {
					return e.InvalidTypeError(args[0], "Integer", "Float"), false
				}
				return e.NewFloat(op(self.Floating, rf)), true
			})
		})
	}
	binary(OpAdd, func(a, b float64) float64 { return a + b })
	binary(OpSub, func(a, b float64) float64 { return a - b })
	binary(OpMul, func(a, b float64) float64 { return a * b })
	binary(OpDiv, func(a, b float64) float64 { return a / b })
	binary(OpFloorDiv, func(a, b float64) float64 { return math.Floor(a / b) })
	binary(OpMod, math.Mod)
	binary(OpPow, math.Pow)

	registerNumericComparisons(e, v, asFloat, func() float64 { return v.Floating })

	v.SetOnDemand(OpNegative, func() *Value {
		return e.newBuiltinMethod(v, 0, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewFloat(-self.Floating), true
		})
	})
}

// registerNumericComparisons wires the six comparison operators
// shared by Integer and Float, promoting both operands to float64.
func registerNumericComparisons(e *Engine, v *Value, asFloat func(*Value) (float64, bool), selfFloat func() float64) {
	cmp := func(name string, test func(a, b float64) bool) {
		v.SetOnDemand(name, func() *Value {
			return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
				rf, ok := asFloat(args[0])
				if !ok {
					return e.InvalidTypeError(args[0], "Integer", "Float"), false
				}
				return e.NewBool(test(selfFloat(), rf)), true
			})
		})
	}
	cmp(OpEquals, func(a, b float64) bool { return a == b })
	cmp(OpNotEquals, func(a, b float64) bool { return a != b })
	cmp(OpGreaterThan, func(a, b float64) bool { return a > b })
	cmp(OpLessThan, func(a, b float64) bool { return a < b })
	cmp(OpGreaterOrEqual, func(a, b float64) bool { return a >= b })
	cmp(OpLessOrEqual, func(a, b float64) bool { return a <= b })
}
