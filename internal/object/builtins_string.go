package object

import "strings"

// registerStringOperators wires String's Add (concatenation),
// Equals/NotEquals, RightContains (substring test) and Index. No
// ordering comparisons and no left-side Contains are defined.
func registerStringOperators(e *Engine, v *Value) {
	v.SetOnDemand(OpAdd, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindString {
				return e.InvalidTypeError(args[0], "String"), false
			}
			return e.NewString(self.StringVal + args[0].StringVal), true
		})
	})
	v.SetOnDemand(OpEquals, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewBool(args[0].Kind == KindString && args[0].StringVal == self.StringVal), true
		})
	})
	v.SetOnDemand(OpNotEquals, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewBool(args[0].Kind != KindString || args[0].StringVal != self.StringVal), true
		})
	})
	v.SetOnDemand(OpRightContains, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindString {
				return e.InvalidTypeError(args[0], "String"), false
			}
			return e.NewBool(strings.Contains(self.StringVal, args[0].StringVal)), true
		})
	})
	v.SetOnDemand(OpIndex, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindInteger {
				return e.InvalidTypeError(args[0], "Integer"), false
			}
			runes := []rune(self.StringVal)
			idx := args[0].Integer
			if idx < 0 || idx >= int64(len(runes)) {
				return e.NewRuntimeError(e.BuiltinType("InvalidTypeError"), "string index out of range"), false
			}
			return e.NewString(string(runes[idx])), true
		})
	})
}

// registerBytesOperators mirrors String's Add/Equals over raw bytes.
// Bytes has no Index method.
func registerBytesOperators(e *Engine, v *Value) {
	v.SetOnDemand(OpAdd, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindBytes {
				return e.InvalidTypeError(args[0], "Bytes"), false
			}
			joined := append(append([]byte(nil), self.BytesVal...), args[0].BytesVal...)
			return e.NewBytes(joined), true
		})
	})
	v.SetOnDemand(OpEquals, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewBool(args[0].Kind == KindBytes && string(args[0].BytesVal) == string(self.BytesVal)), true
		})
	})
}
