package object

// registerCollectionOperators wires the methods shared by Tuple and
// Array: Index, Equals, and iteration support via Iter (§4.8
// interpret_as_iterator).
func registerCollectionOperators(e *Engine, v *Value) {
	v.SetOnDemand(OpIndex, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != KindInteger {
				return e.InvalidTypeError(args[0], "Integer"), false
			}
			idx := args[0].Integer
			if idx < 0 || idx >= int64(len(self.Content)) {
				return e.NewRuntimeError(e.BuiltinType("InvalidTypeError"), "index out of range"), false
			}
			return self.Content[idx], true
		})
	})
	v.SetOnDemand(OpEquals, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if args[0].Kind != self.Kind || len(args[0].Content) != len(self.Content) {
				return e.NewBool(false), true
			}
			for i := range self.Content {
				if self.Content[i] != args[0].Content[i] {
					return e.NewBool(false), true
				}
			}
			return e.NewBool(true), true
		})
	})
	v.SetOnDemand(OpIter, func() *Value {
		return e.newBuiltinMethod(v, 0, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.newSliceIterator(self.Content), true
		})
	})
}

// registerArrayMutators wires Array's AssignIndex support (§4.7
// AssignIndex: "calls receiver's Assign(index, value)"). Tuples are
// immutable, so only Array gets this.
func registerArrayMutators(e *Engine, v *Value) {
	v.SetOnDemand(OpAssign, func() *Value {
		return e.newBuiltinMethod(v, 2, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			index, val := args[0], args[1]
			if index.Kind != KindInteger {
				return e.InvalidTypeError(index, "Integer"), false
			}
			idx := index.Integer
			if idx < 0 || idx >= int64(len(self.Content)) {
				return e.NewRuntimeError(e.BuiltinType("InvalidTypeError"), "index out of range"), false
			}
			self.Content[idx] = val
			return val, true
		})
	})
}

// registerHashTableOperators wires Index/Assign/Iter over the bucketed
// key/value store (§4.7 Index/AssignIndex). hashOf/equal are the same
// closures NewHashTable used to build the buckets, so lookups land in
// the identical bucket a later Assign would use.
func registerHashTableOperators(e *Engine, v *Value, hashOf func(*Value) uint64, equal func(a, b *Value) bool) {
	v.SetOnDemand(OpIndex, func() *Value {
		return e.newBuiltinMethod(v, 1, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			key := args[0]
			bucket := self.KeyValues[hashOf(key)]
			for _, kv := range bucket {
				if equal(kv.Key, key) {
					return kv.Value, true
				}
			}
			return e.NewRuntimeError(e.BuiltinType("InvalidTypeError"), "key not found"), false
		})
	})
	v.SetOnDemand(OpAssign, func() *Value {
		return e.newBuiltinMethod(v, 2, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			key, val := args[0], args[1]
			h := hashOf(key)
			bucket := self.KeyValues[h]
			for i, kv := range bucket {
				if equal(kv.Key, key) {
					bucket[i].Value = val
					self.KeyValues[h] = bucket
					return val, true
				}
			}
			self.KeyValues[h] = append(bucket, KeyValue{Key: key, Value: val})
			return val, true
		})
	})
	v.SetOnDemand(OpIter, func() *Value {
		return e.newBuiltinMethod(v, 0, func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			var pairs []*Value
			for _, bucket := range self.KeyValues {
				for _, kv := range bucket {
					pairs = append(pairs, e.NewTuple([]*Value{kv.Key, kv.Value}))
				}
			}
			return e.newSliceIterator(pairs), true
		})
	})
}

// newSliceIterator builds an Iterator over a fixed Go slice, grounded
// on §4.8's HasNext/Next contract.
func (e *Engine) newSliceIterator(items []*Value) *Value {
	idx := 0
	return e.NewIterator(
		func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			return e.NewBool(idx < len(items)), true
		},
		func(e *Engine, c *Context, self *Value, args []*Value) (*Value, bool) {
			if idx >= len(items) {
				return e.ObjectWithNameNotFoundError(OpNext), false
			}
			v := items[idx]
			idx++
			return v, true
		},
	)
}
