package vm

import (
	"hash/fnv"

	"plasma/internal/object"
)

// hashValue computes the 64-bit bucket hash for a key value (§3 "hash
// buckets keyed by a 64-bit hash"). Only the intrinsic, naturally
// comparable kinds are hashed structurally; anything else hashes by
// identity so equal keys of user-defined types still land in the same
// bucket only when they are the same object (equality is then refined
// within the bucket by valuesEqual).
func hashValue(v *object.Value) uint64 {
	h := fnv.New64a()
	switch v.Kind {
	case object.KindInteger:
		writeUint64(h, uint64(v.Integer))
	case object.KindFloat:
		writeUint64(h, uint64(v.Floating))
	case object.KindString:
		h.Write([]byte(v.StringVal))
	case object.KindBytes:
		h.Write(v.BytesVal)
	case object.KindBoolean:
		if v.Boolean {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	default:
		writeUint64(h, uint64(v.ID))
	}
	return h.Sum64()
}

func writeUint64(h interface{ Write([]byte) (int, error) }, n uint64) {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(n >> (8 * i))
	}
	h.Write(buf)
}

// valuesEqual is the bucket-collision tiebreaker: structural equality
// for intrinsic kinds, identity otherwise.
func valuesEqual(a, b *object.Value) bool {
	if a == b {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case object.KindInteger:
		return a.Integer == b.Integer
	case object.KindFloat:
		return a.Floating == b.Floating
	case object.KindString:
		return a.StringVal == b.StringVal
	case object.KindBytes:
		return string(a.BytesVal) == string(b.BytesVal)
	case object.KindBoolean:
		return a.Boolean == b.Boolean
	default:
		return false
	}
}
