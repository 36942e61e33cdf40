package object

// Operator name constants mirror the UnaryOperator/BinaryOperator
// opcodes 1:1; kept as strings since method dispatch is by attribute
// name (§4.6).
const (
	OpNegateBits = "NegateBits"
	OpNegate     = "Negate"
	OpNegative   = "Negative"
	// OpPositive is deliberately absent: the unary Positive operator is
	// left unimplemented (no on-demand entry on any builtin), so
	// lookup falls through to ObjectWithNameNotFoundError like any
	// other undefined operator.

	OpAdd           = "Add"
	OpRightAdd      = "RightAdd"
	OpSub           = "Sub"
	OpRightSub      = "RightSub"
	OpMul           = "Mul"
	OpRightMul      = "RightMul"
	OpDiv           = "Div"
	OpRightDiv      = "RightDiv"
	OpFloorDiv      = "FloorDiv"
	OpRightFloorDiv = "RightFloorDiv"
	OpMod           = "Mod"
	OpRightMod      = "RightMod"
	OpPow           = "Pow"
	OpRightPow      = "RightPow"
	OpBitAnd        = "BitAnd"
	OpRightBitAnd   = "RightBitAnd"
	OpBitOr         = "BitOr"
	OpRightBitOr    = "RightBitOr"
	OpBitXor        = "BitXor"
	OpRightBitXor   = "RightBitXor"
	OpLeftShift     = "LeftShift"
	OpRightLeftShift = "RightLeftShift"
	OpRightShift    = "RightShift"
	OpRightRightShift = "RightRightShift"
	OpAnd           = "And"
	OpRightAnd      = "RightAnd"
	OpOr            = "Or"
	OpRightOr       = "RightOr"
	OpXor           = "Xor"
	OpRightXor      = "RightXor"
	OpEquals        = "Equals"
	OpRightEquals   = "RightEquals"
	OpNotEquals     = "NotEquals"
	OpRightNotEquals = "RightNotEquals"
	OpGreaterThan   = "GreaterThan"
	OpRightGreaterThan = "RightGreaterThan"
	OpLessThan      = "LessThan"
	OpRightLessThan = "RightLessThan"
	OpGreaterOrEqual = "GreaterOrEqual"
	OpRightGreaterOrEqual = "RightGreaterOrEqual"
	OpLessOrEqual   = "LessOrEqual"
	OpRightLessOrEqual = "RightLessOrEqual"
	OpContains      = "Contains"
	OpRightContains = "RightContains"

	OpIndex  = "Index"
	OpAssign = "Assign"

	OpToString  = "ToString"
	OpHasNext   = "HasNext"
	OpNext      = "Next"
	OpIter      = "Iter"
	OpInitialize = "Initialize"
)

// binaryNames maps a binary opcode name to its (left, right) method
// pair. Contains is the one asymmetric case (§4.6: "the names are
// swapped").
var binaryNames = map[string][2]string{
	"Add":            {OpAdd, OpRightAdd},
	"Sub":            {OpSub, OpRightSub},
	"Mul":            {OpMul, OpRightMul},
	"Div":            {OpDiv, OpRightDiv},
	"FloorDiv":       {OpFloorDiv, OpRightFloorDiv},
	"Mod":            {OpMod, OpRightMod},
	"Pow":            {OpPow, OpRightPow},
	"BitAnd":         {OpBitAnd, OpRightBitAnd},
	"BitOr":          {OpBitOr, OpRightBitOr},
	"BitXor":         {OpBitXor, OpRightBitXor},
	"LeftShift":      {OpLeftShift, OpRightLeftShift},
	"RightShift":     {OpRightShift, OpRightRightShift},
	"And":            {OpAnd, OpRightAnd},
	"Or":             {OpOr, OpRightOr},
	"Xor":            {OpXor, OpRightXor},
	"Equals":         {OpEquals, OpRightEquals},
	"NotEquals":      {OpNotEquals, OpRightNotEquals},
	"GreaterThan":    {OpGreaterThan, OpRightGreaterThan},
	"LessThan":       {OpLessThan, OpRightLessThan},
	"GreaterOrEqual": {OpGreaterOrEqual, OpRightGreaterOrEqual},
	"LessOrEqual":    {OpLessOrEqual, OpRightLessOrEqual},
	// Contains is handled separately: RightContains-on-left first, then
	// Contains-on-right (§4.6).
}

// BinaryMethodNames returns the (left, right) method-name pair for a
// canonical binary operator name (e.g. "Add" -> ("Add", "RightAdd")).
func BinaryMethodNames(op string) (left, right string, ok bool) {
	if op == "Contains" {
		return OpRightContains, OpContains, true
	}
	pair, ok := binaryNames[op]
	if !ok {
		return "", "", false
	}
	return pair[0], pair[1], ok
}

// UnaryMethodName returns the method name for a canonical unary
// operator, or "" if that operator has no name (Positive).
func UnaryMethodName(op string) string {
	switch op {
	case "NegateBits":
		return OpNegateBits
	case "Negate":
		return OpNegate
	case "Negative":
		return OpNegative
	default:
		return ""
	}
}

// GetType implements §4.2's get_type(): the type link, or for a
// type-value itself, the synthetic "Type of Type" anchor.
func (v *Value) GetType(e *Engine) *Value {
	if v.Kind == KindType {
		return e.BuiltinType("Type")
	}
	return v.Type
}
