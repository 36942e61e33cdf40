// Package bytecode defines the instruction stream format the engine
// consumes (§6.1): an ordered sequence of opcode/value pairs, plus the
// auxiliary records structured instructions (class, function, loop,
// try, generator) carry.
package bytecode

// OpCode identifies an instruction handler in the executor.
type OpCode byte

const (
	// Literal producers
	OpNewString OpCode = iota
	OpNewBytes
	OpNewInteger
	OpNewFloat
	OpGetTrue
	OpGetFalse
	OpGetNone

	// Aggregate producers
	OpNewTuple
	OpNewArray
	OpNewHash

	// Operators
	OpUnary
	OpBinary

	// Name resolution
	OpGetIdentifier
	OpSelectNameFromObject
	OpIndex

	// Assignment
	OpAssignIdentifier
	OpAssignSelector
	OpAssignIndex

	// Call
	OpMethodInvocation

	// Class / function / module definitions
	OpNewClass
	OpNewInterface
	OpNewFunction
	OpNewClassFunction
	OpNewLambdaFunction
	OpLoadFunctionArguments
	OpNewModule
	OpNewGenerator

	// Structured control flow
	OpIf
	OpUnless
	OpIfOneLiner
	OpUnlessOneLiner
	OpForLoop
	OpWhileLoop
	OpUntilLoop
	OpDoWhileLoop
	OpRaise
	OpTryBlock

	// Stack and flow
	OpPush
	OpNop
	OpReturn
	OpBreak
	OpContinue
	OpRedo
)

// UnaryOperator selects the operation name unary_op looks up (§4.6).
type UnaryOperator byte

const (
	UnaryNegateBits UnaryOperator = iota
	UnaryNegate
	UnaryNegative
	// UnaryPositive is deliberately unimplemented: the original source
	// stubs it out (object_creators.cpp / execute.cpp), and spec.md §9
	// takes that as "not yet defined" rather than inventing semantics.
	UnaryPositive
)

// BinaryOperator selects the left/right operation name pair binary_op
// looks up (§4.6).
type BinaryOperator byte

const (
	BinaryAdd BinaryOperator = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryFloorDiv
	BinaryMod
	BinaryPow
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryBitwiseLeft
	BinaryBitwiseRight
	BinaryAnd
	BinaryOr
	BinaryEquals
	BinaryNotEqual
	BinaryGreaterThan
	BinaryGreaterOrEqualThan
	BinaryLessThan
	BinaryLessOrEqualThan
	BinaryContains
)
