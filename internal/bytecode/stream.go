package bytecode

// Instruction is one opcode plus its opaque decoded value. Handlers own
// interpreting Value per opcode (§6.1) — the stream itself does no
// type checking at read time.
type Instruction struct {
	Op    OpCode
	Value interface{}
}

// Stream is a self-contained, ordered instruction sequence. Nested
// bodies (class/function/generator/module constructor bodies, loop
// bodies and conditions, try/except/finally blocks) are themselves
// Streams, interpreted by the same executor (§6.1).
type Stream struct {
	instructions []Instruction
	cursor       int
}

// NewStream wraps a pre-built instruction slice for execution.
func NewStream(instructions []Instruction) *Stream {
	return &Stream{instructions: instructions}
}

// HasNext reports whether the stream has an unread instruction.
func (s *Stream) HasNext() bool {
	return s.cursor < len(s.instructions)
}

// Next returns the next instruction and advances the cursor.
func (s *Stream) Next() Instruction {
	i := s.instructions[s.cursor]
	s.cursor++
	return i
}

// NextN consumes and returns the following n instructions as a fresh,
// independently-cursored sub-stream — used to slice out a structured
// construct's body (§6.1: "the executor consumes that many following
// instructions as the nested body").
func (s *Stream) NextN(n int) *Stream {
	body := s.instructions[s.cursor : s.cursor+n]
	s.cursor += n
	return &Stream{instructions: body}
}

// Reset rewinds the stream to its first instruction, used to re-run a
// loop condition or body on each iteration.
func (s *Stream) Reset() {
	s.cursor = 0
}

// ClassInfo backs OpNewClass / OpNewInterface (§6.1 class_information).
type ClassInfo struct {
	Name       string
	NumBases   int
	BodyLength int
}

// FunctionInfo backs OpNewFunction / OpNewClassFunction /
// OpNewLambdaFunction (§6.1 function_information).
type FunctionInfo struct {
	Name       string
	Arity      int
	BodyLength int
}

// GeneratorInfo backs OpNewGenerator (§6.1 generator_information).
type GeneratorInfo struct {
	NumReceivers    int
	OperationLength int
}

// ConditionInfo backs OpIf / OpUnless / OpIfOneLiner / OpUnlessOneLiner
// (§6.1 condition_information). Body and ElseBody are inline streams
// already sliced out by the compiler (unlike class/function bodies,
// which are consumed live from the enclosing stream).
type ConditionInfo struct {
	Body     *Stream
	ElseBody *Stream
}

// LoopInfo backs OpForLoop / OpWhileLoop / OpUntilLoop / OpDoWhileLoop
// (§6.1 loop_information). Condition is unused by OpForLoop (the
// condition there is "does the iterator have a next element").
type LoopInfo struct {
	Condition *Stream
	Body      *Stream
	Receivers []string
}

// ExceptBlock is one `except` clause of a TryInfo (§6.1).
type ExceptBlock struct {
	// Targets is a stream that, when run, leaves a container of
	// candidate error types on the value stack. An empty Targets
	// matches any error.
	Targets      *Stream
	CaptureName  string
	Body         *Stream
}

// TryInfo backs OpTryBlock (§6.1 try_information).
type TryInfo struct {
	Body          *Stream
	ExceptBlocks  []ExceptBlock
	ElseBody      *Stream
	Finally       *Stream
}
