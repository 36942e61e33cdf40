// cmd/plasma/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"plasma/internal/bytecode"
	"plasma/internal/object"
	"plasma/internal/vm"
)

// sampleProgram assembles the one sample program this demo ships with: build a
// three-element array, sum it with a for loop, and return the total.
// There is no lexer or parser in this module (spec.md §1 keeps surface
// syntax out of scope); a real frontend would hand Execute a stream
// compiled from source instead of this hand-built one.
func sampleProgram() *bytecode.Stream {
	body := bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpGetIdentifier, Value: "total"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpGetIdentifier, Value: "n"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpBinary, Value: bytecode.BinaryAdd},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpAssignIdentifier, Value: "total"},
	})

	return bytecode.NewStream([]bytecode.Instruction{
		{Op: bytecode.OpNewInteger, Value: int64(0)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpAssignIdentifier, Value: "total"},

		{Op: bytecode.OpNewInteger, Value: int64(10)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewInteger, Value: int64(20)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewInteger, Value: int64(30)},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpNewArray, Value: 3},
		{Op: bytecode.OpPush},

		{Op: bytecode.OpForLoop, Value: bytecode.LoopInfo{
			Body:      body,
			Receivers: []string{"n"},
		}},

		{Op: bytecode.OpGetIdentifier, Value: "total"},
		{Op: bytecode.OpPush},
		{Op: bytecode.OpReturn, Value: 1},
	})
}

func main() {
	showStats := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--stats":
			showStats = true
		case "--help", "-h":
			showUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "plasma: unknown flag %q\n", arg)
			showUsage()
			os.Exit(1)
		}
	}

	e := object.NewEngine()
	c := object.NewContext(e)

	result, ok := vm.Execute(e, c, sampleProgram())
	if !ok {
		fault(e, result)
		os.Exit(1)
	}

	fmt.Printf("result: %s\n", describe(e, c, result))

	if showStats {
		fmt.Printf("values:  %s\n", e.ValueArenaStats())
		fmt.Printf("symbols: %s\n", e.SymbolArenaStats())
	}
}

// describe renders a value via its ToString method, falling back to
// its bare type name if it doesn't have one.
func describe(e *object.Engine, c *object.Context, v *object.Value) string {
	toString, ok := v.Get(object.OpToString)
	if !ok {
		return fmt.Sprintf("<%s>", v.TypeName)
	}
	str, ok := e.CallFunction(c, toString, nil)
	if !ok {
		return fmt.Sprintf("<%s>", v.TypeName)
	}
	return str.StringVal
}

// fault prints a raised RuntimeError to stderr, colorized red when
// stderr is attached to a terminal.
func fault(e *object.Engine, errVal *object.Value) {
	msg := describe(e, nil, errVal)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31mplasma: %s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "plasma: %s\n", msg)
}

func showUsage() {
	fmt.Println("plasma - bytecode execution engine demo")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  plasma            run the built-in sample program")
	fmt.Println("  plasma --stats    also print arena diagnostics")
}
