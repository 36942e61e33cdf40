package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript invoke plasma as a subprocess command named
// "plasma" inside each script, rather than re-implementing main() or
// shelling out to a built binary (the testscript.RunMain convention).
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"plasma": main1,
	}))
}

// main1 adapts main to the func() int shape testscript.RunMain expects.
// main itself exits with status 1 on failure, so returning 0 here
// means main completed normally.
func main1() int {
	main()
	return 0
}

func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}
