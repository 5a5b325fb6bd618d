package notation_test

import (
	"fmt"

	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
)

// ExampleExpand unrolls power suffixes and drops identity markers.
func ExampleExpand() {
	expanded, _ := notation.Expand("H2r3")
	fmt.Println(expanded)

	expanded, _ = notation.Expand("r5eH")
	fmt.Println(expanded)
	// Output:
	// HHrrr
	// rrrrrH
}

// ExampleCompress renders plain words back in human notation.
func ExampleCompress() {
	fmt.Println(notation.Compress("HHrrrrH"))
	fmt.Println(notation.Compress(""))
	// Output:
	// H2r4H
	// e
}
