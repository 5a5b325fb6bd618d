package cayley_test

import (
	"fmt"

	"github.com/VosDeMens/Group-Theory-Sandbox/cayley"
	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

// ExampleBuild walks the Cayley graph of the cyclic group of order 3.
func ExampleBuild() {
	g, _ := group.New([][]string{{"g3", "e"}})
	c, _ := cayley.Build(g)

	fmt.Println("order:", c.Order())
	fmt.Println("vertices:", c.Vertices())

	to, _ := c.Step("gg", 'g')
	fmt.Printf("gg --g--> %q\n", to)

	n, _ := c.ElementOrder("g")
	fmt.Println("order of g:", n)
	// Output:
	// order: 3
	// vertices: [ g gg]
	// gg --g--> ""
	// order of g: 3
}
