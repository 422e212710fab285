// Minimal fixture for breakpoint and step-through testing.
package main

import "fmt"

func calculate(a, b int) int {
	result := a + b // breakpoint target: function body
	return result
}

func main() {
	x := 10
	y := 20
	total := calculate(x, y) // breakpoint target: call site
	fmt.Printf("Result: %d\n", total)
}
