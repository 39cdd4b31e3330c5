// Command composite-variadic seeds a squad in one call and prints its size.
package main

import (
	"go.llib.dev/patterns/structural/composite/variadic"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("composite-variadic", variadic.Demo)
}
