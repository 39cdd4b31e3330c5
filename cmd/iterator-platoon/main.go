// Command iterator-platoon walks a squad, then a whole platoon as one flat sequence.
package main

import (
	"go.llib.dev/patterns/behavioral/iterator/platooniter"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("iterator-platoon", platooniter.Demo)
}
