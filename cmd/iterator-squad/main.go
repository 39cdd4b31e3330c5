// Command iterator-squad walks a squad forward, then backwards.
package main

import (
	"go.llib.dev/patterns/behavioral/iterator/squaditer"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("iterator-squad", squaditer.Demo)
}
