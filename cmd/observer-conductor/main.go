// Command observer-conductor lets a Cat conduct a choir where the Cat sets the repeat count.
package main

import (
	"go.llib.dev/patterns/behavioral/observer/conductor"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("observer-conductor", conductor.Demo)
}
