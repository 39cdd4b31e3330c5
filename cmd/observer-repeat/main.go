// Command observer-repeat lets a Cat conduct a choir where every participant repeats its own sound.
package main

import (
	"go.llib.dev/patterns/behavioral/observer/repeat"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("observer-repeat", repeat.Demo)
}
