// Command iterator-formation prints the member counts of two squads and their platoon.
package main

import (
	"go.llib.dev/patterns/behavioral/iterator/formation"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("iterator-formation", formation.Demo)
}
