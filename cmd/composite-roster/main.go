// Command composite-roster fills a squad one unit at a time and prints its size.
package main

import (
	"go.llib.dev/patterns/structural/composite/roster"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("composite-roster", roster.Demo)
}
