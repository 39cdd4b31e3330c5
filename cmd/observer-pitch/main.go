// Command observer-pitch lets a Cat broadcast pitched messages that participants may decline.
package main

import (
	"go.llib.dev/patterns/behavioral/observer/pitch"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("observer-pitch", pitch.Demo)
}
