// Command composite-ammo counts the bullets left in a squad, a sniper squad and their platoon.
package main

import (
	"go.llib.dev/patterns/structural/composite/ammo"
	"go.llib.dev/patterns/internal/demo"
)

func main() {
	demo.Main("composite-ammo", ammo.Demo)
}
