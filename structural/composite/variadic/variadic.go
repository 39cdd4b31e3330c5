// Package variadic seeds a Squad with any number of units in one constructor call.
package variadic

import (
	"context"
	"fmt"
	"io"
)

// InfantryUnit is any soldier who can serve in a squad.
type InfantryUnit interface {
	Rank() string
}

type Rifleman struct{}

func (*Rifleman) Rank() string { return "Rifleman" }

type Sniper struct{}

func (*Sniper) Rank() string { return "Sniper" }

// Squad is an ordered group of units.
type Squad struct {
	InfantryUnits []InfantryUnit
}

// NewSquad enlists the units in the given order.
func NewSquad(units ...InfantryUnit) *Squad {
	return &Squad{InfantryUnits: append([]InfantryUnit(nil), units...)}
}

// Add appends units to the squad.
func (s *Squad) Add(units ...InfantryUnit) {
	s.InfantryUnits = append(s.InfantryUnits, units...)
}

// Len reports the number of units in the squad.
func (s *Squad) Len() int { return len(s.InfantryUnits) }

// Demo seeds a squad at construction and prints its size.
func Demo(_ context.Context, w io.Writer) error {
	var (
		miller  = &Rifleman{}
		caparzo = &Rifleman{}
		jackson = &Sniper{}
	)

	squad := NewSquad(miller, caparzo, jackson)

	_, err := fmt.Fprintln(w, squad.Len())
	return err
}
