// Package roster keeps infantry units in a Squad that is filled one Add at a time.
package roster

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

// Squad is ready to use as a zero value.
type Squad struct {
	InfantryUnits []InfantryUnit
}

// Add appends units to the squad.
func (s *Squad) Add(units ...InfantryUnit) {
	s.InfantryUnits = append(s.InfantryUnits, units...)
}

// Len reports the number of units in the squad.
func (s *Squad) Len() int { return len(s.InfantryUnits) }

// Demo fills an empty squad and prints its size.
func Demo(_ context.Context, w io.Writer) error {
	var (
		miller  = &Rifleman{}
		caparzo = &Rifleman{}
		jackson = &Sniper{}
	)

	squad := &Squad{}
	squad.Add(miller)
	squad.Add(caparzo)
	squad.Add(jackson)

	_, err := fmt.Fprintln(w, squad.Len())
	return err
}
