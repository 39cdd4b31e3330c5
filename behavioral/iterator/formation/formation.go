// Package formation composes infantry units into squads and platoons.
// Every squad is led by its own Sergeant and every platoon by its own Lieutenant.
// Nothing walks the formation yet, so it can't be ranged over.
package formation

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/pkg/logger"
)

// InfantryUnit is any soldier who can serve in a squad.
type InfantryUnit interface {
	Rank() string
}

type Rifleman struct{}

func (*Rifleman) Rank() string { return "Rifleman" }

type Sniper struct{}

func (*Sniper) Rank() string { return "Sniper" }

type Sergeant struct{}

func (*Sergeant) Rank() string { return "Sergeant" }

type Lieutenant struct{}

func (*Lieutenant) Rank() string { return "Lieutenant" }

// Squad is a group of units under the command of its own Sergeant.
type Squad struct {
	InfantryUnits []InfantryUnit

	commander *Sergeant
}

// NewSquad makes a Squad with a new Sergeant and the given units.
func NewSquad(units ...InfantryUnit) *Squad {
	return &Squad{
		InfantryUnits: append([]InfantryUnit(nil), units...),
		commander:     &Sergeant{},
	}
}

// Commander returns the squad's Sergeant.
func (s *Squad) Commander() *Sergeant { return s.commander }

// Size counts the squad's members, its Sergeant included.
func (s *Squad) Size() int { return len(s.InfantryUnits) + 1 }

// Platoon is a group of squads under the command of a Lieutenant.
type Platoon struct {
	Squads []*Squad

	commander *Lieutenant
}

// NewPlatoon makes a Platoon with a new Lieutenant and the given squads.
func NewPlatoon(squads ...*Squad) *Platoon {
	return &Platoon{
		Squads:    append([]*Squad(nil), squads...),
		commander: &Lieutenant{},
	}
}

// Commander returns the platoon's Lieutenant.
func (p *Platoon) Commander() *Lieutenant { return p.commander }

// Size counts every member of the platoon, commanders included.
func (p *Platoon) Size() int {
	n := 1
	for _, s := range p.Squads {
		n += s.Size()
	}
	return n
}

// Demo prints how many members each formation has.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		josh    = &Rifleman{}
		ewan    = &Rifleman{}
		tom     = &Sniper{}
		sam     = &Rifleman{}
		eric    = &Sniper{}
		william = &Sniper{}
	)

	rangers := NewSquad(josh, ewan, tom)
	deltaForce := NewSquad(sam, eric, william)
	blackHawk := NewPlatoon(rangers, deltaForce)
	logger.Debug(ctx, "platoon assembled", logger.Field("squads", len(blackHawk.Squads)))

	if _, err := fmt.Fprintf(w, "rangers: %d members\n", rangers.Size()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "delta force: %d members\n", deltaForce.Size()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "black hawk: %d members\n", blackHawk.Size())
	return err
}
