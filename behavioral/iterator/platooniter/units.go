// Package platooniter walks a whole Platoon as one flat sequence:
// the Lieutenant, then every Squad's Sergeant followed by that Squad's units.
package platooniter

import "fmt"

// InfantryUnit is any soldier who can serve in a squad.
type InfantryUnit interface {
	fmt.Stringer
}

// Rifleman is a named rank-and-file soldier.
type Rifleman struct {
	Name string
}

func (r *Rifleman) String() string { return "Rifleman: " + r.Name }

// Sniper is a named rank-and-file soldier.
type Sniper struct {
	Name string
}

func (s *Sniper) String() string { return "Sniper: " + s.Name }

// Sergeant commands a Squad.
type Sergeant struct{}

func (*Sergeant) String() string { return "Sergeant" }

// Lieutenant leads a Platoon.
type Lieutenant struct{}

func (*Lieutenant) String() string { return "Lieutenant" }

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

// Add appends units after the ones already in the squad.
func (s *Squad) Add(units ...InfantryUnit) {
	s.InfantryUnits = append(s.InfantryUnits, units...)
}

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

// Add appends squads after the ones already in the platoon.
func (p *Platoon) Add(squads ...*Squad) {
	p.Squads = append(p.Squads, squads...)
}
