// Package squaditer lets a Squad hand out iterators over its members,
// Sergeant first, or Sergeant last when walking backwards.
package squaditer

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/pkg/iterkit"
	"go.llib.dev/patterns/pkg/logger"
)

// InfantryUnit is any soldier who can serve in a squad.
type InfantryUnit interface {
	fmt.Stringer
}

type Rifleman struct{}

func (*Rifleman) String() string { return "Rifleman" }

type Sniper struct{}

func (*Sniper) String() string { return "Sniper" }

type Sergeant struct{}

func (*Sergeant) String() string { return "Sergeant" }

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

// Iterator walks the Sergeant, then the units in the order they joined.
func (s *Squad) Iterator() *SquadIterator {
	return &SquadIterator{squad: s}
}

// ReverseIterator walks the units from the last one who joined, then the Sergeant.
func (s *Squad) ReverseIterator() *ReverseSquadIterator {
	return &ReverseSquadIterator{squad: s}
}

var (
	_ iterkit.Iterator[InfantryUnit] = (*SquadIterator)(nil)
	_ iterkit.Iterator[InfantryUnit] = (*ReverseSquadIterator)(nil)
)

// SquadIterator walks a squad from its Sergeant to its last unit.
type SquadIterator struct {
	squad *Squad
	index int
}

func (i *SquadIterator) HasNext() bool {
	return i.index < len(i.squad.InfantryUnits)+1 // +1 for the Sergeant
}

func (i *SquadIterator) Next() (InfantryUnit, error) {
	if !i.HasNext() {
		return nil, iterkit.ErrExhausted
	}
	var u InfantryUnit
	if i.index == 0 {
		u = i.squad.commander
	} else {
		u = i.squad.InfantryUnits[i.index-1]
	}
	i.index++
	return u, nil
}

// ReverseSquadIterator walks a squad from its last unit to its Sergeant.
type ReverseSquadIterator struct {
	squad *Squad
	index int
}

func (i *ReverseSquadIterator) HasNext() bool {
	return i.index < len(i.squad.InfantryUnits)+1
}

func (i *ReverseSquadIterator) Next() (InfantryUnit, error) {
	if !i.HasNext() {
		return nil, iterkit.ErrExhausted
	}
	var (
		u InfantryUnit
		n = len(i.squad.InfantryUnits)
	)
	if i.index == n {
		u = i.squad.commander
	} else {
		u = i.squad.InfantryUnits[n-i.index-1]
	}
	i.index++
	return u, nil
}

// Platoon can't be iterated yet, see platooniter for the flattened walk.
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

// Demo prints a squad forward, then in reverse.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		josh = &Rifleman{}
		ewan = &Rifleman{}
		tom  = &Sniper{}
	)
	rangers := NewSquad(josh, ewan, tom)

	logger.Debug(ctx, "walking the squad forward")
	if err := iterkit.PrintAll[InfantryUnit](w, rangers.Iterator()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	logger.Debug(ctx, "walking the squad backwards")
	return iterkit.PrintAll[InfantryUnit](w, rangers.ReverseIterator())
}
