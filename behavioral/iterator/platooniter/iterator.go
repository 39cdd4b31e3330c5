package platooniter

import (
	"iter"

	"go.llib.dev/patterns/pkg/iterkit"
)

var (
	_ iterkit.Iterator[InfantryUnit] = (*SquadIterator)(nil)
	_ iterkit.Iterator[InfantryUnit] = (*ReverseSquadIterator)(nil)
	_ iterkit.Iterator[InfantryUnit] = (*PlatoonIterator)(nil)
)

// Iterator walks the Sergeant, then the units in the order they joined.
func (s *Squad) Iterator() *SquadIterator {
	return &SquadIterator{squad: s}
}

// ReverseIterator walks the units from the last one who joined, then the Sergeant.
func (s *Squad) ReverseIterator() *ReverseSquadIterator {
	return &ReverseSquadIterator{squad: s}
}

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

// Iterator walks the Lieutenant first,
// then for every squad in joining order its Sergeant followed by its units.
//
// The length of the walk is fixed when the iterator is made,
// so the platoon's membership should not change until the iterator is drained.
// If squads or units are removed mid-walk, Next reports ErrExhausted early.
func (p *Platoon) Iterator() *PlatoonIterator {
	total := 1 // Lieutenant
	for _, s := range p.Squads {
		total += 1 + len(s.InfantryUnits)
	}
	return &PlatoonIterator{platoon: p, total: total}
}

// All makes the platoon rangeable:
//
//	for u := range platoon.All() {}
func (p *Platoon) All() iter.Seq[InfantryUnit] {
	return iterkit.Seq[InfantryUnit](p.Iterator())
}

// PlatoonIterator walks a whole platoon as one flat sequence.
type PlatoonIterator struct {
	platoon *Platoon
	// squad is the outer cursor, 0 is the platoon itself and n is Squads[n-1].
	squad int
	// member is the inner cursor, 0 is the squad's Sergeant and n is InfantryUnits[n-1].
	member int
	count  int
	total  int
}

func (i *PlatoonIterator) HasNext() bool {
	return i.count < i.total
}

func (i *PlatoonIterator) Next() (InfantryUnit, error) {
	if !i.HasNext() || len(i.platoon.Squads) < i.squad {
		return nil, iterkit.ErrExhausted
	}
	var u InfantryUnit
	if i.squad == 0 {
		u = i.platoon.commander
		i.squad++
	} else {
		squad := i.platoon.Squads[i.squad-1]
		if len(squad.InfantryUnits) < i.member {
			return nil, iterkit.ErrExhausted
		}
		if i.member == 0 {
			u = squad.commander
		} else {
			u = squad.InfantryUnits[i.member-1]
		}
		i.member++
		if len(squad.InfantryUnits) < i.member {
			i.squad++
			i.member = 0
		}
	}
	i.count++
	return u, nil
}
