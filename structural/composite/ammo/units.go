// Package ammo counts the bullets left across a tree of units.
// A leaf reports its own ammunition, a Squad the sum of its units,
// and a Platoon the sum of its squads, recounted on every call.
package ammo

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/pkg/logger"
)

const (
	DefaultMagazines     = 3
	DefaultSniperBullets = 30
)

// InfantryUnit is a soldier who carries ammunition.
type InfantryUnit interface {
	CanCountBullets
}

var (
	_ InfantryUnit    = (*Rifleman)(nil)
	_ InfantryUnit    = (*Sniper)(nil)
	_ CanCountBullets = (*Magazine)(nil)
	_ CanCountBullets = (*Squad)(nil)
	_ CanCountBullets = (*Platoon)(nil)
)

// Rifleman carries magazines.
type Rifleman struct {
	magazines []*Magazine
}

// NewRifleman hands out full magazines, DefaultMagazines is the standard issue.
func NewRifleman(initialMagazines int) *Rifleman {
	r := &Rifleman{}
	for range initialMagazines {
		r.magazines = append(r.magazines, NewMagazine(MagazineCapacity))
	}
	return r
}

func (r *Rifleman) BulletsLeft() int {
	var n int
	for _, m := range r.magazines {
		n += m.BulletsLeft()
	}
	return n
}

// Sniper carries loose bullets.
type Sniper struct {
	bullets []Bullet
}

// NewSniper loads loose bullets, DefaultSniperBullets is the standard issue.
func NewSniper(initialBullets int) *Sniper {
	return &Sniper{bullets: make([]Bullet, max(initialBullets, 0))}
}

func (s *Sniper) BulletsLeft() int { return len(s.bullets) }

// Squad holds units, its ammunition is the sum of theirs.
type Squad struct {
	InfantryUnits []InfantryUnit
}

// NewSquad makes a Squad of the given units.
func NewSquad(units ...InfantryUnit) *Squad {
	return &Squad{InfantryUnits: append([]InfantryUnit(nil), units...)}
}

// Add appends units to the squad.
func (s *Squad) Add(units ...InfantryUnit) {
	s.InfantryUnits = append(s.InfantryUnits, units...)
}

func (s *Squad) BulletsLeft() int {
	var n int
	for _, u := range s.InfantryUnits {
		n += u.BulletsLeft()
	}
	return n
}

// Platoon holds squads, its ammunition is the sum of theirs.
type Platoon struct {
	Squads []*Squad
}

// NewPlatoon makes a Platoon of the given squads.
func NewPlatoon(squads ...*Squad) *Platoon {
	return &Platoon{Squads: append([]*Squad(nil), squads...)}
}

// Add appends squads to the platoon.
func (p *Platoon) Add(squads ...*Squad) {
	p.Squads = append(p.Squads, squads...)
}

func (p *Platoon) BulletsLeft() int {
	var n int
	for _, s := range p.Squads {
		n += s.BulletsLeft()
	}
	return n
}

// Demo prints the size of a squad, then the bullets left in it, in a sniper squad and in the platoon of both.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		miller  = NewRifleman(DefaultMagazines)
		caparzo = NewRifleman(DefaultMagazines)
		jackson = NewSniper(DefaultSniperBullets)
	)
	squad := NewSquad(miller, caparzo, jackson)

	var (
		john    = NewSniper(DefaultSniperBullets)
		webster = NewSniper(DefaultSniperBullets)
		nixon   = NewSniper(DefaultSniperBullets)
	)
	sniperSquad := NewSquad(john, webster, nixon)
	platoon := NewPlatoon(squad, sniperSquad)

	logger.Debug(ctx, "counting bullets", logger.Field("squads", len(platoon.Squads)))
	for _, line := range []string{
		fmt.Sprintf("squad size: %d", len(squad.InfantryUnits)),
		fmt.Sprintf("squad bullets left: %d", squad.BulletsLeft()),
		fmt.Sprintf("sniper squad bullets left: %d", sniperSquad.BulletsLeft()),
		fmt.Sprintf("platoon bullets left: %d", platoon.BulletsLeft()),
	} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
