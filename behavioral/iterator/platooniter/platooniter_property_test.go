package platooniter_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"go.llib.dev/patterns/behavioral/iterator/platooniter"
	"go.llib.dev/patterns/pkg/iterkit"
)

// newPlatoon builds a platoon where squad n has sizes[n] randomly named riflemen.
func newPlatoon(sizes []int) *platooniter.Platoon {
	p := platooniter.NewPlatoon()
	for _, size := range sizes {
		squad := platooniter.NewSquad()
		for range size {
			squad.Add(&platooniter.Rifleman{Name: randomdata.FirstName(randomdata.RandomGender)})
		}
		p.Add(squad)
	}
	return p
}

func TestPlatoonIteratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1942)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("walk length is 1 + sum(1 + units)", prop.ForAll(
		func(sizes []int) bool {
			total := 1
			for _, size := range sizes {
				total += 1 + size
			}
			return len(iterkit.Collect[platooniter.InfantryUnit](newPlatoon(sizes).Iterator())) == total
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("walk order is Lieutenant, then Sergeant and units per squad", prop.ForAll(
		func(sizes []int) bool {
			p := newPlatoon(sizes)
			exp := []platooniter.InfantryUnit{p.Commander()}
			for _, squad := range p.Squads {
				exp = append(exp, squad.Commander())
				exp = append(exp, squad.InfantryUnits...)
			}
			got := iterkit.Collect[platooniter.InfantryUnit](p.Iterator())
			if len(got) != len(exp) {
				return false
			}
			for i := range exp {
				if got[i] != exp[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("Next after the last member reports exhaustion", prop.ForAll(
		func(sizes []int) bool {
			itr := newPlatoon(sizes).Iterator()
			iterkit.Collect[platooniter.InfantryUnit](itr)
			_, err := itr.Next()
			return !itr.HasNext() && err == iterkit.ErrExhausted
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("squad walks are mirror images apart from the Sergeant", prop.ForAll(
		func(size int) bool {
			squad := newPlatoon([]int{size}).Squads[0]
			fwd := iterkit.Collect[platooniter.InfantryUnit](squad.Iterator())
			rev := iterkit.Collect[platooniter.InfantryUnit](squad.ReverseIterator())
			if len(fwd) != size+1 || len(rev) != size+1 {
				return false
			}
			if fwd[0] != platooniter.InfantryUnit(squad.Commander()) || rev[size] != platooniter.InfantryUnit(squad.Commander()) {
				return false
			}
			for i := 0; i < size; i++ {
				if fwd[i+1] != rev[size-1-i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
