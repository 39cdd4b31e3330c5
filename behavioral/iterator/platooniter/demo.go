package platooniter

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/pkg/iterkit"
	"go.llib.dev/patterns/pkg/logger"
)

// Demo prints a squad, then the platoon holding it, then ranges over the platoon.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		josh    = &Rifleman{Name: "Josh"}
		ewan    = &Rifleman{Name: "Ewan"}
		tom     = &Sniper{Name: "Tom"}
		sam     = &Rifleman{Name: "Sam"}
		eric    = &Sniper{Name: "Eric"}
		william = &Sniper{Name: "William"}
	)

	rangers := NewSquad(josh, ewan, tom)
	deltaForce := NewSquad(sam, eric, william)
	blackHawk := NewPlatoon(rangers, deltaForce)

	if err := iterkit.PrintAll[InfantryUnit](w, rangers.Iterator()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	logger.Debug(ctx, "walking the platoon", logger.Field("squads", len(blackHawk.Squads)))
	if err := iterkit.PrintAll[InfantryUnit](w, blackHawk.Iterator()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for u := range blackHawk.All() {
		if _, err := fmt.Fprintln(w, u); err != nil {
			return err
		}
	}
	return nil
}
