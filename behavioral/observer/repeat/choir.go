// Package repeat has a Cat conducting an animal choir where
// the Cat names the count and every participant repeats its own sound that many times.
package repeat

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/behavioral/observer/registry"
	"go.llib.dev/patterns/internal/demo"
	"go.llib.dev/patterns/pkg/logger"
)

// Times is how many times a participant repeats its sound.
type Times = int

// Cat is the conductor, it keeps the choir participants in the order they joined.
type Cat struct {
	participants registry.Registry[func(Times)]
}

// JoinChoir adds a participant and returns the token to leave with.
func (c *Cat) JoinChoir(whatToCall func(Times)) registry.Token {
	return c.participants.Register(whatToCall)
}

// LeaveChoir removes the participant of t. Leaving with an unknown token does nothing.
func (c *Cat) LeaveChoir(t registry.Token) {
	c.participants.Unregister(t)
}

// Conduct passes n to every participant once.
func (c *Cat) Conduct(n Times) {
	c.participants.Each(func(p func(Times)) { p(n) })
}

// Bat screeches.
type Bat struct{ Out io.Writer }

func (b Bat) Screech(repeat Times) { say(b.Out, "Eeeeeee", repeat) }

// Turkey gobbles.
type Turkey struct{ Out io.Writer }

func (t Turkey) Gobble(repeat Times) { say(t.Out, "Gob-gob", repeat) }

// Dog barks or howls.
type Dog struct{ Out io.Writer }

func (d Dog) Bark(repeat Times) { say(d.Out, "Woof", repeat) }

func (d Dog) Howl(repeat Times) { say(d.Out, "Auuuu", repeat) }

func say(w io.Writer, sound string, repeat Times) {
	for range repeat {
		fmt.Fprintln(w, sound)
	}
}

// Demo asks the dog to howl and the turkey to gobble three times each.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		out          = &demo.ErrWriter{W: w}
		catConductor = &Cat{}
		bat          = Bat{Out: out}
		dog          = Dog{Out: out}
		turkey       = Turkey{Out: out}
	)

	screech := catConductor.JoinChoir(bat.Screech)
	catConductor.JoinChoir(dog.Howl)
	catConductor.JoinChoir(turkey.Gobble)
	catConductor.LeaveChoir(screech)

	logger.Debug(ctx, "conducting", logger.Field("times", 3))
	catConductor.Conduct(3)
	return out.Err
}
