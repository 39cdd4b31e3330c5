// Package conductor has a Cat conducting an animal choir.
// The Cat decides how many times every participant performs.
package conductor

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/patterns/behavioral/observer/registry"
	"go.llib.dev/patterns/internal/demo"
	"go.llib.dev/patterns/pkg/logger"
)

// Times is how many times a participant performs.
type Times = int

// Cat is the conductor, it keeps the choir participants in the order they joined.
type Cat struct {
	participants registry.Registry[func()]
}

// JoinChoir adds a participant and returns the token to leave with.
func (c *Cat) JoinChoir(whatToCall func()) registry.Token {
	return c.participants.Register(whatToCall)
}

// LeaveChoir removes the participant of t. Leaving with an unknown token does nothing.
func (c *Cat) LeaveChoir(t registry.Token) {
	c.participants.Unregister(t)
}

// Conduct calls every participant n times, in the order they joined.
func (c *Cat) Conduct(n Times) {
	c.participants.Each(func(p func()) {
		for range n {
			p()
		}
	})
}

// Bat screeches.
type Bat struct{ Out io.Writer }

func (b Bat) Screech() { fmt.Fprintln(b.Out, "Eeeeeee") }

// Turkey gobbles.
type Turkey struct{ Out io.Writer }

func (t Turkey) Gobble() { fmt.Fprintln(t.Out, "Gob-gob") }

// Dog barks or howls.
type Dog struct{ Out io.Writer }

func (d Dog) Bark() { fmt.Fprintln(d.Out, "Woof") }

func (d Dog) Howl() { fmt.Fprintln(d.Out, "Auuuu") }

// Demo conducts a choir the bat has left, so only the dog and the turkey perform.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		out          = &demo.ErrWriter{W: w}
		catConductor = &Cat{}
		bat          = Bat{Out: out}
		dog          = Dog{Out: out}
		turkey       = Turkey{Out: out}
	)

	screech := catConductor.JoinChoir(bat.Screech)
	catConductor.JoinChoir(dog.Bark)
	catConductor.JoinChoir(turkey.Gobble)
	catConductor.LeaveChoir(screech)

	logger.Debug(ctx, "conducting", logger.Field("participants", catConductor.participants.Len()))
	catConductor.Conduct(1)
	return out.Err
}
