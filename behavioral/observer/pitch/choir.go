// Package pitch has a Cat broadcasting messages to an animal choir.
// Each message carries a pitch, and each participant sings only at the pitches it can do.
// A participant that can't handle a pitch stays quiet, that is not an error.
package pitch

import (
	"context"
	"fmt"
	"io"
	"slices"

	"go.llib.dev/patterns/behavioral/observer/registry"
	"go.llib.dev/patterns/internal/demo"
	"go.llib.dev/patterns/pkg/logger"
)

// Listener receives every broadcast message and decides whether it can sing it.
type Listener func(context.Context, Message)

// Cat is the conductor, it broadcasts messages to the choir in joining order.
type Cat struct {
	participants registry.Registry[Listener]
}

// JoinChoir adds a participant and returns the token to leave with.
func (c *Cat) JoinChoir(whatToCall Listener) registry.Token {
	return c.participants.Register(whatToCall)
}

// LeaveChoir removes the participant of t. Leaving with an unknown token does nothing.
func (c *Cat) LeaveChoir(t registry.Token) {
	c.participants.Unregister(t)
}

// Conduct passes msg to every participant once.
func (c *Cat) Conduct(ctx context.Context, msg Message) {
	c.participants.Each(func(p Listener) { p(ctx, msg) })
}

// Bat only sings high.
type Bat struct{ Out io.Writer }

func (b Bat) Screech(ctx context.Context, msg Message) {
	sing(ctx, b.Out, "Eeeeeee", msg, High)
}

// Turkey only sings low.
type Turkey struct{ Out io.Writer }

func (t Turkey) Gobble(ctx context.Context, msg Message) {
	sing(ctx, t.Out, "Gob-gob", msg, Low)
}

// Dog barks at any pitch.
type Dog struct{ Out io.Writer }

func (d Dog) Bark(ctx context.Context, msg Message) {
	sing(ctx, d.Out, "Woof", msg, High, Low)
}

// Howl ignores the message details, the dog howls once whatever is asked.
func (d Dog) Howl(ctx context.Context, _ Message) {
	fmt.Fprintln(d.Out, "Auuuu")
}

func sing(ctx context.Context, w io.Writer, sound string, msg Message, pitches ...SoundPitch) {
	if !slices.Contains(pitches, msg.Pitch) {
		logger.Debug(ctx, "can't sing at this pitch",
			logger.Field("sound", sound),
			logger.Field("pitch", msg.Pitch.String()))
		return
	}
	for range msg.Repeat {
		fmt.Fprintf(w, "%s %s\n", msg.Pitch, sound)
	}
}

// Demo broadcasts low and high messages and swaps the turkey for a howling dog in between.
func Demo(ctx context.Context, w io.Writer) error {
	var (
		out          = &demo.ErrWriter{W: w}
		catConductor = &Cat{}
		bat          = Bat{Out: out}
		dog          = Dog{Out: out}
		turkey       = Turkey{Out: out}
	)

	catConductor.JoinChoir(bat.Screech)
	gobble := catConductor.JoinChoir(turkey.Gobble)
	catConductor.JoinChoir(dog.Bark)

	catConductor.Conduct(ctx, LowMessage(2))
	catConductor.Conduct(ctx, HighMessage(1))

	catConductor.LeaveChoir(gobble)
	catConductor.JoinChoir(dog.Howl)
	catConductor.Conduct(ctx, LowMessage(1))
	return out.Err
}
