package conductor_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.llib.dev/patterns/behavioral/observer/conductor"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestCat(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		out = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		cat = testcase.Let(s, func(t *testcase.T) *conductor.Cat { return &conductor.Cat{} })
		dog = testcase.Let(s, func(t *testcase.T) conductor.Dog { return conductor.Dog{Out: out.Get(t)} })
		bat = testcase.Let(s, func(t *testcase.T) conductor.Bat { return conductor.Bat{Out: out.Get(t)} })
	)
	lines := func(t *testcase.T) []string {
		return strings.Fields(out.Get(t).String())
	}

	s.Describe("#Conduct", func(s *testcase.Spec) {
		s.Then("without participants nothing happens", func(t *testcase.T) {
			cat.Get(t).Conduct(t.Random.IntB(1, 5))
			assert.Empty(t, out.Get(t).String())
		})

		s.Then("every participant performs n times, in joining order", func(t *testcase.T) {
			cat.Get(t).JoinChoir(dog.Get(t).Bark)
			cat.Get(t).JoinChoir(bat.Get(t).Screech)
			cat.Get(t).Conduct(2)
			assert.Equal(t, []string{"Woof", "Woof", "Eeeeeee", "Eeeeeee"}, lines(t))
		})

		s.Then("each broadcast calls the participant once per repeat", func(t *testcase.T) {
			var calls int
			cat.Get(t).JoinChoir(func() { calls++ })
			n := t.Random.IntB(1, 10)
			cat.Get(t).Conduct(n)
			assert.Equal(t, n, calls)
		})
	})

	s.Describe("#LeaveChoir", func(s *testcase.Spec) {
		s.Then("the participant who left is not called", func(t *testcase.T) {
			tok := cat.Get(t).JoinChoir(bat.Get(t).Screech)
			cat.Get(t).JoinChoir(dog.Get(t).Howl)
			cat.Get(t).LeaveChoir(tok)
			cat.Get(t).Conduct(1)
			assert.Equal(t, []string{"Auuuu"}, lines(t))
		})

		s.Then("leaving twice is fine", func(t *testcase.T) {
			tok := cat.Get(t).JoinChoir(bat.Get(t).Screech)
			cat.Get(t).LeaveChoir(tok)
			cat.Get(t).LeaveChoir(tok)
			cat.Get(t).Conduct(1)
			assert.Empty(t, out.Get(t).String())
		})
	})
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, conductor.Demo(context.Background(), &buf))
	assert.Equal(t, "Woof\nGob-gob\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBrokenWriter }

var errBrokenWriter = errors.New("broken pipe")

func TestDemo_writeFails(t *testing.T) {
	assert.ErrorIs(t, conductor.Demo(context.Background(), brokenWriter{}), errBrokenWriter)
}
