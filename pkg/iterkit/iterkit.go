// Package iterkit provides the pull style iterator contract that the examples implement.
//
// # Summary
//
// An Iterator's goal is to decouple the traversal of an aggregate from its representation.
// Consumers ask HasNext before every Next, and Next past the end reports ErrExhausted.
// An iterator is consumed once; restarting means asking the aggregate for a new one.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"fmt"
	"io"
	"iter"

	"go.llib.dev/patterns/pkg/errorkit"
)

// ErrExhausted is returned by Next when the iterator has no more elements.
// Reaching it means the caller skipped HasNext.
const ErrExhausted errorkit.Error = "iterator is exhausted"

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
type Iterator[T any] interface {
	// HasNext reports whether Next has an element left to return.
	HasNext() bool
	// Next returns the next element and advances the iterator.
	// When HasNext is false, Next returns the zero value and ErrExhausted.
	Next() (T, error)
}

// Collect drains the iterator into a slice.
func Collect[T any](i Iterator[T]) []T {
	var vs []T
	for i.HasNext() {
		v, err := i.Next()
		if err != nil {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Seq adapts the iterator into an iter.Seq, so it can be used in a for range loop.
// The returned sequence is single use since it shares the iterator's cursor.
func Seq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.HasNext() {
			v, err := i.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// PrintAll writes every remaining element of the iterator to the writer, one per line.
func PrintAll[T any](w io.Writer, i Iterator[T]) error {
	for i.HasNext() {
		v, err := i.Next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
