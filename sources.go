package wselect

import (
	"iter"
	"slices"
)

// FromSeq returns an always-ready source producing the values of seq in
// order. The source reports StateCompleted once seq is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return &seqSource[T]{next: next, stop: stop}
}

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *seqSource[T]) Poll() Poll[T] {
	v, ok := s.next()
	if !ok {
		s.stop()
		return Completed[T]()
	}
	return Item(v)
}

// FromSlice returns an always-ready source producing the given items in
// order.
func FromSlice[T any](items ...T) Source[T] {
	return FromSeq(slices.Values(items))
}

// FromChan returns a source backed by a channel. Polling receives without
// blocking: a buffered value yields StateItem, a closed and drained channel
// yields StateCompleted, and an empty open channel yields StateNotReady.
// The channel itself is the wake-up handle; whoever sends on it knows when
// polling is worthwhile again.
func FromChan[T any](ch <-chan T) Source[T] {
	return SourceFunc[T](func() Poll[T] {
		select {
		case v, ok := <-ch:
			if !ok {
				return Completed[T]()
			}
			return Item(v)
		default:
			return NotReady[T]()
		}
	})
}
