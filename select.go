package wselect

import "iter"

// Select merges the output of several sources with priority. The combined
// source produces items from whichever underlying source is owed output
// next, according to the weights registered at build time: one lap of the
// rotating cursor grants each source a window of polls proportional to its
// weight, in append order. A source that is not ready, or already
// completed, silently forfeits the rest of its window to the next source
// in priority order within the same poll.
//
// Select is driven purely by external Poll calls and never blocks, spawns
// goroutines, or locks; it is not safe for concurrent use.
type Select[T any] struct {
	segments []segment[T]
	cursor   uint64
	limit    uint64
}

// Poll produces the next outcome of the combined source. Items from any
// single underlying source are delivered in that source's order, failures
// are propagated verbatim on the poll in which they occur, and once Poll
// reports StateCompleted every later call does too.
func (s *Select[T]) Poll() Poll[T] {
	cnt, res := s.walk(s.cursor)
	if (res.State == StateNotReady || res.State == StateCompleted) && s.cursor > 0 {
		// Nothing was ready for the rest of this lap; restart from the
		// highest-priority segment so one external poll covers the
		// remainder of the lap plus a fresh one.
		cnt, res = s.walk(0)
	}
	s.cursor = cnt % s.limit
	return res
}

// walk performs one pass over the segments starting at the given cursor
// position and returns the advanced cursor together with the outcome.
func (s *Select[T]) walk(cursor uint64) (uint64, Poll[T]) {
	n := len(s.segments)
	if n == 0 {
		return 0, Completed[T]()
	}

	// Skip segments whose window starts beyond the cursor; they are polled
	// on the way back up, once everything ranked before them had its turn.
	i := n - 1
	for i > 0 && cursor < s.segments[i].startAt {
		i--
	}

	// A cursor of exactly 0 at the floor of the walk means a full lap has
	// elapsed, so completions seen on the way up amount to genuine
	// exhaustion rather than a mid-lap resumption.
	exhausted := cursor == 0

	for ; i < n; i++ {
		p := s.segments[i].src.Poll()
		switch p.State {
		case StateItem, StateFailed:
			return cursor + 1, p
		case StateCompleted:
			// A completion observed mid-lap reads as not ready: the lap
			// must come back around to cursor 0 to confirm that nothing
			// ranked before this segment remains.
			cursor = s.segments[i].endAt
		default: // StateNotReady
			cursor = s.segments[i].endAt
			exhausted = false
		}
	}

	if exhausted {
		return cursor, Completed[T]()
	}
	return cursor, NotReady[T]()
}

// All drives the combined source as a Go iterator. It yields each produced
// item, yields the error once and stops if a source fails, and stops when
// the combined source completes. A StateNotReady outcome makes All poll
// again immediately, so it suits source sets that progress on re-poll —
// always-ready sources, or channels already holding everything they will
// carry — and busy-spins otherwise.
func (s *Select[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			p := s.Poll()
			switch p.State {
			case StateItem:
				if !yield(p.Value, nil) {
					return
				}
			case StateFailed:
				var zero T
				yield(zero, p.Err)
				return
			case StateCompleted:
				return
			}
		}
	}
}
