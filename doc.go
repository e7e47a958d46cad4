// Package wselect implements an adapter for merging the output of several
// possibly-asynchronous item sources with priority. The combined source
// produces items from any of the underlying sources as they become
// available, and the sources are polled according to fixed integer weights
// registered at build time.
//
// Key features:
//   - Generic over the item type; sources are hidden behind a one-method
//     poll interface
//   - Weighted round-robin interleaving: a source of weight w is owed w
//     items per lap, in append order
//   - Stalled or exhausted sources forfeit their window within the same
//     poll, so one call still makes progress whenever any source can
//   - No goroutines, locks, or internal timers; the caller drives
//     everything through Poll
//
// Basic usage:
//
//	s := wselect.NewBuilder[int]().
//		Append(wselect.FromSlice(1, 1), 1).
//		Append(wselect.FromSlice(2, 2, 2), 3).
//		Append(wselect.FromSlice(3, 3, 3, 3), 1).
//		Build()
//
//	for v, err := range s.All() {
//		if err != nil {
//			break
//		}
//		fmt.Println(v) // 1 2 2 2 3 1 3 3 3
//	}
//
// Polling model:
// Every poll returns one of four outcomes: an item, "not ready yet",
// permanent completion, or a failure. Failures are propagated verbatim on
// the poll in which they occur. A source reporting "not ready" is
// responsible for its own wake-up; the combined source keeps no wake state
// of its own and simply forwards the readiness signal. Sources built from
// channels (FromChan) use the channel itself as that handle.
//
// Implementation details:
// Each appended source occupies a contiguous window of one lap, sized by
// its weight, and a rotating cursor records how far into the current lap
// the combined source is. A poll walks the registered segments from the
// highest priority whose window could still matter, lets each produce at
// most one item, and advances the cursor past the windows of sources that
// produced nothing. Completion of the combined source is only reported
// once a walk that started from cursor 0 finds every source completed.
package wselect
