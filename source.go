package wselect

// Source is an external producer of a sequence of items that may fail or
// permanently complete. Poll must never block: a source with no item ready
// returns a StateNotReady outcome and arranges, by whatever means the
// surrounding runtime provides, to be polled again later.
type Source[T any] interface {
	// Poll attempts to produce the next item.
	Poll() Poll[T]
}

// SourceFunc is a function type that implements Source.
type SourceFunc[T any] func() Poll[T]

// Poll calls the function.
func (f SourceFunc[T]) Poll() Poll[T] { return f() }

// Fuse wraps src so that it is never polled past termination: once src
// reports StateCompleted or StateFailed, every later poll returns
// StateCompleted without invoking src again. A failure is still delivered
// on the poll in which it occurs; fusing only covers what happens after.
func Fuse[T any](src Source[T]) Source[T] {
	return &fused[T]{src: src}
}

type fused[T any] struct {
	src  Source[T]
	done bool
}

func (f *fused[T]) Poll() Poll[T] {
	if f.done {
		return Completed[T]()
	}
	p := f.src.Poll()
	if p.State == StateCompleted || p.State == StateFailed {
		f.done = true
	}
	return p
}
