package wselect

// segment is one registered source together with its priority weight and
// its window within a single lap of the rotating cursor.
type segment[T any] struct {
	src     Source[T]
	weight  int
	startAt uint64 // cumulative weight of all segments appended before this one
	endAt   uint64 // startAt + weight; exclusive end of the window
}

// Builder accumulates weighted sources for a combined source. Sources
// appended earlier rank higher in priority within each lap. The zero
// Builder is ready to use.
type Builder[T any] struct {
	segments []segment[T]
	total    uint64
	built    bool
}

// NewBuilder returns an empty builder for sources producing items of type T.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Append registers src with the given priority weight and returns the
// receiver for chaining. The source is fused, so the combined source never
// polls it past termination. Append panics when weight < 1 or when the
// builder was already built; both indicate a caller bug, not a runtime
// condition.
func (b *Builder[T]) Append(src Source[T], weight int) *Builder[T] {
	if b.built {
		panic("wselect: Append called after Build")
	}
	if weight < 1 {
		panic("wselect: weight must be positive")
	}

	start := b.total
	b.total += uint64(weight)
	b.segments = append(b.segments, segment[T]{
		src:     Fuse(src),
		weight:  weight,
		startAt: start,
		endAt:   b.total,
	})
	return b
}

// Build finalizes the builder into a combined source. The cycle length is
// fixed as the sum of all appended weights, and the builder is spent: any
// later Append or Build panics.
func (b *Builder[T]) Build() *Select[T] {
	if b.built {
		panic("wselect: Build called twice")
	}
	b.built = true

	limit := b.total
	if limit == 0 {
		limit = 1 // avoid taking a remainder with a divisor of zero
	}
	s := &Select[T]{segments: b.segments, limit: limit}
	b.segments = nil
	return s
}
