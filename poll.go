package wselect

// State classifies the outcome of a single poll.
type State uint8

const (
	// StateNotReady means no item is available yet. The polled source is
	// responsible for arranging its own wake-up before it is polled again.
	// It is the zero value, so an empty Poll reports that nothing happened.
	StateNotReady State = iota
	// StateItem means Value holds the next produced item.
	StateItem
	// StateCompleted means the source will never produce another item.
	StateCompleted
	// StateFailed means Err holds a failure reported by the source.
	StateFailed
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateNotReady:
		return "NotReady"
	case StateItem:
		return "Item"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Poll is the four-way outcome of polling a source once.
type Poll[T any] struct {
	State State
	Value T     // set only when State is StateItem
	Err   error // set only when State is StateFailed
}

// Item returns an outcome carrying the next produced value.
func Item[T any](v T) Poll[T] { return Poll[T]{State: StateItem, Value: v} }

// NotReady returns an outcome reporting that no item is available yet.
func NotReady[T any]() Poll[T] { return Poll[T]{State: StateNotReady} }

// Completed returns an outcome reporting permanent completion.
func Completed[T any]() Poll[T] { return Poll[T]{State: StateCompleted} }

// Failure returns an outcome carrying a failure from the source.
func Failure[T any](err error) Poll[T] { return Poll[T]{State: StateFailed, Err: err} }
