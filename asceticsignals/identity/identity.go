package identity

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// ID is a numeric identity. The first ID handed out for a tag is 1.
type ID uint64

// counters maps a tag reflect.Type to its *atomic.Uint64.
var counters sync.Map

// Identity is an embeddable identity tagged by T. Every distinct T owns its own
// process-wide counter, so Identity[A] and Identity[B] allocate independently.
type Identity[T any] struct {
	id ID
}

// New allocates the next identity for tag T.
func New[T any]() Identity[T] {
	return Identity[T]{id: next(reflect.TypeFor[T]())}
}

// ID returns the identity assigned at construction.
func (i Identity[T]) ID() ID {
	return i.id
}

func next(tag reflect.Type) ID {
	c, ok := counters.Load(tag)
	if !ok {
		c, _ = counters.LoadOrStore(tag, new(atomic.Uint64))
	}
	return ID(c.(*atomic.Uint64).Add(1))
}

// Sequence is a counter owned by a single value, e.g. connection identifiers of one
// signal. It is not safe for concurrent use.
type Sequence struct {
	last uint64
}

// Next pre-increments the sequence and returns the new value.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Last returns the most recently issued value, or 0 if none.
func (s *Sequence) Last() uint64 {
	return s.last
}
