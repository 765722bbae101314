package signals

import "reflect"

type SignalImp[A any] struct {
	slotTable[Slot[A]]
}

func NewSignal[A any](opts ...Option) *SignalImp[A] {
	s := &SignalImp[A]{}
	s.init(opts)
	return s
}

// Connect stores slot and returns its connection id. Plain functions and method
// values such as obj.Handle connect directly.
func (s *SignalImp[A]) Connect(slot Slot[A]) ConnectionID {
	if slot == nil {
		panic("signals: nil slot")
	}
	return s.connect(slot)
}

// ConnectSignal relays every emission of s to other. The relay slot calls
// other.Emit whichever emission policy s uses.
func (s *SignalImp[A]) ConnectSignal(other Emitter[A]) ConnectionID {
	return s.connect(other.Emit)
}

// ConnectFunc connects an arbitrary function value checked at runtime. It must take
// one parameter that A is assignable to; its results are discarded.
func (s *SignalImp[A]) ConnectFunc(fn any) (ConnectionID, error) {
	v, err := callableWith(fn, reflect.TypeFor[A]())
	if err != nil {
		return 0, err
	}
	return s.connect(func(a A) {
		v.Call([]reflect.Value{valueOf(&a)})
	}), nil
}

// Emit invokes every connected slot in registration order. A panic in a slot
// propagates immediately and the remaining slots are not invoked.
func (s *SignalImp[A]) Emit(a A) {
	s.run(s.entries, func(slot Slot[A]) { slot(a) })
}

// TryEmit is Emit with the first slot panic returned as a *SlotPanic.
//
// Relays call Emit on their target, so a panic in a relayed signal's slot stops
// that signal's emission and is reported against the relay's connection on s.
func (s *SignalImp[A]) TryEmit(a A) error {
	return s.tryRun(s.entries, func(slot Slot[A]) { slot(a) })
}

// EmitAll invokes every slot even when some panic; the panics are returned as a
// *multierror.Error of *SlotPanic.
//
// The policy does not reach relayed signals: a relay calls Emit on its target,
// so the target stops at its first panicking slot and the resulting SlotPanic
// names the relay's connection on s.
func (s *SignalImp[A]) EmitAll(a A) error {
	return s.runAll(s.entries, func(slot Slot[A]) { slot(a) })
}
