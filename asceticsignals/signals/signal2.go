package signals

import "reflect"

type Signal2Imp[A, B any] struct {
	slotTable[Slot2[A, B]]
}

func NewSignal2[A, B any](opts ...Option) *Signal2Imp[A, B] {
	s := &Signal2Imp[A, B]{}
	s.init(opts)
	return s
}

func (s *Signal2Imp[A, B]) Connect(slot Slot2[A, B]) ConnectionID {
	if slot == nil {
		panic("signals: nil slot")
	}
	return s.connect(slot)
}

func (s *Signal2Imp[A, B]) ConnectSignal(other Emitter2[A, B]) ConnectionID {
	return s.connect(other.Emit)
}

func (s *Signal2Imp[A, B]) ConnectFunc(fn any) (ConnectionID, error) {
	v, err := callableWith(fn, reflect.TypeFor[A](), reflect.TypeFor[B]())
	if err != nil {
		return 0, err
	}
	return s.connect(func(a A, b B) {
		v.Call([]reflect.Value{valueOf(&a), valueOf(&b)})
	}), nil
}

func (s *Signal2Imp[A, B]) Emit(a A, b B) {
	s.run(s.entries, func(slot Slot2[A, B]) { slot(a, b) })
}

func (s *Signal2Imp[A, B]) TryEmit(a A, b B) error {
	return s.tryRun(s.entries, func(slot Slot2[A, B]) { slot(a, b) })
}

func (s *Signal2Imp[A, B]) EmitAll(a A, b B) error {
	return s.runAll(s.entries, func(slot Slot2[A, B]) { slot(a, b) })
}
