package signals

import "reflect"

type Signal3Imp[A, B, C any] struct {
	slotTable[Slot3[A, B, C]]
}

func NewSignal3[A, B, C any](opts ...Option) *Signal3Imp[A, B, C] {
	s := &Signal3Imp[A, B, C]{}
	s.init(opts)
	return s
}

func (s *Signal3Imp[A, B, C]) Connect(slot Slot3[A, B, C]) ConnectionID {
	if slot == nil {
		panic("signals: nil slot")
	}
	return s.connect(slot)
}

func (s *Signal3Imp[A, B, C]) ConnectSignal(other Emitter3[A, B, C]) ConnectionID {
	return s.connect(other.Emit)
}

func (s *Signal3Imp[A, B, C]) ConnectFunc(fn any) (ConnectionID, error) {
	v, err := callableWith(fn, reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
	if err != nil {
		return 0, err
	}
	return s.connect(func(a A, b B, c C) {
		v.Call([]reflect.Value{valueOf(&a), valueOf(&b), valueOf(&c)})
	}), nil
}

func (s *Signal3Imp[A, B, C]) Emit(a A, b B, c C) {
	s.run(s.entries, func(slot Slot3[A, B, C]) { slot(a, b, c) })
}

func (s *Signal3Imp[A, B, C]) TryEmit(a A, b B, c C) error {
	return s.tryRun(s.entries, func(slot Slot3[A, B, C]) { slot(a, b, c) })
}

func (s *Signal3Imp[A, B, C]) EmitAll(a A, b B, c C) error {
	return s.runAll(s.entries, func(slot Slot3[A, B, C]) { slot(a, b, c) })
}
