package signals

type Signal0Imp struct {
	slotTable[Slot0]
}

func NewSignal0(opts ...Option) *Signal0Imp {
	s := &Signal0Imp{}
	s.init(opts)
	return s
}

func (s *Signal0Imp) Connect(slot Slot0) ConnectionID {
	if slot == nil {
		panic("signals: nil slot")
	}
	return s.connect(slot)
}

func (s *Signal0Imp) ConnectSignal(other Emitter0) ConnectionID {
	return s.connect(other.Emit)
}

func (s *Signal0Imp) ConnectFunc(fn any) (ConnectionID, error) {
	v, err := callableWith(fn)
	if err != nil {
		return 0, err
	}
	return s.connect(func() {
		v.Call(nil)
	}), nil
}

func (s *Signal0Imp) Emit() {
	s.run(s.entries, invoke0)
}

func (s *Signal0Imp) TryEmit() error {
	return s.tryRun(s.entries, invoke0)
}

func (s *Signal0Imp) EmitAll() error {
	return s.runAll(s.entries, invoke0)
}

func invoke0(slot Slot0) {
	slot()
}
