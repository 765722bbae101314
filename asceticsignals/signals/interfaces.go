package signals

// ConnectionID identifies one slot within one signal. IDs start at 1 and are never
// reused by the signal that issued them.
type ConnectionID uint64

type Slot0 func()

type Slot[A any] func(A)

type Slot2[A, B any] func(A, B)

type Slot3[A, B, C any] func(A, B, C)

// Emitter0 and its siblings are the relay targets accepted by ConnectSignal.
type Emitter0 interface {
	Emit()
}

type Emitter[A any] interface {
	Emit(A)
}

type Emitter2[A, B any] interface {
	Emit(A, B)
}

type Emitter3[A, B, C any] interface {
	Emit(A, B, C)
}

type Signal0 interface {
	Emitter0
	Connect(slot Slot0) ConnectionID
	ConnectSignal(other Emitter0) ConnectionID
	Disconnect(id ConnectionID)
}

type Signal[A any] interface {
	Emitter[A]
	Connect(slot Slot[A]) ConnectionID
	ConnectSignal(other Emitter[A]) ConnectionID
	Disconnect(id ConnectionID)
}

type Signal2[A, B any] interface {
	Emitter2[A, B]
	Connect(slot Slot2[A, B]) ConnectionID
	ConnectSignal(other Emitter2[A, B]) ConnectionID
	Disconnect(id ConnectionID)
}

type Signal3[A, B, C any] interface {
	Emitter3[A, B, C]
	Connect(slot Slot3[A, B, C]) ConnectionID
	ConnectSignal(other Emitter3[A, B, C]) ConnectionID
	Disconnect(id ConnectionID)
}

// Recorder receives metrics hooks for signal operations. Implementations must be
// safe for concurrent use when shared between signals used from several goroutines.
type Recorder interface {
	RecordConnected(signal string)
	RecordDisconnected(signal string)
	RecordEmitted(signal string, slots int)
	RecordSlotPanicked(signal string)
}

type nopRecorder struct{}

func (nopRecorder) RecordConnected(signal string)          {}
func (nopRecorder) RecordDisconnected(signal string)       {}
func (nopRecorder) RecordEmitted(signal string, slots int) {}
func (nopRecorder) RecordSlotPanicked(signal string)       {}
