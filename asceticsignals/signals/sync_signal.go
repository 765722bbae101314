package signals

import (
	"sync"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/identity"
)

// SyncSignalImp is a SignalImp guarded by a mutex, safe for concurrent use.
//
// Emission takes a snapshot under the read lock and invokes slots without holding
// it, so slots may connect and disconnect on the same signal. A slot removed by one
// goroutine may still be invoked by an emission already in flight on another.
type SyncSignalImp[A any] struct {
	mu    sync.RWMutex
	inner SignalImp[A]
}

func NewSyncSignal[A any](opts ...Option) *SyncSignalImp[A] {
	s := &SyncSignalImp[A]{}
	s.inner.init(opts)
	return s
}

func (s *SyncSignalImp[A]) ID() identity.ID {
	return s.inner.ID()
}

func (s *SyncSignalImp[A]) Name() string {
	return s.inner.Name()
}

func (s *SyncSignalImp[A]) Connect(slot Slot[A]) ConnectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Connect(slot)
}

func (s *SyncSignalImp[A]) ConnectSignal(other Emitter[A]) ConnectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ConnectSignal(other)
}

func (s *SyncSignalImp[A]) ConnectFunc(fn any) (ConnectionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ConnectFunc(fn)
}

func (s *SyncSignalImp[A]) Disconnect(id ConnectionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Disconnect(id)
}

func (s *SyncSignalImp[A]) Disposer(id ConnectionID) disposable.Disposable {
	return disposable.NewDisposable(func() {
		s.Disconnect(id)
	})
}

func (s *SyncSignalImp[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

func (s *SyncSignalImp[A]) Connected(id ConnectionID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Connected(id)
}

func (s *SyncSignalImp[A]) Emit(a A) {
	s.inner.run(s.snapshot(), func(slot Slot[A]) { slot(a) })
}

func (s *SyncSignalImp[A]) TryEmit(a A) error {
	return s.inner.tryRun(s.snapshot(), func(slot Slot[A]) { slot(a) })
}

func (s *SyncSignalImp[A]) EmitAll(a A) error {
	return s.inner.runAll(s.snapshot(), func(slot Slot[A]) { slot(a) })
}

func (s *SyncSignalImp[A]) snapshot() []entry[Slot[A]] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.entries
}
