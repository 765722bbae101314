package signals

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSignal_ConnectEmitDisconnect(t *testing.T) {
	s := NewSyncSignal[sampleEvent](WithName("sync"))
	var calls []int
	s.Connect(func(e sampleEvent) { calls = append(calls, 1) })
	id := s.Connect(func(e sampleEvent) { calls = append(calls, 2) })
	s.Emit(sampleEvent{1})
	s.Disconnect(id)
	s.Emit(sampleEvent{1})
	assert.Equal(t, []int{1, 2, 1}, calls)
	assert.False(t, s.Connected(id))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "sync", s.Name())
}

func TestSyncSignal_ConcurrentUse(t *testing.T) {
	s := NewSyncSignal[int]()
	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				id := s.Connect(func(v int) { total.Add(int64(v)) })
				s.Emit(1)
				if i%2 == 0 {
					s.Disconnect(id)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, s.Len())
	assert.Positive(t, total.Load())
}

func TestSyncSignal_SlotMayReenter(t *testing.T) {
	s := NewSyncSignal[int]()
	var id ConnectionID
	id = s.Connect(func(v int) { s.Disconnect(id) })
	s.Emit(1) // must not deadlock
	assert.Equal(t, 0, s.Len())
}

func TestSyncSignal_WeakMethod(t *testing.T) {
	s := NewSyncSignal[sampleEvent]()
	c := &counter{}
	ConnectWeakMethod(s, c, (*counter).Add)
	s.Emit(sampleEvent{2})
	assert.Equal(t, 2, c.total)
}

func TestSyncSignal_EmissionPolicies(t *testing.T) {
	s := NewSyncSignal[int]()
	callCount := 0
	s.Connect(func(v int) { panic("boom") })
	s.Connect(func(v int) { callCount++ })

	assert.Panics(t, func() { s.Emit(1) })
	assert.Error(t, s.TryEmit(1))
	assert.Equal(t, 0, callCount)
	assert.Error(t, s.EmitAll(1))
	assert.Equal(t, 1, callCount)
}

func TestSyncSignal_ConnectFuncAndDisposer(t *testing.T) {
	s := NewSyncSignal[int]()
	got := 0
	id, err := s.ConnectFunc(func(v int) { got = v })
	require.NoError(t, err)
	s.Emit(3)
	s.Disposer(id).Dispose()
	s.Emit(4)
	assert.Equal(t, 3, got)

	_, err = s.ConnectFunc("nope")
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestSyncSignal_RelayFromPlainSignal(t *testing.T) {
	a := NewSignal[int]()
	b := NewSyncSignal[int]()
	got := 0
	b.Connect(func(v int) { got = v })
	a.ConnectSignal(b)
	a.Emit(8)
	assert.Equal(t, 8, got)
}

func TestSyncSignal_WeakConnectDuringConcurrentEmission(t *testing.T) {
	s := NewSyncSignal[sampleEvent]()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					s.Emit(sampleEvent{1})
				}
			}
		}()
	}
	for range 100 {
		connectCollectableSync(s)
		runtime.GC()
	}
	close(stop)
	wg.Wait()

	runtime.GC()
	runtime.GC()
	s.Emit(sampleEvent{1})
	assert.Equal(t, 0, s.Len())
}

func connectCollectableSync(s *SyncSignalImp[sampleEvent]) ConnectionID {
	c := &counter{label: "collectable"}
	return ConnectWeakMethod(s, c, (*counter).Add)
}

type disconnectLog struct {
	ids []ConnectionID
}

func (l *disconnectLog) Disconnect(id ConnectionID) {
	l.ids = append(l.ids, id)
}

func TestDisconnectPublished(t *testing.T) {
	t.Run("unpublished id is not disconnected", func(t *testing.T) {
		l := &disconnectLog{}
		var id atomic.Uint64
		disconnectPublished(l, &id)
		assert.Empty(t, l.ids)
	})

	t.Run("published id is disconnected", func(t *testing.T) {
		l := &disconnectLog{}
		var id atomic.Uint64
		id.Store(7)
		disconnectPublished(l, &id)
		assert.Equal(t, []ConnectionID{7}, l.ids)
	})
}

func TestSyncSignal_ConcurrentDisposeOfOneHandle(t *testing.T) {
	s := NewSyncSignal[int]()
	d := s.Disposer(s.Connect(func(int) {}))
	s.Connect(func(int) {})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, s.Len())
}
