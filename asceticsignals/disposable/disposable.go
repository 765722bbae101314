package disposable

import (
	"sync"
	"sync/atomic"
)

// DisposableImp is safe for concurrent use. Concurrent Dispose calls run the
// callback once; the others wait for it to finish.
type DisposableImp struct {
	callback func()
	once     sync.Once
	disposed atomic.Bool
}

// NewDisposable returns a Disposable that runs callback on the first Dispose call
// only.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	d.once.Do(func() {
		d.disposed.Store(true)
		if d.callback != nil {
			d.callback()
		}
	})
}

func (d *DisposableImp) Disposed() bool {
	return d.disposed.Load()
}

// CompositeDisposableImp is safe for concurrent use. Delegates are disposed
// outside the lock.
type CompositeDisposableImp struct {
	mu        sync.Mutex
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

// Add appends a delegate. Adding to an already disposed composite disposes the
// delegate immediately.
func (c *CompositeDisposableImp) Add(delegate Disposable) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		delegate.Dispose()
		return
	}
	c.delegates = append(c.delegates, delegate)
	c.mu.Unlock()
}

func (c *CompositeDisposableImp) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	delegates := c.delegates
	c.delegates = nil
	c.mu.Unlock()

	for _, delegate := range delegates {
		delegate.Dispose()
	}
}
