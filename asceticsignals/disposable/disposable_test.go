package disposable

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_DisposeRunsCallback(t *testing.T) {
	callCount := 0
	d := NewDisposable(func() { callCount++ })
	d.Dispose()
	assert.Equal(t, 1, callCount)
	assert.True(t, d.Disposed())
}

func TestDisposable_DisposeIsIdempotent(t *testing.T) {
	callCount := 0
	d := NewDisposable(func() { callCount++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, callCount)
}

func TestDisposable_NilCallback(t *testing.T) {
	d := NewDisposable(nil)
	d.Dispose() // should not panic
	assert.True(t, d.Disposed())
}

func TestCompositeDisposable_DisposesAllDelegatesInOrder(t *testing.T) {
	var order []int
	c := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
	)
	c.Add(NewDisposable(func() { order = append(order, 3) }))
	c.Dispose()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCompositeDisposable_DisposeIsIdempotent(t *testing.T) {
	callCount := 0
	c := NewCompositeDisposable(NewDisposable(func() { callCount++ }))
	c.Dispose()
	c.Dispose()
	assert.Equal(t, 1, callCount)
}

func TestCompositeDisposable_AddAfterDisposeDisposesImmediately(t *testing.T) {
	c := NewCompositeDisposable()
	c.Dispose()
	called := false
	c.Add(NewDisposable(func() { called = true }))
	assert.True(t, called)
}

func TestDisposable_ConcurrentDisposeRunsCallbackOnce(t *testing.T) {
	var callCount atomic.Int32
	d := NewDisposable(func() { callCount.Add(1) })
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
			assert.True(t, d.Disposed())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), callCount.Load())
}

func TestCompositeDisposable_ConcurrentDisposeDisposesDelegatesOnce(t *testing.T) {
	var callCount atomic.Int32
	c := NewCompositeDisposable(
		NewDisposable(func() { callCount.Add(1) }),
		NewDisposable(func() { callCount.Add(1) }),
	)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(2), callCount.Load())
}
