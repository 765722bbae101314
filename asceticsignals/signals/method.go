package signals

import (
	"sync/atomic"
	"weak"
)

// Methods cannot have type parameters, so the bound-method adapters are free
// functions. method is a method expression, e.g. (*Counter).Add for a pointer
// receiver or Counter.Value for a value receiver.
//
// The strong adapters keep recv reachable for as long as the connection exists.
// The weak ones do not: once recv is collected the slot does nothing and
// disconnects itself at its next invocation. The connection id is published
// atomically, so a concurrent emission on a SyncSignalImp may run the slot before
// Connect returns; a dead slot seen that early stays until a later emission.

func ConnectMethod0[T any](s Signal0, recv *T, method func(*T)) ConnectionID {
	return s.Connect(func() {
		method(recv)
	})
}

// ConnectValueMethod0 connects a value-receiver method. The receiver is read
// through recv at every emission, so the slot sees later changes to *recv.
func ConnectValueMethod0[T any](s Signal0, recv *T, method func(T)) ConnectionID {
	return s.Connect(func() {
		method(*recv)
	})
}

func ConnectMethod[T, A any](s Signal[A], recv *T, method func(*T, A)) ConnectionID {
	return s.Connect(func(a A) {
		method(recv, a)
	})
}

func ConnectValueMethod[T, A any](s Signal[A], recv *T, method func(T, A)) ConnectionID {
	return s.Connect(func(a A) {
		method(*recv, a)
	})
}

func ConnectWeakMethod0[T any](s Signal0, recv *T, method func(*T)) ConnectionID {
	ref := weak.Make(recv)
	var id atomic.Uint64
	connected := s.Connect(func() {
		r := ref.Value()
		if r == nil {
			disconnectPublished(s, &id)
			return
		}
		method(r)
	})
	id.Store(uint64(connected))
	return connected
}

func ConnectWeakMethod[T, A any](s Signal[A], recv *T, method func(*T, A)) ConnectionID {
	ref := weak.Make(recv)
	var id atomic.Uint64
	connected := s.Connect(func(a A) {
		r := ref.Value()
		if r == nil {
			disconnectPublished(s, &id)
			return
		}
		method(r, a)
	})
	id.Store(uint64(connected))
	return connected
}

// disconnectPublished disconnects the id once Connect has returned it. Ids start
// at 1, so 0 means it has not been published yet.
func disconnectPublished(s interface{ Disconnect(ConnectionID) }, id *atomic.Uint64) {
	if v := id.Load(); v != 0 {
		s.Disconnect(ConnectionID(v))
	}
}
