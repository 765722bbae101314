// Package signals is a synchronous, in-process signal/slot registry.
//
// A signal holds slots and invokes all of them, in registration order, on the
// emitting goroutine. There is one signal type per arity: Signal0Imp, SignalImp[A],
// Signal2Imp[A, B] and Signal3Imp[A, B, C]. They differ only in how they invoke
// their slots.
//
// Every kind of connection becomes the signal's canonical slot type when it is
// connected:
//
//	s := signals.NewSignal[int]()
//	s.Connect(func(v int) { ... })                  // function or closure
//	s.Connect(counter.Add)                          // method value
//	signals.ConnectMethod(s, counter, (*Counter).Add) // receiver + method expression
//	s.ConnectSignal(other)                          // relay to another emitter
//	s.ConnectFunc(anyFunc)                          // checked at runtime
//
// Connect returns a ConnectionID, which Disconnect takes. Disconnecting an unknown
// id does nothing.
//
// Emit lets slot panics through. TryEmit recovers the first one and EmitAll keeps
// going and collects all of them. Both apply only to the signal's own slots: a
// relay calls Emit on its target.
//
// Signals are not safe for concurrent use. Use SyncSignalImp, or lock around the
// whole signal.
package signals
