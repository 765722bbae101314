package signals

import (
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
)

// CompositeSignalImp connects to and emits through several signals at once.
type CompositeSignalImp[A any] struct {
	delegates []Signal[A]
}

func NewCompositeSignal[A any](delegates ...Signal[A]) *CompositeSignalImp[A] {
	return &CompositeSignalImp[A]{delegates: delegates}
}

// Connect connects slot to every delegate. Disposing the result disconnects it
// from all of them.
func (s *CompositeSignalImp[A]) Connect(slot Slot[A]) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		id := delegate.Connect(slot)
		disposables = append(disposables, disposable.NewDisposable(func() {
			delegate.Disconnect(id)
		}))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (s *CompositeSignalImp[A]) Emit(a A) {
	for _, delegate := range s.delegates {
		delegate.Emit(a)
	}
}
