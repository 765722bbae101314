package signals

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotCallable = errors.New("signals: slot is not callable with the signal arguments")

// SlotPanic reports a panic recovered from a slot by TryEmit or EmitAll.
type SlotPanic struct {
	Signal     string
	Connection ConnectionID
	Value      any
}

func (p *SlotPanic) Error() string {
	return fmt.Sprintf("signals: slot %d of %s panicked: %v", p.Connection, p.Signal, p.Value)
}

// Unwrap returns the panic value when it is an error.
func (p *SlotPanic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}
