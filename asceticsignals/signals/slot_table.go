package signals

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/identity"
)

// noCopy marks a struct that must not be copied after first use; see go vet
// copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type entry[F any] struct {
	id   ConnectionID
	slot F
}

// slotTable is the storage shared by every signal arity. F is the canonical slot
// type; every connection form is converted to it before it is stored.
//
// entries is kept sorted by id, which is also registration order. Removal
// replaces the slice instead of shifting it in place, so a slice taken at the
// start of an emission stays valid while slots connect and disconnect.
type slotTable[F any] struct {
	noCopy noCopy
	identity.Identity[F]

	entries  []entry[F]
	sequence identity.Sequence
	name     string
	logger   *slog.Logger
	recorder Recorder
}

func (t *slotTable[F]) init(opts []Option) {
	o := newOptions(opts)
	t.Identity = identity.New[F]()
	t.name = o.name
	if t.name == "" {
		t.name = fmt.Sprintf("%v#%d", reflect.TypeFor[F](), t.ID())
	}
	t.logger = o.logger
	t.recorder = o.recorder
}

// Name returns the signal name.
func (t *slotTable[F]) Name() string {
	return t.name
}

// Len returns the number of connected slots.
func (t *slotTable[F]) Len() int {
	return len(t.entries)
}

// Connected reports whether id is currently connected.
func (t *slotTable[F]) Connected(id ConnectionID) bool {
	_, found := t.find(id)
	return found
}

// Disconnect removes the slot connected under id. Unknown or already removed ids
// are ignored.
func (t *slotTable[F]) Disconnect(id ConnectionID) {
	i, found := t.find(id)
	if !found {
		return
	}
	entries := make([]entry[F], 0, len(t.entries)-1)
	entries = append(entries, t.entries[:i]...)
	t.entries = append(entries, t.entries[i+1:]...)
	t.logger.Debug("slot disconnected", "signal", t.name, "connection", id)
	t.recorder.RecordDisconnected(t.name)
}

// Disposer returns a Disposable that disconnects id.
func (t *slotTable[F]) Disposer(id ConnectionID) disposable.Disposable {
	return disposable.NewDisposable(func() {
		t.Disconnect(id)
	})
}

func (t *slotTable[F]) connect(slot F) ConnectionID {
	id := ConnectionID(t.sequence.Next())
	t.entries = append(t.entries, entry[F]{id: id, slot: slot})
	t.logger.Debug("slot connected", "signal", t.name, "connection", id)
	t.recorder.RecordConnected(t.name)
	return id
}

func (t *slotTable[F]) find(id ConnectionID) (int, bool) {
	return slices.BinarySearchFunc(t.entries, id, func(e entry[F], id ConnectionID) int {
		return cmp.Compare(e.id, id)
	})
}

func (t *slotTable[F]) started(entries []entry[F]) {
	t.logger.Debug("emitting signal", "signal", t.name, "slots", len(entries))
	t.recorder.RecordEmitted(t.name, len(entries))
}

// run invokes every entry in order. A panicking slot aborts the emission and the
// panic reaches the caller untouched.
func (t *slotTable[F]) run(entries []entry[F], invoke func(F)) {
	t.started(entries)
	for _, e := range entries {
		invoke(e.slot)
	}
}

// tryRun is run with the first panic recovered into a *SlotPanic.
func (t *slotTable[F]) tryRun(entries []entry[F], invoke func(F)) error {
	t.started(entries)
	for _, e := range entries {
		if err := t.guard(e, invoke); err != nil {
			return err
		}
	}
	return nil
}

// runAll invokes every entry regardless of panics and merges them.
func (t *slotTable[F]) runAll(entries []entry[F], invoke func(F)) error {
	t.started(entries)
	var result *multierror.Error
	for _, e := range entries {
		if err := t.guard(e, invoke); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (t *slotTable[F]) guard(e entry[F], invoke func(F)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("slot panicked", "signal", t.name, "connection", e.id, "panic", r)
			t.recorder.RecordSlotPanicked(t.name)
			err = errors.WithStack(&SlotPanic{Signal: t.name, Connection: e.id, Value: r})
		}
	}()
	invoke(e.slot)
	return nil
}
