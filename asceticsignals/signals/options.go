package signals

import "log/slog"

type options struct {
	name     string
	logger   *slog.Logger
	recorder Recorder
}

type Option func(*options)

// WithName sets the name used in log records, metric labels and SlotPanic errors.
// Unnamed signals are named after their slot type and identity.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Signals log connects, disconnects and emissions at
// debug level and recovered slot panics at warn level. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	return o
}
