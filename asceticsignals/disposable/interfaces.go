package disposable

// Disposable releases whatever it was handed out for, e.g. a signal connection.
type Disposable interface {
	Dispose()
}
