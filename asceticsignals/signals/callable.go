package signals

import (
	"reflect"

	"github.com/pkg/errors"
)

// callableWith checks that fn is a non-variadic function taking exactly the given
// argument types (or types they are assignable to). Results, if any, are ignored
// by the caller.
func callableWith(fn any, args ...reflect.Type) (reflect.Value, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, errors.Wrapf(ErrNotCallable, "%T is not a function", fn)
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return reflect.Value{}, errors.Wrapf(ErrNotCallable, "%v is variadic", ft)
	}
	if ft.NumIn() != len(args) {
		return reflect.Value{}, errors.Wrapf(ErrNotCallable, "%v takes %d arguments, signal emits %d", ft, ft.NumIn(), len(args))
	}
	for i, arg := range args {
		if !arg.AssignableTo(ft.In(i)) {
			return reflect.Value{}, errors.Wrapf(ErrNotCallable, "argument %d: %v is not assignable to %v", i, arg, ft.In(i))
		}
	}
	return v, nil
}

// valueOf keeps the static type of a, so nil interface arguments still carry a
// usable reflect.Value.
func valueOf[A any](a *A) reflect.Value {
	return reflect.ValueOf(a).Elem()
}
