package internal

import "github.com/pkg/errors"

// The geometry functions are written as plain math, and most of them have no
// failure mode at all. Rather than give every one of them an error return for
// the few that do, internals panic with an error, and the public API recovers
// to convert it back.

// Returned (wrapped) when the inputs do not determine the requested object,
// e.g. two identical points do not determine a line.
var ErrGeometry = errors.New("geometry error")

// Panic with an error wrapping ErrGeometry.
func fatalf(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrGeometry, format, args...))
}

// Convert a recovered value into an error. Only errors wrapping ErrGeometry are
// converted. Anything else, runtime errors included, is a real bug, so it is
// re-panicked.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && errors.Is(err, ErrGeometry) {
			return err
		}
		panic(r)
	}
	return nil
}
