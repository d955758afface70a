package flatten

import "errors"

var (
	// ErrCyclicValue is returned when a value references itself through a
	// pointer or a map.
	ErrCyclicValue = errors.New("cyclic value")
	// ErrScalarRoot is returned when a bare scalar is flattened without a
	// prefix, leaving no name for the single entry.
	ErrScalarRoot = errors.New("scalar value requires a prefix")
	// ErrUnsupportedType is returned for kinds that have no textual form,
	// such as channels, functions and complex numbers.
	ErrUnsupportedType = errors.New("unsupported type")
)
