package costs

import "errors"

// Sentinel errors for the costs package, grouped at the top of the
// primary file per the teacher's convention (core/types.go, matrix/errors.go).
var (
	// ErrBadShape is returned when a ProfileMatrix is built with a
	// non-positive size.
	ErrBadShape = errors.New("costs: matrix size must be > 0")

	// ErrOutOfRange is returned when a location index falls outside a
	// ProfileMatrix's bounds.
	ErrOutOfRange = errors.New("costs: location index out of range")

	// ErrUnknownProfile is returned when MatrixTransportCost is asked
	// for a VehicleProfile it has no ProfileMatrix for.
	ErrUnknownProfile = errors.New("costs: unknown vehicle profile")

	// ErrDuplicateProfile is returned by NewMatrixTransportCost when two
	// ProfileMatrix entries are registered under the same profile name.
	ErrDuplicateProfile = errors.New("costs: duplicate vehicle profile")
)
