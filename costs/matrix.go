package costs

import "github.com/routeforge/vrpcore/core"

// ProfileMatrix holds one vehicle profile's pairwise distance and
// duration tables as flat, row-major slices — the same storage shape as
// the teacher's matrix.Dense, specialized to a fixed pair of float64
// planes instead of a generic single plane.
//
// Location values are used directly as row/column indices: callers are
// responsible for handing out dense, zero-based Location IDs (Location
// is an opaque index into an externally built matrix).
type ProfileMatrix struct {
	size      int
	distances []float64 // flat size*size, meters (or any consistent unit)
	durations []float64 // flat size*size, same time unit as TimeWindow
}

// NewProfileMatrix allocates a size×size ProfileMatrix with all
// distances/durations initialized to zero. Populate it via Set before
// handing it to NewMatrixTransportCost.
func NewProfileMatrix(size int) (*ProfileMatrix, error) {
	if size <= 0 {
		return nil, ErrBadShape
	}
	return &ProfileMatrix{
		size:      size,
		distances: make([]float64, size*size),
		durations: make([]float64, size*size),
	}, nil
}

func (m *ProfileMatrix) index(from, to core.Location) (int, error) {
	f, t := int(from), int(to)
	if f < 0 || f >= m.size || t < 0 || t >= m.size {
		return 0, ErrOutOfRange
	}
	return f*m.size + t, nil
}

// Set records the distance and duration from one location to another.
// VRP distance matrices are not generally symmetric (one-way streets,
// time-dependent duration), so Set(from, to, ...) does not imply
// Set(to, from, ...).
func (m *ProfileMatrix) Set(from, to core.Location, distance, duration float64) error {
	idx, err := m.index(from, to)
	if err != nil {
		return err
	}
	m.distances[idx] = distance
	m.durations[idx] = duration
	return nil
}

// Distance returns the raw distance from -> to, or 0 if out of range.
// Out-of-range reads return zero rather than erroring: the hot-path
// Duration/Cost methods on MatrixTransportCost are called millions of
// times per refinement run and must not allocate or branch on error.
func (m *ProfileMatrix) Distance(from, to core.Location) float64 {
	idx, err := m.index(from, to)
	if err != nil {
		return 0
	}
	return m.distances[idx]
}

// Duration returns the raw duration from -> to, or 0 if out of range.
func (m *ProfileMatrix) Duration(from, to core.Location) float64 {
	idx, err := m.index(from, to)
	if err != nil {
		return 0
	}
	return m.durations[idx]
}

// Size returns the matrix's dimension (number of distinct locations it covers).
func (m *ProfileMatrix) Size() int {
	return m.size
}
