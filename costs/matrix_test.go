package costs_test

import (
	"testing"

	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/costs"
	"github.com/stretchr/testify/require"
)

func TestNewProfileMatrix(t *testing.T) {
	_, err := costs.NewProfileMatrix(0)
	require.ErrorIs(t, err, costs.ErrBadShape)

	m, err := costs.NewProfileMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
}

func TestProfileMatrix_SetAndRead(t *testing.T) {
	m, err := costs.NewProfileMatrix(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 100, 10))
	require.Equal(t, 100.0, m.Distance(0, 1))
	require.Equal(t, 10.0, m.Duration(0, 1))

	// asymmetric by default: the reverse direction was never set.
	require.Equal(t, 0.0, m.Distance(1, 0))
}

func TestProfileMatrix_OutOfRange(t *testing.T) {
	m, err := costs.NewProfileMatrix(2)
	require.NoError(t, err)

	err = m.Set(5, 0, 1, 1)
	require.ErrorIs(t, err, costs.ErrOutOfRange)

	// out-of-range reads return zero rather than erroring.
	require.Equal(t, 0.0, m.Distance(core.Location(5), core.Location(0)))
}
