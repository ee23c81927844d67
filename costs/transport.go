package costs

import "github.com/routeforge/vrpcore/core"

// MatrixTransportCost is a core.TransportCost backed by one ProfileMatrix
// per core.VehicleProfile. Duration is time-independent (the matrix
// value is returned as-is regardless of departure); monetary Cost is
// derived from the raw distance/duration pair and the calling vehicle's
// Costs coefficients.
type MatrixTransportCost struct {
	profiles map[core.VehicleProfile]*ProfileMatrix
}

// NewMatrixTransportCost builds a MatrixTransportCost from a profile ->
// matrix map. It rejects nil matrices and duplicate profile keys up
// front so misconfiguration fails at solver construction, not mid-search.
func NewMatrixTransportCost(profiles map[core.VehicleProfile]*ProfileMatrix) (*MatrixTransportCost, error) {
	out := make(map[core.VehicleProfile]*ProfileMatrix, len(profiles))
	for profile, m := range profiles {
		if m == nil {
			return nil, ErrBadShape
		}
		if _, dup := out[profile]; dup {
			return nil, ErrDuplicateProfile
		}
		out[profile] = m
	}
	return &MatrixTransportCost{profiles: out}, nil
}

// Duration implements core.TransportCost. departure is accepted for
// interface compatibility with time-dependent routing but unused here;
// a time-dependent implementation would index a third (time-bucket)
// dimension instead.
func (tc *MatrixTransportCost) Duration(profile core.VehicleProfile, from, to core.Location, _ float64) float64 {
	m, ok := tc.profiles[profile]
	if !ok {
		return 0
	}
	return m.Duration(from, to)
}

// Distance implements core.TransportCost, returning the raw matrix
// distance used by actor-limit checks (constraint.ActorLimitsModule)
// independent of any per-vehicle cost coefficient.
func (tc *MatrixTransportCost) Distance(profile core.VehicleProfile, from, to core.Location, _ float64) float64 {
	m, ok := tc.profiles[profile]
	if !ok {
		return 0
	}
	return m.Distance(from, to)
}

// Cost implements core.TransportCost: raw distance/duration scaled by
// the vehicle's per-distance/per-time coefficients.
func (tc *MatrixTransportCost) Cost(vehicle *core.Vehicle, _ *core.Driver, from, to core.Location, _ float64) float64 {
	m, ok := tc.profiles[vehicle.Profile]
	if !ok {
		return 0
	}
	return m.Distance(from, to)*vehicle.Costs.PerDistance + m.Duration(from, to)*vehicle.Costs.PerTime
}
