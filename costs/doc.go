// Package costs provides the concrete, matrix-backed cost oracles that
// satisfy core.TransportCost and core.ActivityCost.
//
// A ProfileMatrix holds one vehicle profile's pairwise distance and
// duration tables, flat row-major like the teacher's matrix.Dense.
// MatrixTransportCost looks up one ProfileMatrix per core.VehicleProfile
// and turns the raw distance/duration pair into a per-vehicle monetary
// cost using that vehicle's Costs coefficients. FixedActivityCost
// answers activity duration/cost from the Place's own service-time
// field, scaled by the vehicle's PerTime coefficient.
//
// Building the matrices themselves (geocoding, OSRM/graphhopper calls,
// haversine approximation) is out of scope for this package —
// callers populate a ProfileMatrix however they like and hand it to
// NewMatrixTransportCost.
package costs
