package costs

import "github.com/routeforge/vrpcore/core"

// FixedActivityCost is a core.ActivityCost where service duration is a
// fixed property of the Place being served (Place.Duration) and
// independent of arrival time. Monetary cost is that duration scaled by
// the serving vehicle's PerTime coefficient, matching the teacher's
// "cost derives from duration" pattern used throughout the timing module.
type FixedActivityCost struct{}

// NewFixedActivityCost constructs the default activity cost oracle.
func NewFixedActivityCost() FixedActivityCost {
	return FixedActivityCost{}
}

// Duration implements core.ActivityCost. Terminal activities (start/end)
// carry no service time.
func (FixedActivityCost) Duration(_ *core.Vehicle, _ *core.Driver, activity *core.Activity, _ float64) float64 {
	if activity.IsTerminal() {
		return 0
	}
	return activity.Place.Duration
}

// Cost implements core.ActivityCost.
func (FixedActivityCost) Cost(vehicle *core.Vehicle, _ *core.Driver, activity *core.Activity, arrival float64) float64 {
	if activity.IsTerminal() {
		return 0
	}
	return activity.Place.Duration * vehicle.Costs.PerTime
}
