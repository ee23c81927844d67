package core

// VehicleProfile selects which distance/duration matrix a TransportCost
// implementation should consult when computing duration(profile, from, to, departure).
type VehicleProfile string

// Costs holds the per-unit cost coefficients used by SoftRoute/SoftActivity
// estimation in the constraint pipeline.
type Costs struct {
	Fixed          float64 // one-time cost of using this vehicle at all
	PerDistance    float64
	PerTime        float64
	PerWaitingTime float64 // coefficient applied to the waiting-time delta at each activity
}

// VehicleLimits caps what a single actor shift may do: optional limits
// on max distance, shift time, tour size, and allowed areas.
// A zero value for MaxDistance/ShiftTime/TourSize means "no limit".
type VehicleLimits struct {
	MaxDistance  float64
	ShiftTime    float64
	TourSize     int
	AllowedAreas []string
}

// Vehicle is the equipment half of an Actor.
type Vehicle struct {
	ID       string
	Profile  VehicleProfile
	Capacity int
	Costs    Costs
	Limits   *VehicleLimits
}

// Driver is the human half of an Actor. The engine treats drivers as
// interchangeable labels today; ActivityCost implementations may still
// key behavior off Driver.ID (e.g. per-driver service-time adjustments).
type Driver struct {
	ID string
}

// ActorDetail carries the shift window and start/end depots for an Actor.
//
// The "optional start location" question is resolved as a
// configuration fault: StartLocation has no pointer/optional form here —
// NewActor returns ErrMissingStartLocation instead of letting a nil
// propagate into the timing module, where the original source panics.
type ActorDetail struct {
	StartLocation Location
	EndLocation   *Location // nil => open VRP (no end terminal)
	Time          TimeWindow
}

// Actor is a vehicle+driver pairing with a shift.
type Actor struct {
	Vehicle Vehicle
	Driver  Driver
	Detail  ActorDetail
}

// NewActor validates and constructs an Actor. It is the only supported
// way to obtain an Actor so that ErrMissingStartLocation /
// ErrInvalidShiftWindow are always caught at construction time rather
// than deep inside the timing module's forward pass.
//
// startLocation is a pointer so that a builder fed by an external parser
// can represent "no start location was supplied" without resorting to a
// sentinel Location value; nil is rejected with ErrMissingStartLocation.
func NewActor(vehicle Vehicle, driver Driver, startLocation *Location, endLocation *Location, shift TimeWindow) (*Actor, error) {
	if startLocation == nil {
		return nil, ErrMissingStartLocation
	}
	if shift.End < shift.Start {
		return nil, ErrInvalidShiftWindow
	}
	return &Actor{
		Vehicle: vehicle,
		Driver:  driver,
		Detail: ActorDetail{
			StartLocation: *startLocation,
			EndLocation:   endLocation,
			Time:          shift,
		},
	}, nil
}

// IsOpenVRP reports whether this actor's tour has no end terminal.
func (a *Actor) IsOpenVRP() bool {
	return a.Detail.EndLocation == nil
}

// EndOrStartLocation returns the actor's end location, falling back to
// its start location for an open VRP — used by the timing module's
// backward pass initialization.
func (a *Actor) EndOrStartLocation() Location {
	if a.Detail.EndLocation != nil {
		return *a.Detail.EndLocation
	}
	return a.Detail.StartLocation
}
