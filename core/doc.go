// Package core defines the Vehicle Routing Problem (VRP) data model:
// the immutable Problem description (jobs, fleet, cost oracles,
// objective) plus the derived Tour/Route/Activity types that the rest
// of the engine reads and mutates.
//
// Problem is built once by the caller and shared read-only across every
// worker goroutine. Tour and Route are not thread-safe on their own —
// callers that mutate a Route concurrently with readers must take the
// lock discipline documented on solution.RouteContext instead; core
// itself only defines the shapes, not the concurrency contract.
//
// Naming mirrors spec terminology directly: Location is an opaque index
// into a distance/duration matrix, Place is where+how-long+when an
// activity happens, Activity is a scheduled visit to a Place, Job is one
// or more Places a customer needs visited (in order, for multi-stop
// jobs such as pickup-then-delivery), and Actor is a vehicle+driver
// pairing with a shift.
package core
