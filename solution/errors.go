package solution

import "errors"

// Sentinel errors for the solution package.
var (
	// ErrStateKeyCollision is returned by StateRegistry.RegisterExplicit
	// when two constraint modules request the same key with different names —
	// rejected at pipeline-build time, never at runtime.
	ErrStateKeyCollision = errors.New("solution: state key collision")

	// ErrUnknownRoute is returned when SolutionContext is asked to look
	// up a RouteContext for an Actor it does not currently hold a route for.
	ErrUnknownRoute = errors.New("solution: unknown route")
)
