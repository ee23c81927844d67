package ruin

import "errors"

var (
	// ErrEmptyGroups is returned by NewCompositeRuin when called with no groups.
	ErrEmptyGroups = errors.New("ruin: composite ruin needs at least one group")
	// ErrEmptyOperators is returned when a CompositeRuin group has no sub-operators.
	ErrEmptyOperators = errors.New("ruin: group needs at least one sub-operator")
)
