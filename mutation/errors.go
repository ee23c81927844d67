package mutation

import "errors"

// ErrEmptyWeights is returned by NewCompositeLocalOperator when every
// operator's weight is zero or negative.
var ErrEmptyWeights = errors.New("mutation: composite local operator needs at least one positive weight")
