package sim

import "errors"

var (
	// ErrInvalidSteps is returned when a play or schedule is asked for a
	// non-positive number of steps.
	ErrInvalidSteps = errors.New("step count must be positive")

	// ErrInvalidEpsilon is returned for epsilon values outside [0, 1].
	ErrInvalidEpsilon = errors.New("epsilon must be in [0, 1]")

	// ErrNoActions is returned when an environment reports fewer than one action.
	ErrNoActions = errors.New("environment has no actions")
)
