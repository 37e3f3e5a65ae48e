package sim

import "fmt"

// EpsilonSchedule holds the epsilon used at each step of a play.
type EpsilonSchedule []float64

// NewEpsilonSchedule builds an n-step schedule that interpolates linearly from
// start to *end. A nil end yields a constant schedule at start.
// The first entry is exactly start and, for n > 1, the last is exactly *end.
func NewEpsilonSchedule(start float64, end *float64, n int) (EpsilonSchedule, error) {
	if n <= 0 {
		return nil, fmt.Errorf("epsilon schedule with n=%d: %w", n, ErrInvalidSteps)
	}
	if err := validateEpsilon(start); err != nil {
		return nil, fmt.Errorf("start epsilon: %w", err)
	}
	stop := start
	if end != nil {
		if err := validateEpsilon(*end); err != nil {
			return nil, fmt.Errorf("end epsilon: %w", err)
		}
		stop = *end
	}

	s := make(EpsilonSchedule, n)
	if n == 1 {
		s[0] = start
		return s, nil
	}
	delta := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		s[i] = start + float64(i)*delta
	}
	s[n-1] = stop
	return s, nil
}

// At returns epsilon for step t.
func (s EpsilonSchedule) At(t int) float64 {
	return s[t]
}

// Len returns the number of steps the schedule covers.
func (s EpsilonSchedule) Len() int {
	return len(s)
}

func validateEpsilon(e float64) error {
	// NaN fails both comparisons, so it is rejected too
	if !(e >= 0 && e <= 1) {
		return fmt.Errorf("%v: %w", e, ErrInvalidEpsilon)
	}
	return nil
}
