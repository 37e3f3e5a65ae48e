package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEpsilonSchedule_NoEnd_IsConstant(t *testing.T) {
	s, err := NewEpsilonSchedule(0.1, nil, 50)
	require.NoError(t, err)

	assert.Equal(t, 50, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, 0.1, s.At(i))
	}
}

func TestNewEpsilonSchedule_Decay_LinearEndpoints(t *testing.T) {
	// GIVEN start=0.1, end=0.01 over 100 steps
	end := 0.01
	s, err := NewEpsilonSchedule(0.1, &end, 100)
	require.NoError(t, err)

	// THEN the endpoints are exact
	assert.Equal(t, 0.1, s.At(0))
	assert.Equal(t, 0.01, s.At(99))

	// THEN successive differences are constant
	step := (0.01 - 0.1) / 99
	for i := 1; i < s.Len(); i++ {
		assert.InDelta(t, step, s.At(i)-s.At(i-1), 1e-12, "step %d", i)
	}
	// THEN the schedule is monotonically non-increasing
	for i := 1; i < s.Len(); i++ {
		assert.LessOrEqual(t, s.At(i), s.At(i-1))
	}
}

func TestNewEpsilonSchedule_SingleStep_IsStart(t *testing.T) {
	end := 0.0
	s, err := NewEpsilonSchedule(0.5, &end, 1)
	require.NoError(t, err)
	assert.Equal(t, EpsilonSchedule{0.5}, s)
}

func TestNewEpsilonSchedule_Increasing(t *testing.T) {
	end := 1.0
	s, err := NewEpsilonSchedule(0, &end, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, []float64(s), 1e-12)
}

func TestNewEpsilonSchedule_Invalid(t *testing.T) {
	bad := 1.5
	nan := math.NaN()
	tests := []struct {
		name    string
		start   float64
		end     *float64
		n       int
		wantErr error
	}{
		{"zero steps", 0.1, nil, 0, ErrInvalidSteps},
		{"negative steps", 0.1, nil, -3, ErrInvalidSteps},
		{"start above one", 1.1, nil, 10, ErrInvalidEpsilon},
		{"negative start", -0.1, nil, 10, ErrInvalidEpsilon},
		{"end above one", 0.1, &bad, 10, ErrInvalidEpsilon},
		{"nan end", 0.1, &nan, 10, ErrInvalidEpsilon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEpsilonSchedule(tt.start, tt.end, tt.n)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
