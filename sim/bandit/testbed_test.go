package bandit

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func gaussianConfig() Config {
	return Config{Kind: KindGaussian, Arms: 10}
}

func float64Ptr(v float64) *float64 { return &v }

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gaussian ok", gaussianConfig(), false},
		{"bernoulli ok", Config{Kind: KindBernoulli, Arms: 3}, false},
		{"constant ok", Config{Kind: KindConstant, Arms: 2, Values: []float64{0, 1}}, false},
		{"unknown kind", Config{Kind: "poisson", Arms: 3}, true},
		{"zero arms", Config{Kind: KindGaussian, Arms: 0}, true},
		{"negative reward std dev", Config{Kind: KindGaussian, Arms: 3, RewardStdDev: float64Ptr(-1)}, true},
		{"negative mean std dev", Config{Kind: KindGaussian, Arms: 3, MeanStdDev: float64Ptr(-0.5)}, true},
		{"explicit zero std dev", Config{Kind: KindGaussian, Arms: 3, MeanStdDev: float64Ptr(0)}, false},
		{"constant length mismatch", Config{Kind: KindConstant, Arms: 3, Values: []float64{1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind("gaussian"))
	assert.True(t, IsValidKind("constant"))
	assert.False(t, IsValidKind("Gaussian"))
	assert.False(t, IsValidKind(""))
}

func TestTestbed_Step_OutOfRange_ReturnsErrInvalidAction(t *testing.T) {
	tb, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, a := range []int{-1, 10, 100} {
		_, err := tb.Step(a)
		assert.True(t, errors.Is(err, ErrInvalidAction), "action %d: got %v", a, err)
	}
}

func TestTestbed_Gaussian_RewardMeanMatchesArmMean(t *testing.T) {
	// GIVEN a gaussian testbed
	tb, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	means := tb.Means()

	// WHEN one arm is pulled many times
	rewards := make([]float64, 20000)
	for i := range rewards {
		res, err := tb.Step(2)
		require.NoError(t, err)
		rewards[i] = res.Reward
	}

	// THEN the sample mean and std dev match the arm's distribution
	assert.InDelta(t, means[2], stat.Mean(rewards, nil), 0.05)
	assert.InDelta(t, 1.0, stat.StdDev(rewards, nil), 0.05)
}

func TestConfig_UnsetStdDevs_DefaultToOne(t *testing.T) {
	cfg := gaussianConfig()
	assert.Equal(t, DefaultStdDev, cfg.MeanSpread())
	assert.Equal(t, DefaultStdDev, cfg.RewardNoise())

	cfg.MeanStdDev = float64Ptr(2.5)
	cfg.RewardStdDev = float64Ptr(0)
	assert.Equal(t, 2.5, cfg.MeanSpread())
	assert.Equal(t, 0.0, cfg.RewardNoise())
}

func TestTestbed_Gaussian_UnsetStdDevs_ArmsAreSpread(t *testing.T) {
	// GIVEN a gaussian config naming only kind and arms
	tb, err := NewTestbed(Config{Kind: KindGaussian, Arms: 10}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	// WHEN arm means are drawn
	means := tb.Means()

	// THEN they are spread around 0 rather than all zero
	assert.Greater(t, stat.StdDev(means, nil), 0.2)
	res, err := tb.Step(0)
	require.NoError(t, err)
	assert.NotEqual(t, means[0], res.Reward, "reward noise should be on by default")
}

func TestTestbed_Gaussian_ExplicitZeroStdDevs_IsFlat(t *testing.T) {
	cfg := Config{Kind: KindGaussian, Arms: 4, MeanStdDev: float64Ptr(0), RewardStdDev: float64Ptr(0)}
	tb, err := NewTestbed(cfg, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 0}, tb.Means())
}

func TestTestbed_Reset_RedrawsArms(t *testing.T) {
	tb, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	before := tb.Means()

	require.NoError(t, tb.Reset())

	assert.NotEqual(t, before, tb.Means())
}

func TestTestbed_SameSeed_SameArms(t *testing.T) {
	a, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, a.Means(), b.Means())
}

func TestTestbed_Constant_IsDeterministic(t *testing.T) {
	cfg := Config{Kind: KindConstant, Arms: 4, Values: []float64{0, 0, 0, 5}}
	tb, err := NewTestbed(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		res, err := tb.Step(3)
		require.NoError(t, err)
		assert.Equal(t, 5.0, res.Reward)
	}
	assert.Equal(t, 3, tb.OptimalAction())

	// Reset keeps the fixed values
	require.NoError(t, tb.Reset())
	assert.Equal(t, []float64{0, 0, 0, 5}, tb.Means())
}

func TestTestbed_Bernoulli_RewardsAreBinary(t *testing.T) {
	tb, err := NewTestbed(Config{Kind: KindBernoulli, Arms: 5}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		res, err := tb.Step(i % 5)
		require.NoError(t, err)
		if res.Reward != 0 && res.Reward != 1 {
			t.Fatalf("step %d: reward %v not in {0, 1}", i, res.Reward)
		}
	}
	for _, p := range tb.Means() {
		assert.True(t, p >= 0 && p <= 1, "probability %v out of range", p)
	}
}

func TestTestbed_OptimalAction_IsArgmaxOfMeans(t *testing.T) {
	tb, err := NewTestbed(gaussianConfig(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	means := tb.Means()
	best := tb.OptimalAction()
	for a, m := range means {
		assert.LessOrEqual(t, m, means[best], "arm %d beats optimal arm %d", a, best)
	}
}

func TestGaussianArm_ZeroStdDev_ReturnsMean(t *testing.T) {
	arm := &GaussianArm{mean: 1.25}
	assert.Equal(t, 1.25, arm.Sample(rand.New(rand.NewSource(1))))
}

func TestClampProbability(t *testing.T) {
	assert.Equal(t, 0.0, clampProbability(-0.5))
	assert.Equal(t, 1.0, clampProbability(1.5))
	assert.Equal(t, 0.3, clampProbability(0.3))
}
