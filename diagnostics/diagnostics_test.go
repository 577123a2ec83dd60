package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailureProbabilityDecreasesWithAlpha(t *testing.T) {
	pSmall := FailureProbability(1.0 / (1 << 15))
	pLarge := FailureProbability(1.0 / (1 << 10))

	require.Less(t, pSmall, pLarge)
	require.Greater(t, pSmall, 0.0)
	require.Less(t, pLarge, 1.0)
}

func TestFailureProbabilityMonotone(t *testing.T) {
	prev := 0.0
	for shift := 20; shift >= 10; shift-- {
		alpha := 1.0 / float64(int64(1)<<uint(shift))
		p := FailureProbability(alpha)
		require.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestMeasureReportsStatsOfSyntheticSamples(t *testing.T) {
	samples := []float64{0.001, -0.002, 0.0015, -0.0005, 0.003}

	summary, err := Measure(samples)
	require.NoError(t, err)
	require.Equal(t, len(samples), summary.Samples)
	require.InDelta(t, 0.0, summary.Mean, 0.01)
	require.Greater(t, summary.P99Abs, 0.0)
	require.GreaterOrEqual(t, summary.MaxAbs, summary.P99Abs)
}

func TestNoiseSamplesRecoversZeroForExactEncoding(t *testing.T) {
	decoded := make([]uint32, 4)
	plaintext := []bool{true, false, true, false}
	for i, bit := range plaintext {
		if bit {
			decoded[i] = 1 << 29 // float_to_torus(1/8)
		} else {
			decoded[i] = 1<<32 - 1<<29 // float_to_torus(-1/8)
		}
	}

	noise := NoiseSamples(decoded, plaintext)
	for _, n := range noise {
		require.InDelta(t, 0.0, n, 1e-6)
	}
}
