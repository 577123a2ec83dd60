package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/montanaflynn/stats"
)

func TestKeyedSourceDeterministic(t *testing.T) {
	s1 := NewKeyedSource([]byte("seed-a"))
	s2 := NewKeyedSource([]byte("seed-a"))

	for i := 0; i < 100; i++ {
		require.Equal(t, s1.Uint32(), s2.Uint32())
	}
}

func TestKeyedSourceDiffersBySeed(t *testing.T) {
	s1 := NewKeyedSource([]byte("seed-a"))
	s2 := NewKeyedSource([]byte("seed-b"))

	diff := false
	for i := 0; i < 16; i++ {
		if s1.Uint32() != s2.Uint32() {
			diff = true
		}
	}
	require.True(t, diff)
}

func TestUniformBitIsBalanced(t *testing.T) {
	src := NewKeyedSource([]byte("balance-check"))
	const trials = 4000
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		if UniformBit(src) {
			samples = append(samples, 1)
		} else {
			samples = append(samples, 0)
		}
	}
	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	require.InDelta(t, 0.5, mean, 0.05)
}

func TestModularNormalStaysNearZero(t *testing.T) {
	src := NewKeyedSource([]byte("gaussian-check"))
	const alpha = 1.0 / (1 << 15)
	for i := 0; i < 1000; i++ {
		word := ModularNormal(src, alpha)
		f := math.Abs(torusSignedFraction(word))
		require.Less(t, f, 8*alpha)
	}
}

// torusSignedFraction reinterprets a torus word as a signed fraction in
// [-0.5, 0.5), without importing the ring package's TorusToFloat twice in
// this small sanity check.
func torusSignedFraction(u uint32) float64 {
	if u >= 1<<31 {
		return float64(u)/4294967296.0 - 1
	}
	return float64(u) / 4294967296.0
}
