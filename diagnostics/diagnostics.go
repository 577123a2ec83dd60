// Package diagnostics estimates and measures the noise budget of TLWE/TRLWE
// ciphertexts: the theoretical failure probability implied by a Parameters
// set's noise standard deviations, and the empirical noise distribution
// recovered from a batch of decrypted samples.
package diagnostics

import (
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/montanaflynn/stats"
	"golang.org/x/exp/slices"

	"github.com/go-tfhe/tfhe/ring"
)

// precisionBits is the big.Float mantissa precision used for the erfc
// tail estimate; the inputs here never need more than a few dozen
// significant bits; the headroom is for bigfloat.Exp's internal error.
const precisionBits = 128

// FailureProbability estimates P(decryption fails) for a ciphertext family
// with noise standard deviation alpha, assuming messages are encoded with
// a decision margin of 1/8 on the torus: decryption fails when the sampled
// noise exceeds that margin in absolute value. It uses the Abramowitz-Stegun
// rational approximation to erfc, with the exponential term evaluated via
// bigfloat.Exp. The result is returned as a float64, so a probability
// below the smallest positive float64 (as for the default Alpha0 and
// Alpha1) comes back as 0.
func FailureProbability(alpha float64) float64 {
	margin := 1.0 / 8.0
	x := margin / (alpha * 1.4142135623730951) // margin / (alpha*sqrt(2))
	return erfc(x)
}

// erfc evaluates the complementary error function at x >= 0 using the
// Abramowitz & Stegun 7.1.26 rational approximation, with the exponential
// term computed at extended precision.
func erfc(x float64) float64 {
	if x < 0 {
		return 2 - erfc(-x)
	}

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	t := 1.0 / (1.0 + p*x)
	poly := t * (a1 + t*(a2+t*(a3+t*(a4+t*a5))))

	bx := new(big.Float).SetPrec(precisionBits).SetFloat64(-x * x)
	expTerm := bigfloat.Exp(bx)
	expVal, _ := expTerm.Float64()

	return poly * expVal
}

// NoiseSamples converts a batch of decrypted torus words, measured against
// a known plaintext bit, into their signed floating-point noise residual
// TorusToFloat(decoded[i]) - (+1/8 or -1/8, per plaintext[i]), which lies
// in [-0.625, 0.625).
func NoiseSamples(decoded []ring.Torus, plaintext []bool) []float64 {
	out := make([]float64, len(decoded))
	for i, word := range decoded {
		mu := -1.0 / 8.0
		if plaintext[i] {
			mu = 1.0 / 8.0
		}
		out[i] = ring.TorusToFloat(word) - mu
	}
	return out
}

// Summary reports the empirical noise distribution of a sample batch.
type Summary struct {
	Mean    float64
	StdDev  float64
	P99Abs  float64
	MaxAbs  float64
	Samples int
}

// Measure computes a Summary from noise residuals produced by NoiseSamples.
func Measure(samples []float64) (Summary, error) {
	data := stats.Float64Data(samples)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}

	abs := make([]float64, len(samples))
	for i, v := range samples {
		if v < 0 {
			abs[i] = -v
		} else {
			abs[i] = v
		}
	}
	slices.Sort(abs)

	p99, err := stats.Percentile(stats.Float64Data(abs), 99)
	if err != nil {
		return Summary{}, err
	}

	maxAbs := 0.0
	if len(abs) > 0 {
		maxAbs = abs[len(abs)-1]
	}

	return Summary{
		Mean:    mean,
		StdDev:  stddev,
		P99Abs:  p99,
		MaxAbs:  maxAbs,
		Samples: len(samples),
	}, nil
}
