package tfhe

import (
	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// SecretKey is the pair (s0, s1): s0 is the length-DimLWE binary vector
// used for level-0 ciphertexts, s1 the length-RingN binary polynomial used
// for level-1/ring ciphertexts. It is sampled once at key creation and
// never mutated; every encryption, decryption, bootstrapping-key and
// key-switching-key construction below takes it by value.
type SecretKey struct {
	LV0 []bool
	LV1 []bool
}

// NewSecretKey samples a fresh uniformly random secret key pair.
func NewSecretKey(params Parameters, src sampling.Source) SecretKey {
	return SecretKey{
		LV0: sampling.UniformBitVector(src, params.DimLWE),
		LV1: sampling.UniformBitVector(src, params.RingN),
	}
}

// Poly1 returns s1 encoded as a torus polynomial with coefficients in
// {0, 1}, the representation every ring.Mul call against the level-1
// secret needs.
func (sk SecretKey) Poly1() []ring.Torus {
	out := make([]ring.Torus, len(sk.LV1))
	for i, b := range sk.LV1 {
		if b {
			out[i] = 1
		}
	}
	return out
}

// Vec0 returns s0 encoded as a torus vector with coordinates in {0, 1}, the
// representation ring.Dot needs for level-0 decryption.
func (sk SecretKey) Vec0() []ring.Torus {
	out := make([]ring.Torus, len(sk.LV0))
	for i, b := range sk.LV0 {
		if b {
			out[i] = 1
		}
	}
	return out
}
