package tfhe

import (
	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// BootstrappingKey is the sequence of n TRGSW encryptions, under the
// level-1 secret, of each individual bit of the level-0 secret:
// BK[j] gadget-encrypts s0[j] in {0, 1}. BlindRotate consumes it one entry
// at a time, so its only external operation is indexed lookup.
type BootstrappingKey struct {
	Entries []TRGSWMatrix
}

// NewBootstrappingKey builds BK from a level-0/level-1 key pair: entry j is
// Coefficient(sk1, s0[j]) for j in [0, DimLWE).
func NewBootstrappingKey(params Parameters, sk SecretKey, src sampling.Source) BootstrappingKey {
	entries := make([]TRGSWMatrix, params.DimLWE)
	for j, bit := range sk.LV0 {
		var m int32
		if bit {
			m = 1
		}
		entries[j] = Coefficient(params, sk, m, src)
	}
	return BootstrappingKey{Entries: entries}
}

// torusToIndex rounds a torus word to the nearest multiple of 1/(2N) and
// returns that multiple as an integer in [0, 2N). Used for the aⱼ terms of
// blind rotation, which round to nearest by construction.
func torusToIndex(t ring.Torus, doubleN int) int {
	// round(t / 2^32 * doubleN) computed without float rounding error: add
	// half a unit (2^31 worth, scaled) before the integer division.
	num := uint64(t)*uint64(doubleN) + (uint64(1) << 31)
	return int(num>>32) % doubleN
}

// torusToIndexFloor truncates a torus word to a multiple of 1/(2N), keeping
// only its top ringNBit+1 bits with no rounding. Used for the b term of
// blind rotation, which floors rather than rounds.
func torusToIndexFloor(t ring.Torus, ringNBit int) int {
	return int(t >> uint(31-ringNBit))
}

// BlindRotate homomorphically rotates the test vector tv by the phase that
// ct's level-0 plaintext encodes, so that the constant coefficient of the
// result decrypts (at level 1) to the same bit ct decrypts to at level 0.
// It is the blind-rotation core of gate bootstrapping: an accumulator
// seeded by the public offset of ct.B, refined by one CMUX per bit of ct.A
// against the corresponding bootstrapping-key entry.
func BlindRotate(params Parameters, bk BootstrappingKey, tv TRLWE, ct CiphertextLv0) TRLWE {
	doubleN := 2 * params.RingN
	bBar := torusToIndexFloor(ct.B, params.RingNBit)

	acc := tv.Rotate((doubleN - bBar) % doubleN)
	for j, aj := range ct.A {
		aBar := torusToIndex(aj, doubleN)
		if aBar == 0 {
			continue
		}
		rotated := acc.Rotate(aBar)
		acc = CMUX(params, bk.Entries[j], rotated, acc)
	}
	return acc
}

// GateBootstrap runs blind rotation against the fixed NAND test vector and
// sample-extracts the constant coefficient, producing a level-1 ciphertext
// whose noise no longer depends on the homomorphic computation that
// produced ct - it depends only on the bootstrapping key. Because the test
// vector's every coefficient already encodes the same +1/8 message, the
// negacyclic sign flip blind rotation introduces for a rotation past N
// reproduces the -1/8 encoding directly; no further shift is applied.
func GateBootstrap(params Parameters, bk BootstrappingKey, tv TRLWE, ct CiphertextLv0) CiphertextLv1 {
	rotated := BlindRotate(params, bk, tv, ct)
	return SampleExtractIndex(rotated, 0)
}
