package tfhe

import (
	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// CiphertextLv0 is a level-0 TLWE ciphertext (a, b) in T^n x T, decrypting
// to b - <a, s0>. A plaintext bit true encodes mu=+1/8 on the torus, false
// encodes mu=-1/8.
type CiphertextLv0 struct {
	A []ring.Torus
	B ring.Torus
}

// bitToMu encodes a boolean as the signed-eighth torus message used at both
// TLWE levels: true -> +1/8, false -> -1/8.
func bitToMu(b bool) ring.Torus {
	if b {
		return ring.FloatToTorus(1.0 / 8)
	}
	return ring.FloatToTorus(-1.0 / 8)
}

// EncryptTorus encrypts an arbitrary torus message mu under sk.
func EncryptTorus(params Parameters, sk SecretKey, mu ring.Torus, src sampling.Source) CiphertextLv0 {
	a := sampling.UniformTorusVector(src, params.DimLWE)
	e := sampling.ModularNormal(src, params.Alpha0)
	b := ring.Dot(a, sk.Vec0()) + mu + e
	return CiphertextLv0{A: a, B: b}
}

// EncryptBit encrypts a single bit under sk.
func EncryptBit(params Parameters, sk SecretKey, bit bool, src sampling.Source) CiphertextLv0 {
	return EncryptTorus(params, sk, bitToMu(bit), src)
}

// DecryptTorus returns b - <a, s0>, the noisy torus encoding of the
// plaintext.
func DecryptTorus(sk SecretKey, c CiphertextLv0) ring.Torus {
	return c.B - ring.Dot(c.A, sk.Vec0())
}

// DecryptBit decrypts to a boolean: true iff the signed interpretation of
// the recovered torus word is non-negative.
func DecryptBit(sk SecretKey, c CiphertextLv0) bool {
	return DecryptTorus(sk, c) < 1<<31
}

// ClearlyTrue is the canonical fixed ciphertext a=0, b=float_to_torus(1/8):
// it encodes the true bit without any randomness and is used as a fixed
// additive offset in gate composition.
func ClearlyTrue(params Parameters) CiphertextLv0 {
	return CiphertextLv0{
		A: make([]ring.Torus, params.DimLWE),
		B: ring.FloatToTorus(1.0 / 8),
	}
}

// Add returns the componentwise sum of two level-0 ciphertexts.
func (c CiphertextLv0) Add(o CiphertextLv0) CiphertextLv0 {
	return CiphertextLv0{A: ring.Add(c.A, o.A), B: c.B + o.B}
}

// Sub returns the componentwise difference c - o.
func (c CiphertextLv0) Sub(o CiphertextLv0) CiphertextLv0 {
	return CiphertextLv0{A: ring.Sub(c.A, o.A), B: c.B - o.B}
}

// Neg returns the componentwise semantic negation of c.
func (c CiphertextLv0) Neg() CiphertextLv0 {
	return CiphertextLv0{A: ring.Negate(c.A), B: ring.Neg(c.B)}
}
