package tfhe

import (
	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// CiphertextLv1 is a level-1 TLWE ciphertext (a, b) in T^N x T, decrypting
// to b - <a, s1> with the plain (non-polynomial) dot product over the two
// length-N sequences.
type CiphertextLv1 struct {
	A []ring.Torus
	B ring.Torus
}

// EncryptTorus1 encrypts an arbitrary torus message mu under the level-1
// secret, for tests and diagnostics that need a level-1 ciphertext without
// going through gate bootstrapping.
func EncryptTorus1(params Parameters, sk SecretKey, mu ring.Torus, src sampling.Source) CiphertextLv1 {
	a := sampling.UniformTorusVector(src, params.RingN)
	e := sampling.ModularNormal(src, params.Alpha1)
	b := ring.Dot(a, sk.Poly1()) + mu + e
	return CiphertextLv1{A: a, B: b}
}

// EncryptBit1 encrypts a single bit under the level-1 secret.
func EncryptBit1(params Parameters, sk SecretKey, bit bool, src sampling.Source) CiphertextLv1 {
	return EncryptTorus1(params, sk, bitToMu(bit), src)
}

// DecryptTorus1 returns b - <a, s1>.
func DecryptTorus1(sk SecretKey, c CiphertextLv1) ring.Torus {
	return c.B - ring.Dot(c.A, sk.Poly1())
}

// DecryptBit1 decrypts to a boolean using the same rule as DecryptBit.
func DecryptBit1(sk SecretKey, c CiphertextLv1) bool {
	return DecryptTorus1(sk, c) < 1<<31
}

// Neg returns the componentwise semantic negation of c: the only ciphertext
// operator TLWE1 exposes, since gate composition at level 1 never needs
// more than negation before bootstrapping.
func (c CiphertextLv1) Neg() CiphertextLv1 {
	return CiphertextLv1{A: ring.Negate(c.A), B: ring.Neg(c.B)}
}
