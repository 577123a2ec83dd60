package tfhe

import (
	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// TRLWE is a ring ciphertext (a, b) in (T[X]/(X^N+1))^2 encrypting a
// polynomial message m, with b - a*s1 approximately equal to m
// coefficient-wise. Multiplication is the negacyclic ring.Mul.
type TRLWE struct {
	A []ring.Torus
	B []ring.Torus
}

// TRLWEEncryptTorus encrypts a torus polynomial message m under sk.
func TRLWEEncryptTorus(params Parameters, sk SecretKey, m []ring.Torus, src sampling.Source) TRLWE {
	a := sampling.UniformTorusVector(src, params.RingN)
	e := sampling.ModularNormalVector(src, params.Alpha1, params.RingN)
	b := ring.Add(ring.Add(ring.Mul(a, sk.Poly1()), m), e)
	return TRLWE{A: a, B: b}
}

// TRLWEEncryptBits encrypts a binary polynomial: each true coefficient
// normalises to +1/8, false to -1/8, before conversion to torus.
func TRLWEEncryptBits(params Parameters, sk SecretKey, bits []bool, src sampling.Source) TRLWE {
	m := make([]ring.Torus, len(bits))
	for i, b := range bits {
		m[i] = bitToMu(b)
	}
	return TRLWEEncryptTorus(params, sk, m, src)
}

// TRLWEDecryptTorus returns b - a*s1, the noisy torus encoding of m.
func TRLWEDecryptTorus(sk SecretKey, c TRLWE) []ring.Torus {
	return ring.Sub(c.B, ring.Mul(c.A, sk.Poly1()))
}

// TRLWEDecryptBits decodes each coefficient of TRLWEDecryptTorus to a
// boolean: true iff its signed interpretation is non-negative.
func TRLWEDecryptBits(sk SecretKey, c TRLWE) []bool {
	m := TRLWEDecryptTorus(sk, c)
	out := make([]bool, len(m))
	for i, w := range m {
		out[i] = w < 1<<31
	}
	return out
}

// TestVector builds the LUT used by the NAND gate: a TRLWE encryption of
// the constant +1/8 polynomial (every coefficient decrypts to true).
func TestVector(params Parameters, sk SecretKey, src sampling.Source) TRLWE {
	bits := make([]bool, params.RingN)
	for i := range bits {
		bits[i] = true
	}
	return TRLWEEncryptBits(params, sk, bits, src)
}

// SampleExtractIndex projects the k-th coefficient of a TRLWE plaintext out
// as a level-1 TLWE ciphertext. It panics if k >= N: a parameter-misuse
// invariant break, not a data-dependent error a caller could recover from.
func SampleExtractIndex(c TRLWE, k int) CiphertextLv1 {
	n := len(c.A)
	if k < 0 || k >= n {
		panic("tfhe: SampleExtractIndex: k out of range [0, N)")
	}
	extA := make([]ring.Torus, n)
	for i := 0; i <= k; i++ {
		extA[i] = c.A[k-i]
	}
	for i := k + 1; i < n; i++ {
		extA[i] = ring.Neg(c.A[n+k-i])
	}
	return CiphertextLv1{A: extA, B: c.B[k]}
}

// Add returns the componentwise sum of two TRLWE ciphertexts.
func (c TRLWE) Add(o TRLWE) TRLWE {
	return TRLWE{A: ring.Add(c.A, o.A), B: ring.Add(c.B, o.B)}
}

// Sub returns the componentwise difference c - o.
func (c TRLWE) Sub(o TRLWE) TRLWE {
	return TRLWE{A: ring.Sub(c.A, o.A), B: ring.Sub(c.B, o.B)}
}

// Neg returns the componentwise semantic negation of c.
func (c TRLWE) Neg() TRLWE {
	return TRLWE{A: ring.Negate(c.A), B: ring.Negate(c.B)}
}

// Rotate returns c with both A and B rotated by k, the TRLWE analogue of
// multiplying by X^k in the negacyclic ring.
func (c TRLWE) Rotate(k int) TRLWE {
	return TRLWE{A: ring.Rotate(c.A, k), B: ring.Rotate(c.B, k)}
}
