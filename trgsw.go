package tfhe

import (
	"fmt"

	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

// TRGSWMatrix is a 2L x 2 grid of ring polynomials, represented as 2L TRLWE
// ciphertexts: Rows[i].A and Rows[i].B are the matrix's two columns at row
// i. Every row is itself a valid TRLWE ciphertext (of a gadget-scaled
// message plus a fresh encryption of zero).
type TRGSWMatrix struct {
	Rows []TRLWE
}

// Decompose applies the signed base-Bg decomposition to a torus polynomial,
// returning L signed-digit polynomials ordered most-significant first. Each
// digit is asserted to lie within [SignMin, SignMax]; a violation is a
// fatal invariant break, not a data-dependent error.
func Decompose(params Parameters, p []ring.Torus) [][]int32 {
	l := params.L
	bg := uint64(params.Bg)
	shift := 32 - uint(params.BgBit)*uint(l)
	signMin, signMax := params.SignMin(), params.SignMax()

	out := make([][]int32, l)
	for i := range out {
		out[i] = make([]int32, len(p))
	}

	for n, word := range p {
		a := uint64(word) >> shift
		var carry uint64
		for lvl := 0; lvl < l; lvl++ {
			r := a%bg + carry
			var s int32
			if r >= bg/2 {
				s = int32(r) - int32(bg)
				carry = 1
			} else {
				s = int32(r)
				carry = 0
			}
			if s < signMin || s > signMax {
				panic(fmt.Sprintf("tfhe: Decompose: digit %d out of range [%d, %d]", s, signMin, signMax))
			}
			out[l-lvl-1][n] = s
			a /= bg
		}
	}
	return out
}

// digitsToTorus reinterprets a signed-digit polynomial as a torus
// polynomial: a negative digit v becomes ring.Neg(Torus(-v)), i.e. the
// signed byte reinterpreted as unsigned 32-bit, exactly as the external
// product formula requires.
func digitsToTorus(digits []int32) []ring.Torus {
	out := make([]ring.Torus, len(digits))
	for i, v := range digits {
		if v < 0 {
			out[i] = ring.Neg(ring.Torus(-v))
		} else {
			out[i] = ring.Torus(v)
		}
	}
	return out
}

// intpolyScale produces the polynomial whose k-th coefficient is the torus
// word w*|mu[k]|, negated iff mu[k] < 0.
func intpolyScale(mu []int32, w ring.Torus) []ring.Torus {
	out := make([]ring.Torus, len(mu))
	for i, v := range mu {
		var mag ring.Torus
		if v < 0 {
			mag = ring.Torus(-v)
		} else {
			mag = ring.Torus(v)
		}
		base := w * mag
		if v < 0 {
			out[i] = ring.Neg(base)
		} else {
			out[i] = base
		}
	}
	return out
}

// ZeroMatrix builds a TRGSW zero matrix: 2L independent TRLWE encryptions
// of the zero polynomial.
func ZeroMatrix(params Parameters, sk SecretKey, src sampling.Source) TRGSWMatrix {
	zero := make([]ring.Torus, params.RingN)
	rows := make([]TRLWE, 2*params.L)
	for i := range rows {
		rows[i] = TRLWEEncryptTorus(params, sk, zero, src)
	}
	return TRGSWMatrix{Rows: rows}
}

// GadgetEncrypt encrypts an integer polynomial mu, with coefficients in
// [-Bg/2, Bg/2-1], as a TRGSW matrix: for i<L, row i carries mu scaled by
// the i-th gadget weight in its A column; for i in [L,2L), row i carries it
// in its B column. A fresh zero matrix is added on top so every row
// decrypts as a valid TRLWE ciphertext.
func GadgetEncrypt(params Parameters, sk SecretKey, mu []int32, src sampling.Source) TRGSWMatrix {
	l := params.L
	zero := ZeroMatrix(params, sk, src)
	zeroPoly := make([]ring.Torus, params.RingN)

	rows := make([]TRLWE, 2*l)
	for i := 0; i < l; i++ {
		w := ring.Torus(1) << (32 - uint(params.BgBit)*uint(i+1))
		scaled := intpolyScale(mu, w)
		rows[i] = TRLWE{A: scaled, B: zeroPoly}.Add(zero.Rows[i])
		rows[i+l] = TRLWE{A: zeroPoly, B: scaled}.Add(zero.Rows[i+l])
	}
	return TRGSWMatrix{Rows: rows}
}

// Coefficient wraps the single-integer message m into mu=(m,0,...,0) and
// gadget-encrypts it. Bootstrapping-key entries are Coefficient(s0[j]) for
// j in [0,n).
func Coefficient(params Parameters, sk SecretKey, m int32, src sampling.Source) TRGSWMatrix {
	mu := make([]int32, params.RingN)
	mu[0] = m
	return GadgetEncrypt(params, sk, mu, src)
}

// ExternalProduct computes the TRGSW-TRLWE external product: it decomposes
// c, then combines the decomposition against M's gadget rows. The result
// decrypts to mu*m, where mu is the polynomial M encrypts and m the
// polynomial c encrypts.
func ExternalProduct(params Parameters, m TRGSWMatrix, c TRLWE) TRLWE {
	l := params.L
	aBar := Decompose(params, c.A)
	bBar := Decompose(params, c.B)

	aPrime := make([]ring.Torus, params.RingN)
	bPrime := make([]ring.Torus, params.RingN)

	for i := 0; i < l; i++ {
		ai := digitsToTorus(aBar[i])
		bi := digitsToTorus(bBar[i])

		aPrime = ring.Add(aPrime, ring.Add(ring.Mul(ai, m.Rows[i].A), ring.Mul(bi, m.Rows[i+l].A)))
		bPrime = ring.Add(bPrime, ring.Add(ring.Mul(ai, m.Rows[i].B), ring.Mul(bi, m.Rows[i+l].B)))
	}

	return TRLWE{A: aPrime, B: bPrime}
}

// CMUX obliviously selects between c0 and c1 according to the bit M
// encrypts. By convention, if M encrypts 1 the result decrypts to c0's
// plaintext; if M encrypts 0, to c1's.
func CMUX(params Parameters, m TRGSWMatrix, c0, c1 TRLWE) TRLWE {
	return ExternalProduct(params, m, c0.Sub(c1)).Add(c1)
}
