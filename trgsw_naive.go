package tfhe

import "github.com/go-tfhe/tfhe/ring"

// externalProductNaive recomputes the TRGSW-TRLWE external product with a
// different loop nesting than ExternalProduct: instead of treating each
// gadget level as one negacyclic polynomial multiplication (ExternalProduct
// and ring.Mul's approach), it walks the output ring position k, extracts
// the matrix's 2L constant coefficients at that position, and accumulates
// every decomposition level's contribution to every other output position
// with the sign negacyclic wraparound requires. It shares Decompose with
// the optimized path (both must agree on what a digit is), but nothing else:
// no call to ring.Mul, no digitsToTorus/intpolyScale. Used only in tests, to
// cross-check the optimized path's polynomial-multiplication shortcut
// against this position-by-position accumulation.
func externalProductNaive(params Parameters, m TRGSWMatrix, c TRLWE) TRLWE {
	n := params.RingN
	l := params.L
	aBar := Decompose(params, c.A)
	bBar := Decompose(params, c.B)

	aPrime := make([]ring.Torus, n)
	bPrime := make([]ring.Torus, n)

	for k := 0; k < n; k++ {
		// m0, m1 are the matrix's two columns' 2L constant coefficients at
		// output ring position k.
		m0 := make([]ring.Torus, 2*l)
		m1 := make([]ring.Torus, 2*l)
		for row := 0; row < 2*l; row++ {
			m0[row] = m.Rows[row].A[k]
			m1[row] = m.Rows[row].B[k]
		}

		for i := 0; i < n; i++ {
			var sa, sb ring.Torus
			for lvl := 0; lvl < l; lvl++ {
				av := digitToTorus(aBar[lvl][i])
				bv := digitToTorus(bBar[lvl][i])
				sa += m0[lvl]*av + m0[lvl+l]*bv
				sb += m1[lvl]*av + m1[lvl+l]*bv
			}
			pos := i + k
			if pos < n {
				aPrime[pos] += sa
				bPrime[pos] += sb
			} else {
				aPrime[pos-n] -= sa
				bPrime[pos-n] -= sb
			}
		}
	}

	return TRLWE{A: aPrime, B: bPrime}
}

// digitToTorus reinterprets a single signed gadget digit as an unsigned
// 32-bit torus word, the scalar analogue of digitsToTorus.
func digitToTorus(v int32) ring.Torus {
	if v < 0 {
		return ring.Neg(ring.Torus(-v))
	}
	return ring.Torus(v)
}
