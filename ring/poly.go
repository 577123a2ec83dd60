package ring

// mulBlockSize is the column-blocking width used by the cache-blocked
// schoolbook variant below. Chosen to keep a block's row of partial sums
// resident in L1 for N=1024.
const mulBlockSize = 64

// mulBlockedThreshold is the smallest ring degree for which blocking the
// inner loop pays for itself; below it the block bookkeeping costs more
// than the locality it buys.
const mulBlockedThreshold = 256

// Mul computes the negacyclic product p*q in Z[X]/(X^N+1): the coefficient
// of X^(i+j) contributes with sign +1 if i+j < N, else with sign -1 at
// position i+j-N. p, q and the result all have length N.
//
// Mul picks between two schoolbook orderings that always agree bit-for-bit;
// which one runs is a cache-locality choice, never a semantic one.
func Mul(p, q []Torus) []Torus {
	if len(p) >= mulBlockedThreshold {
		return mulBlocked(p, q)
	}
	return mulSchoolbook(p, q)
}

// mulSchoolbook is the O(N^2) reference negacyclic convolution.
func mulSchoolbook(p, q []Torus) []Torus {
	n := len(p)
	out := make([]Torus, n)
	for i := 0; i < n; i++ {
		pi := p[i]
		if pi == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k < n {
				out[k] += pi * q[j]
			} else {
				out[k-n] -= pi * q[j]
			}
		}
	}
	return out
}

// mulBlocked computes the same product, blocking the inner loop over q's
// index to improve cache locality for larger N. It is mathematically
// identical to mulSchoolbook, just re-ordered.
func mulBlocked(p, q []Torus) []Torus {
	n := len(p)
	out := make([]Torus, n)
	for jStart := 0; jStart < n; jStart += mulBlockSize {
		jEnd := jStart + mulBlockSize
		if jEnd > n {
			jEnd = n
		}
		for i := 0; i < n; i++ {
			pi := p[i]
			if pi == 0 {
				continue
			}
			for j := jStart; j < jEnd; j++ {
				k := i + j
				if k < n {
					out[k] += pi * q[j]
				} else {
					out[k-n] -= pi * q[j]
				}
			}
		}
	}
	return out
}

// Rotate implements multiplication by X^k in Z[X]/(X^N+1) for k in [0, 2N].
// Output position i equals the original position r with sign (-1)^m, where
// m = floor((2N-k+i)/N) and r = (2N-k+i) mod N.
//
// Rotate(p, 0) is the identity, Rotate(p, N) negates every coefficient, and
// Rotate(p, 2N) is the identity again.
func Rotate(p []Torus, k int) []Torus {
	n := len(p)
	if k < 0 || k > 2*n {
		panic("ring: Rotate: k out of range [0, 2N]")
	}
	out := make([]Torus, n)
	for i := 0; i < n; i++ {
		m := (2*n - k + i) / n
		r := (2*n - k + i) % n
		if m%2 == 0 {
			out[i] = p[r]
		} else {
			out[i] = Neg(p[r])
		}
	}
	return out
}
