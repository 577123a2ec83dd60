package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randPoly(n int, r *rand.Rand) []Torus {
	p := make([]Torus, n)
	for i := range p {
		p[i] = r.Uint32()
	}
	return p
}

func TestRotateIdentityAndHalfTurn(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p := randPoly(64, r)

	require.Equal(t, p, Rotate(p, 0))
	require.Equal(t, Negate(p), Rotate(p, 64))
	require.Equal(t, p, Rotate(p, 128))
}

func TestRotateComposes(t *testing.T) {
	const n = 32
	r := rand.New(rand.NewSource(2))
	p := randPoly(n, r)

	for k1 := 0; k1 < 2*n; k1 += 5 {
		for k2 := 0; k2 < 2*n; k2 += 7 {
			got := Rotate(Rotate(p, k1), k2)
			want := Rotate(p, (k1+k2)%(2*n))
			require.Equal(t, want, got, "k1=%d k2=%d", k1, k2)
		}
	}
}

func TestMulSchoolbookMatchesBlocked(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	p := randPoly(128, r)
	q := randPoly(128, r)

	require.Equal(t, mulSchoolbook(p, q), mulBlocked(p, q))
}

func TestMulIdentity(t *testing.T) {
	const n = 16
	one := make([]Torus, n)
	one[0] = 1

	r := rand.New(rand.NewSource(4))
	p := randPoly(n, r)

	require.Equal(t, p, Mul(p, one))
}
