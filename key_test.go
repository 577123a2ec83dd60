package tfhe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tfhe/tfhe/sampling"
)

func TestNewSecretKeyHasExpectedLengths(t *testing.T) {
	params := Default()
	src := sampling.NewKeyedSource([]byte("secret-key-lengths"))
	sk := NewSecretKey(params, src)

	require.Len(t, sk.LV0, params.DimLWE)
	require.Len(t, sk.LV1, params.RingN)
	require.Len(t, sk.Vec0(), params.DimLWE)
	require.Len(t, sk.Poly1(), params.RingN)
}

func TestPoly1AndVec0AreZeroOneEncoded(t *testing.T) {
	sk := SecretKey{LV0: []bool{true, false, true}, LV1: []bool{false, true}}
	require.Equal(t, []bool{true, false, true}, sk.LV0)

	vec := sk.Vec0()
	require.EqualValues(t, 1, vec[0])
	require.EqualValues(t, 0, vec[1])
	require.EqualValues(t, 1, vec[2])

	poly := sk.Poly1()
	require.EqualValues(t, 0, poly[0])
	require.EqualValues(t, 1, poly[1])
}
