package tfhe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tfhe/tfhe/ring"
	"github.com/go-tfhe/tfhe/sampling"
)

func TestTorusToIndexRoundsToNearest(t *testing.T) {
	doubleN := 2048
	require.Equal(t, 0, torusToIndex(0, doubleN))
	require.Equal(t, doubleN/2, torusToIndex(1<<31, doubleN))
	require.Equal(t, 0, torusToIndex(^uint32(0), doubleN)) // just under 1, rounds up to 0 mod doubleN
}

// TestTorusToIndexFloorTruncates checks the b-term index floors rather than
// rounds: a value just below the next grid point must not jump ahead of it,
// unlike torusToIndex's rounding behavior for the same input.
func TestTorusToIndexFloorTruncates(t *testing.T) {
	params := Default()
	ringNBit := params.RingNBit

	require.Equal(t, 0, torusToIndexFloor(0, ringNBit))
	require.Equal(t, 1<<params.RingNBit, torusToIndexFloor(1<<31, ringNBit))

	unit := ring.Torus(1) << (31 - uint(ringNBit))
	require.Equal(t, 0, torusToIndexFloor(unit-1, ringNBit))
	require.Equal(t, 1, torusToIndexFloor(unit, ringNBit))
}

func TestBlindRotatePreservesEncryptedBit(t *testing.T) {
	params := Default()
	src := sampling.NewKeyedSource([]byte("blind-rotate"))
	sk := NewSecretKey(params, src)
	bk := NewBootstrappingKey(params, sk, src)
	tv := TestVector(params, sk, src)

	for _, bit := range []bool{true, false} {
		ct := EncryptBit(params, sk, bit, src)
		rotated := BlindRotate(params, bk, tv, ct)
		extracted := SampleExtractIndex(rotated, 0)
		require.Equal(t, bit, DecryptBit1(sk, extracted))
	}
}

func TestGateBootstrapRefreshesCiphertextForBothBits(t *testing.T) {
	params := Default()
	src := sampling.NewKeyedSource([]byte("gate-bootstrap"))
	sk := NewSecretKey(params, src)
	bk := NewBootstrappingKey(params, sk, src)
	tv := TestVector(params, sk, src)

	for _, bit := range []bool{true, false} {
		ct := EncryptBit(params, sk, bit, src)
		out := GateBootstrap(params, bk, tv, ct)
		require.Equal(t, bit, DecryptBit1(sk, out))
	}
}
