package tfhe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tfhe/tfhe/sampling"
)

func TestEncryptDecryptBit1RoundTrip(t *testing.T) {
	params := Default()
	src := sampling.NewKeyedSource([]byte("tlwe1-roundtrip"))
	sk := NewSecretKey(params, src)

	for _, bit := range []bool{true, false} {
		ct := EncryptBit1(params, sk, bit, src)
		require.Equal(t, bit, DecryptBit1(sk, ct))
		require.Len(t, ct.A, params.RingN)
	}
}

func TestCiphertextLv1NegFlipsDecryptedSign(t *testing.T) {
	params := Default()
	src := sampling.NewKeyedSource([]byte("tlwe1-neg"))
	sk := NewSecretKey(params, src)

	ct := EncryptBit1(params, sk, true, src)
	negated := ct.Neg()
	require.False(t, DecryptBit1(sk, negated))
}
