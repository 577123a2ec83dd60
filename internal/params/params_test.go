package params

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tfhe/tfhe"
)

func TestRoundTripViaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")

	want := tfhe.Default()
	require.NoError(t, Dump(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	doc := Default()
	doc.RingN = 3 // not a power of two
	require.NoError(t, Dump(path, tfhe.Parameters{
		DimLWE: doc.DimLWE, Alpha0: doc.Alpha0, RingN: doc.RingN, RingNBit: doc.RingNBit,
		Alpha1: doc.Alpha1, Bg: doc.Bg, BgBit: doc.BgBit, L: doc.L, T: doc.T, Basebit: doc.Basebit,
	}))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultMatchesTfheDefault(t *testing.T) {
	require.Equal(t, FromParameters(tfhe.Default()), Default())
}
