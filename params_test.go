package tfhe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParametersValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParametersEqual(t *testing.T) {
	a := Default()
	b := Default()
	require.True(t, a.Equal(b))

	b.RingN = 2048
	require.False(t, a.Equal(b))
}

func TestValidateRejectsNonPowerOfTwoRingN(t *testing.T) {
	p := Default()
	p.RingN = 1000
	require.Error(t, p.Validate())
}

func TestValidateRejectsOverflowingGadgetDepth(t *testing.T) {
	p := Default()
	p.L = 6
	p.BgBit = 6
	require.Error(t, p.Validate())
}

func TestValidateRejectsNonPositiveDimLWE(t *testing.T) {
	p := Default()
	p.DimLWE = 0
	require.Error(t, p.Validate())
}
