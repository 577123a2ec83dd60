// Package tfhe implements the core of a TFHE-style cryptosystem: gate
// bootstrapping and identity key switching composed into a single
// homomorphic NAND gate over bit-encrypted TLWE ciphertexts.
//
// The package is a pure evaluation library: it has no notion of a gate
// driver, no CLI, and draws randomness only from a sampling.Source supplied
// by the caller. The module contains no driver program.
package tfhe

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Parameters fixes the dimensions and noise levels of every component in
// this package. The reference values (Default) match the literature
// parameter set this implementation targets; an application may supply a
// different Parameters value; internal/params can load one from YAML.
type Parameters struct {
	// DimLWE is the level-0 (TLWE) dimension, conventionally called n.
	DimLWE int
	// Alpha0 is the level-0 noise standard deviation.
	Alpha0 float64
	// RingN is the level-1/ring dimension, conventionally called N (a
	// power of two).
	RingN int
	// RingNBit is log2(RingN).
	RingNBit int
	// Alpha1 is the level-1/ring noise standard deviation.
	Alpha1 float64
	// Bg is the gadget decomposition base.
	Bg uint32
	// BgBit is log2(Bg).
	BgBit uint32
	// L is the gadget decomposition depth.
	L int
	// T is the key-switching decomposition depth.
	T int
	// Basebit is the key-switching base bit.
	Basebit uint32
}

// Default returns the reference parameter set this package targets:
// n=635, N=1024, Bg=64, L=3, T=8, basebit=2.
func Default() Parameters {
	return Parameters{
		DimLWE:   635,
		Alpha0:   1.0 / (1 << 15),
		RingN:    1024,
		RingNBit: 10,
		Alpha1:   2.9802322387695312e-08, // 2^-25
		Bg:       64,
		BgBit:    6,
		L:        3,
		T:        8,
		Basebit:  2,
	}
}

// K is 2^Basebit, the key-switching digit range.
func (p Parameters) K() int {
	return 1 << p.Basebit
}

// SignMin and SignMax bound a single gadget-decomposition digit.
func (p Parameters) SignMin() int32 { return -(int32(p.Bg) / 2) }
func (p Parameters) SignMax() int32 { return int32(p.Bg)/2 - 1 }

// Equal reports whether p and o carry exactly the same field values.
func (p Parameters) Equal(o Parameters) bool {
	return cmp.Equal(p, o)
}

// Validate checks the structural invariants this package relies on: RingN a
// power of two consistent with RingNBit, and the gadget/key-switch depths
// fitting inside a 32-bit torus word.
func (p Parameters) Validate() error {
	if p.RingN <= 0 || p.RingN&(p.RingN-1) != 0 {
		return fmt.Errorf("tfhe: Parameters: RingN=%d is not a power of two", p.RingN)
	}
	if 1<<p.RingNBit != p.RingN {
		return fmt.Errorf("tfhe: Parameters: RingNBit=%d does not match RingN=%d", p.RingNBit, p.RingN)
	}
	if int(p.BgBit)*p.L >= 32 {
		return fmt.Errorf("tfhe: Parameters: L*BgBit=%d overflows a 32-bit torus word", int(p.BgBit)*p.L)
	}
	if int(p.Basebit)*p.T >= 32 {
		return fmt.Errorf("tfhe: Parameters: T*Basebit=%d overflows a 32-bit torus word", int(p.Basebit)*p.T)
	}
	if p.DimLWE <= 0 {
		return fmt.Errorf("tfhe: Parameters: DimLWE must be positive, got %d", p.DimLWE)
	}
	return nil
}
