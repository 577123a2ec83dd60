package sampling

import "github.com/go-tfhe/tfhe/ring"

// UniformTorus draws a torus word uniform on all of T.
func UniformTorus(src Source) ring.Torus {
	return ring.FloatToTorusMod(src.Float64() - 0.5)
}

// UniformBit draws a Bernoulli(1/2) bit.
func UniformBit(src Source) bool {
	return src.Uint32()&1 == 1
}

// ModularNormal draws x ~ N(0, alpha), reduces it modulo 1 into
// [-0.5, 0.5), and converts it to a torus word.
func ModularNormal(src Source, alpha float64) ring.Torus {
	return ring.FloatToTorusMod(normFloat64(src) * alpha)
}

// UniformTorusVector draws n independent uniform torus words.
func UniformTorusVector(src Source, n int) []ring.Torus {
	out := make([]ring.Torus, n)
	for i := range out {
		out[i] = UniformTorus(src)
	}
	return out
}

// UniformBitVector draws n independent uniform bits.
func UniformBitVector(src Source, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = UniformBit(src)
	}
	return out
}

// ModularNormalVector draws n independent ModularNormal(alpha) samples.
func ModularNormalVector(src Source, alpha float64, n int) []ring.Torus {
	out := make([]ring.Torus, n)
	for i := range out {
		out[i] = ModularNormal(src, alpha)
	}
	return out
}
