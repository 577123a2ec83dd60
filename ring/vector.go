package ring

// Add returns the elementwise wrapping sum of v and w. Both slices must
// have the same length.
func Add(v, w []Torus) []Torus {
	out := make([]Torus, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns the elementwise wrapping difference v - w.
func Sub(v, w []Torus) []Torus {
	out := make([]Torus, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Negate returns the elementwise semantic negation of v.
func Negate(v []Torus) []Torus {
	out := make([]Torus, len(v))
	for i := range v {
		out[i] = Neg(v[i])
	}
	return out
}

// Dot returns the wrapping inner product of v and w, a torus word.
func Dot(v, w []Torus) Torus {
	var s Torus
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}
