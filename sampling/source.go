// Package sampling provides the randomness primitives the TFHE core draws
// on: uniform torus words, uniform bits and discrete-Gaussian torus words.
// It does not generate entropy itself: every Source wraps an externally
// supplied byte stream, so the core only ever calls into an RNG, never
// holds one directly.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Source is the randomness abstraction every sampler in this package draws
// on. Implementations must produce independent, uniformly distributed
// 32-bit words; Float64 must be uniform on [0, 1).
type Source interface {
	Uint32() uint32
	Float64() float64
}

// CryptoSource draws from a cryptographically acceptable source, by default
// crypto/rand. Use it for key generation and any encryption that must not
// be reproducible.
type CryptoSource struct {
	r io.Reader
}

// NewCryptoSource wraps r, or crypto/rand.Reader if r is nil.
func NewCryptoSource(r io.Reader) *CryptoSource {
	if r == nil {
		r = rand.Reader
	}
	return &CryptoSource{r: r}
}

// Uint32 returns a uniformly distributed 32-bit word.
func (s *CryptoSource) Uint32() uint32 {
	var buf [4]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		panic("sampling: CryptoSource: " + err.Error())
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Float64 returns a value uniformly distributed on [0, 1), built from 53
// random bits, matching the standard library's own random-float recipe.
func (s *CryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		panic("sampling: CryptoSource: " + err.Error())
	}
	u := binary.LittleEndian.Uint64(buf[:]) >> 11 // top 53 bits
	return float64(u) / (1 << 53)
}

// KeyedSource is a deterministic, seeded byte stream built from an XOF
// (blake3 by default). Two KeyedSources constructed from the same seed
// produce byte-for-byte identical sample sequences, which is what makes
// seeded tests reproducible: samples are drawn in a fixed, documented order
// from a single stream, never interleaved with an unrelated draw.
//
// KeyedSource is not safe for concurrent use; give each concurrent caller
// its own instance (e.g. derived with a distinct seed).
type KeyedSource struct {
	xof io.Reader
}

// NewKeyedSource derives a deterministic stream from seed using blake3's
// extendable output mode.
func NewKeyedSource(seed []byte) *KeyedSource {
	h := blake3.New()
	_, _ = h.Write(seed)
	return &KeyedSource{xof: h.Digest()}
}

// NewKeyedSourceBlake2b is the legacy keying path, kept for parity with
// streams seeded before the switch to blake3: it derives its bytes from
// blake2b-512 used as a simple counter-mode expander.
func NewKeyedSourceBlake2b(seed []byte) *KeyedSource {
	return &KeyedSource{xof: &blake2bExpander{seed: seed}}
}

func (s *KeyedSource) Uint32() uint32 {
	var buf [4]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		panic("sampling: KeyedSource: " + err.Error())
	}
	return binary.LittleEndian.Uint32(buf[:])
}

func (s *KeyedSource) Float64() float64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		panic("sampling: KeyedSource: " + err.Error())
	}
	u := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// blake2bExpander turns blake2b-512 into an unbounded reader by hashing an
// incrementing counter alongside the seed, the standard way to expand a
// fixed-width digest into an arbitrarily long uniform byte stream.
type blake2bExpander struct {
	seed    []byte
	counter uint64
	buf     []byte
}

func (e *blake2bExpander) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(e.buf) == 0 {
			var ctr [8]byte
			binary.LittleEndian.PutUint64(ctr[:], e.counter)
			e.counter++
			sum := blake2b.Sum512(append(append([]byte{}, e.seed...), ctr[:]...))
			e.buf = sum[:]
		}
		c := copy(p[n:], e.buf)
		e.buf = e.buf[c:]
		n += c
	}
	return n, nil
}

// normFloat64 draws a standard-normal sample from src using the Box-Muller
// transform. math/rand's own NormFloat64 is unavailable here since it
// expects a *rand.Rand, not our Source abstraction; Box-Muller is the
// textbook construction that works from any uniform source.
func normFloat64(src Source) float64 {
	// Avoid log(0) by rejecting a zero first uniform draw.
	var u1 float64
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
