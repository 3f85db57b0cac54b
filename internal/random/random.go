// Package random is the process-wide entropy source for the sampling
// helpers in arr and str.
//
// Values come from a ChaCha20 keystream keyed from crypto/rand. The key is
// rotated after every buffer refill (fast key erasure), so the block counter
// never wraps. The package-level functions are safe for concurrent use.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
	"sync"

	"golang.org/x/crypto/chacha20"
)

const bufSize = 512

// Generator produces uniformly distributed values from a ChaCha20 keystream.
// A Generator is not safe for concurrent use; the package-level functions
// wrap a shared one in a mutex.
type Generator struct {
	key [chacha20.KeySize]byte
	buf [bufSize]byte
	pos int
}

// New returns a Generator keyed with seed. The same seed always yields the
// same sequence.
func New(seed [chacha20.KeySize]byte) *Generator {
	g := &Generator{key: seed}
	g.refill()
	return g
}

func (g *Generator) refill() {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(g.key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed by the array types above
		panic("random: " + err.Error())
	}
	clear(g.buf[:])
	c.XORKeyStream(g.buf[:], g.buf[:])
	copy(g.key[:], g.buf[:chacha20.KeySize])
	clear(g.buf[:chacha20.KeySize])
	g.pos = chacha20.KeySize
}

// Uint64 returns a uniformly distributed 64-bit value.
func (g *Generator) Uint64() uint64 {
	if g.pos+8 > bufSize {
		g.refill()
	}
	v := binary.LittleEndian.Uint64(g.buf[g.pos:])
	clear(g.buf[g.pos : g.pos+8])
	g.pos += 8
	return v
}

// IntN returns a uniformly distributed value in [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	bound := uint64(n)
	hi, lo := bits.Mul64(g.Uint64(), bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			hi, lo = bits.Mul64(g.Uint64(), bound)
		}
	}
	return int(hi)
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, calling swap
// to exchange positions i and j.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.IntN(i+1))
	}
}

var global struct {
	mu  sync.Mutex
	gen *Generator
}

func init() {
	var seed [chacha20.KeySize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("random: cannot seed generator: " + err.Error())
	}
	global.gen = New(seed)
}

// Uint64 returns a uniformly distributed 64-bit value from the shared generator.
func Uint64() uint64 {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.gen.Uint64()
}

// IntN returns a uniformly distributed value in [0, n) from the shared
// generator. It panics if n <= 0.
func IntN(n int) int {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.gen.IntN(n)
}

// Shuffle permutes n elements using the shared generator.
func Shuffle(n int, swap func(i, j int)) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.gen.Shuffle(n, swap)
}
