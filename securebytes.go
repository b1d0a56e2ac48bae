// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package securebytes produces cryptographically suitable pseudo-random
// bytes. A Generator is seeded once from a platform entropy source and
// thereafter deterministically streams raw bytes, hexadecimal strings,
// 32-bit words, and uniformly sampled characters drawn from a
// caller-supplied bag, all backed by the ISAAC stream generator.
//
// A Generator is not safe for concurrent use: every operation mutates the
// underlying engine state. Callers that need concurrency must construct
// one Generator per goroutine, and a Generator constructed before a fork
// must not be shared with the child, or both processes will emit identical
// streams.
package securebytes

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/sixafter/securebytes/x/crypto/entropy"
	"github.com/sixafter/securebytes/x/crypto/isaac"
)

var (
	// ErrInvalidBits is returned when the requested seed width is not a
	// power of two between MinBits and MaxBits.
	ErrInvalidBits = errors.New("bits must be a power of two between 64 and 8192")

	// ErrEmptyBag is returned by StringFrom when the bag has length zero.
	ErrEmptyBag = errors.New("bag contains no characters")

	// ErrRangeTooLarge is returned when a sampling range exceeds 2^32.
	ErrRangeTooLarge = errors.New("range exceeds 2^32")

	// ErrNilEntropyReader is returned when WithEntropyReader is given a
	// nil reader.
	ErrNilEntropyReader = errors.New("nil entropy reader")
)

const (
	// MinBits is the smallest accepted seed width.
	MinBits = 64

	// MaxBits is the largest accepted seed width: 8192 bits fill the
	// engine's entire 256-word seed space.
	MaxBits = 8192

	// DefaultBits is the seed width used when none is configured.
	DefaultBits = 256

	// maxRange bounds the ranged sampler; the engine emits 32-bit words.
	maxRange = uint64(1) << 32
)

// Generator is a handle producing cryptographically suitable pseudo-random
// output. It is deterministic given its seed; the seed is drawn from a
// platform entropy source at construction.
//
// Generators are not safe for concurrent use.
type Generator interface {
	io.Reader

	// Uint32 returns the next 32-bit word from the stream.
	Uint32() uint32

	// Bytes returns |n| random bytes.
	Bytes(n int) []byte

	// BytesHex returns |n| random bytes encoded as 2|n| lowercase
	// hexadecimal digits.
	BytesHex(n int) string

	// StringFrom returns a string of length |n| whose characters are
	// independent uniform samples of the octets of bag.
	StringFrom(bag string, n int) (string, error)

	// Config returns the immutable configuration of the generator.
	Config() Config
}

// generator implements the Generator interface.
type generator struct {
	config *runtimeConfig
	engine *isaac.Engine
}

// NewGenerator constructs a Generator. It validates the configured seed
// width, draws bits/32 words from the platform entropy layer (or from the
// reader supplied with WithEntropyReader), seeds one ISAAC engine with
// them, and releases the entropy source.
//
// Construction fails with ErrInvalidBits for a bad seed width, with
// entropy.ErrNoSource when no entropy source is available under the
// requested blocking policy, or with entropy.ErrRead when the selected
// source fails mid-read. After successful construction, only StringFrom
// can fail.
func NewGenerator(options ...Option) (Generator, error) {
	configOpts := DefaultConfigOptions()
	for _, opt := range options {
		opt(&configOpts)
	}

	if configOpts.entropyReaderSet && configOpts.EntropyReader == nil {
		return nil, ErrNilEntropyReader
	}
	if !validBits(configOpts.Bits) {
		return nil, ErrInvalidBits
	}

	words := configOpts.Bits / 32

	var (
		seed   []uint32
		source string
	)
	if configOpts.EntropyReader != nil {
		buf := make([]byte, 4*words)
		if _, err := io.ReadFull(configOpts.EntropyReader, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", entropy.ErrRead, err)
		}
		seed = make([]uint32, words)
		for i := range seed {
			seed[i] = binary.LittleEndian.Uint32(buf[4*i:])
		}
		source = "caller"
	} else {
		provider, err := entropy.New(entropy.WithNonblocking(configOpts.Nonblocking))
		if err != nil {
			return nil, err
		}
		seed, err = provider.Words(words)
		if err != nil {
			return nil, err
		}
		source = provider.Name()
	}

	engine, err := isaac.New(seed)
	if err != nil {
		return nil, err
	}

	return &generator{
		config: &runtimeConfig{
			bits:        configOpts.Bits,
			nonblocking: configOpts.Nonblocking,
			source:      source,
		},
		engine: engine,
	}, nil
}

// New returns a Generator with the default configuration: a 256-bit seed
// drawn from a non-blocking platform entropy source.
func New() (Generator, error) {
	return NewGenerator()
}

// MustGenerator returns a new Generator or panics if construction fails.
// It simplifies safe initialization of variables holding generators.
func MustGenerator(options ...Option) Generator {
	g, err := NewGenerator(options...)
	if err != nil {
		panic(fmt.Sprintf("securebytes: failed to construct generator: %v", err))
	}

	return g
}

// validBits reports whether bits is a power of two within [MinBits, MaxBits].
func validBits(bits int) bool {
	return bits >= MinBits && bits <= MaxBits && bits&(bits-1) == 0
}

// Uint32 returns the next 32-bit word from the engine.
func (g *generator) Uint32() uint32 {
	return g.engine.Uint32()
}

// fill packs engine words into p: full 32-bit words little-endian first,
// then the middle 16 bits of one word when two trailing bytes remain, then
// the low 8 bits of one word for a final single byte.
func (g *generator) fill(p []byte) {
	n := len(p)

	off := 0
	for ; off+4 <= n; off += 4 {
		binary.LittleEndian.PutUint32(p[off:], g.engine.Uint32())
	}
	if n-off >= 2 {
		binary.LittleEndian.PutUint16(p[off:], uint16((g.engine.Uint32()>>8)&0xFFFF))
		off += 2
	}
	if n-off == 1 {
		p[off] = byte(g.engine.Uint32() & 0xFF)
	}
}

// Bytes returns |n| random bytes.
func (g *generator) Bytes(n int) []byte {
	if n < 0 {
		n = -n
	}

	b := make([]byte, n)
	g.fill(b)

	return b
}

// BytesHex returns |n| random bytes as 2|n| lowercase hexadecimal digits.
func (g *generator) BytesHex(n int) string {
	return hex.EncodeToString(g.Bytes(n))
}

// Read fills p with random bytes using the same packing as Bytes. It
// implements io.Reader and never fails, so a Generator can stand in
// anywhere Go expects a randomness source.
func (g *generator) Read(p []byte) (int, error) {
	g.fill(p)
	return len(p), nil
}

// StringFrom returns a string of length |n| whose every position is an
// independent uniform sample of one octet of bag. Sampling is performed
// with rejection against the smallest covering power of two, so no octet
// of the bag is favored regardless of the bag's length.
func (g *generator) StringFrom(bag string, n int) (string, error) {
	if len(bag) == 0 {
		return "", ErrEmptyBag
	}
	if n < 0 {
		n = -n
	}

	samples, err := g.rangedRandoms(uint64(len(bag)), n)
	if err != nil {
		return "", err
	}

	b := make([]byte, n)
	for i, s := range samples {
		b[i] = bag[s]
	}

	return string(b), nil
}

// rangedRandoms returns count independent uniform samples in [0, rng).
// Each sample reduces an engine word modulo the smallest power of two
// covering rng and rejects values at or above rng; the divisor divides
// 2^32 evenly, so the accepted values are exactly uniform.
func (g *generator) rangedRandoms(rng uint64, count int) ([]uint32, error) {
	if rng > maxRange {
		return nil, ErrRangeTooLarge
	}

	divisor := divisorFor(rng)

	samples := make([]uint32, count)
	for i := range samples {
		for {
			r := uint64(g.engine.Uint32()) % divisor
			if r < rng {
				samples[i] = uint32(r)
				break
			}
		}
	}

	return samples, nil
}

// divisorFor returns the smallest power of two in [1, 2^32] that is at
// least rng.
func divisorFor(rng uint64) uint64 {
	var d uint64
	for n := 0; n <= 32 && d < rng; n++ {
		d = uint64(1) << n
	}

	return d
}

// Config returns the generator's immutable configuration. It implements
// the Configuration interface.
func (g *generator) Config() Config {
	return g.config
}
