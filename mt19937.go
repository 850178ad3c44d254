// Package mt19937 implements the 32-bit Mersenne Twister (MT19937) pseudo-random
// number generator with a period of 2^19937-1.
//
// The generator reproduces the reference mt19937ar output bit for bit, so a
// stream seeded here matches any other conforming implementation (C++
// std::mt19937, NumPy's RandomState) seeded the same way.
//
// Basic usage:
//
//	mt := mt19937.NewWithSeed(5489)
//	x := mt.Float64()
//
// An MT19937 is not safe for concurrent use. Wrap it in a Locked to share one
// stream between goroutines, or give each goroutine its own generator.
package mt19937

import (
	"errors"
	"fmt"
)

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// DefaultSeed is used when a generator is drawn from before being seeded.
	DefaultSeed uint32 = 5489

	arraySeed     = 19650218
	initMul       = 1812433253
	arrayMulFirst = 1664525
	arrayMulLast  = 1566083941
)

var (
	// ErrInvalidArgument is returned when a seeding operation gets input it
	// cannot use.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyKey is returned by SeedArray for a zero-length key.
	ErrEmptyKey = fmt.Errorf("empty seed key: %w", ErrInvalidArgument)
)

// MT19937 is a Mersenne Twister random number generator. The zero value is
// an unseeded generator: its first draw seeds it with DefaultSeed.
type MT19937 struct {
	mt     [mtN]uint32
	mti    int
	seeded bool
}

// New returns an unseeded generator. The first draw seeds it with DefaultSeed.
func New() *MT19937 {
	return &MT19937{}
}

// NewWithSeed creates a new Mersenne Twister with the given seed.
func NewWithSeed(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// NewFromArray creates a new Mersenne Twister seeded from key.
func NewFromArray(key []uint32) (*MT19937, error) {
	mt := New()
	if err := mt.SeedArray(key); err != nil {
		return nil, err
	}
	return mt, nil
}

// Seed initializes the state from a single 32-bit value and rewinds the
// stream so the next draw starts a fresh block.
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = initMul*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
	mt.seeded = true
}

// SeedArray initializes the state from a key of arbitrary length. Keys longer
// than the state are folded in completely. An empty key is rejected with
// ErrEmptyKey and leaves the generator untouched.
func (mt *MT19937) SeedArray(key []uint32) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	mt.Seed(arraySeed)

	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := mt.mt[i-1] ^ (mt.mt[i-1] >> 30)
		mt.mt[i] = (mt.mt[i] ^ (prev * arrayMulFirst)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := mt.mt[i-1] ^ (mt.mt[i-1] >> 30)
		mt.mt[i] = (mt.mt[i] ^ (prev * arrayMulLast)) - uint32(i)
		i++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
	}

	// MSB set so the state can never be all zero
	mt.mt[0] = upperMask
	mt.mti = mtN
	return nil
}

// twist regenerates all N words of the state. The three loops are the
// modulo-free split of k = 0..N-1 with indices taken mod N.
func (mt *MT19937) twist() {
	if !mt.seeded {
		mt.Seed(DefaultSeed)
	}

	mag01 := [2]uint32{0, matrixA}

	var y uint32
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
	mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]

	mt.mti = 0
}

// Uint32 returns a random number on [0, 0xffffffff].
func (mt *MT19937) Uint32() uint32 {
	if mt.mti >= mtN || !mt.seeded {
		mt.twist()
	}

	y := mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Uint31 returns a random number on [0, 0x7fffffff].
func (mt *MT19937) Uint31() uint32 {
	return mt.Uint32() >> 1
}

// Uint64 returns 64 random bits built from two consecutive words, the first
// word in the high half. It makes *MT19937 a math/rand/v2 Source.
func (mt *MT19937) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}

// Float64Closed returns a random number on the closed interval [0, 1].
func (mt *MT19937) Float64Closed() float64 {
	return float64(mt.Uint32()) * (1.0 / 4294967295.0)
}

// Float64 returns a random number on [0, 1).
func (mt *MT19937) Float64() float64 {
	return float64(mt.Uint32()) * (1.0 / 4294967296.0)
}

// Float64Open returns a random number on the open interval (0, 1).
func (mt *MT19937) Float64Open() float64 {
	return (float64(mt.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Float64Res53 returns a random number on [0, 1) with 53-bit resolution,
// consuming two words. This matches NumPy's random_sample().
func (mt *MT19937) Float64Res53() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
