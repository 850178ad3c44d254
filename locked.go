package mt19937

import "sync"

// Locked serialises access to a single MT19937 so one stream can be shared by
// several goroutines. Every method holds the lock for the whole draw, since a
// twist rewrites the entire state.
type Locked struct {
	mu sync.Mutex
	mt *MT19937
}

// NewLocked wraps mt. A nil mt is replaced by an unseeded generator.
func NewLocked(mt *MT19937) *Locked {
	if mt == nil {
		mt = New()
	}
	return &Locked{mt: mt}
}

// Seed reseeds the wrapped generator.
func (l *Locked) Seed(seed uint32) {
	l.mu.Lock()
	l.mt.Seed(seed)
	l.mu.Unlock()
}

// SeedArray reseeds the wrapped generator from key.
func (l *Locked) SeedArray(key []uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mt.SeedArray(key)
}

// Uint32 returns a random number on [0, 0xffffffff].
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	v := l.mt.Uint32()
	l.mu.Unlock()
	return v
}

// Uint31 returns a random number on [0, 0x7fffffff].
func (l *Locked) Uint31() uint32 {
	l.mu.Lock()
	v := l.mt.Uint31()
	l.mu.Unlock()
	return v
}

// Uint64 draws both halves under one lock so the pair is contiguous.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	v := l.mt.Uint64()
	l.mu.Unlock()
	return v
}

// Float64Closed returns a random number on the closed interval [0, 1].
func (l *Locked) Float64Closed() float64 {
	l.mu.Lock()
	v := l.mt.Float64Closed()
	l.mu.Unlock()
	return v
}

// Float64 returns a random number on [0, 1).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	v := l.mt.Float64()
	l.mu.Unlock()
	return v
}

// Float64Open returns a random number on the open interval (0, 1).
func (l *Locked) Float64Open() float64 {
	l.mu.Lock()
	v := l.mt.Float64Open()
	l.mu.Unlock()
	return v
}

// Float64Res53 returns a random number on [0, 1) with 53-bit resolution.
func (l *Locked) Float64Res53() float64 {
	l.mu.Lock()
	v := l.mt.Float64Res53()
	l.mu.Unlock()
	return v
}
