package mt19937

import "testing"

// twistModulo is the single-loop form of the recurrence with every index
// taken mod N.
func twistModulo(state *[mtN]uint32) {
	for k := 0; k < mtN; k++ {
		y := (state[k] & upperMask) | (state[(k+1)%mtN] & lowerMask)
		next := state[(k+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		state[k] = next
	}
}

func TestTwistMatchesModuloLoop(t *testing.T) {
	for _, seed := range []uint32{0, 1, 5489, 0xdeadbeef} {
		mt := NewWithSeed(seed)
		ref := mt.mt

		for pass := 0; pass < 3; pass++ {
			twistModulo(&ref)
			mt.twist()
			if mt.mt != ref {
				t.Fatalf("seed %d pass %d: split twist diverged from modulo twist", seed, pass)
			}
			if mt.mti != 0 {
				t.Fatalf("seed %d pass %d: cursor %d after twist, expected 0", seed, pass, mt.mti)
			}
		}
	}
}

func TestCursorLifecycle(t *testing.T) {
	mt := New()
	if mt.seeded {
		t.Fatal("new generator reports itself seeded")
	}

	mt.Uint32()
	if !mt.seeded || mt.mti != 1 {
		t.Fatalf("after first draw: seeded=%v cursor=%d, expected seeded with cursor 1", mt.seeded, mt.mti)
	}

	for mt.mti < mtN {
		mt.Uint32()
	}
	mt.Uint32()
	if mt.mti != 1 {
		t.Fatalf("cursor after block rollover = %d, expected 1", mt.mti)
	}

	mt.Seed(1)
	if mt.mti != mtN {
		t.Fatalf("cursor after Seed = %d, expected %d", mt.mti, mtN)
	}
	if err := mt.SeedArray([]uint32{1}); err != nil {
		t.Fatal(err)
	}
	if mt.mti != mtN {
		t.Fatalf("cursor after SeedArray = %d, expected %d", mt.mti, mtN)
	}
	if mt.mt[0] != upperMask {
		t.Fatalf("mt[0] after SeedArray = %#x, expected %#x", mt.mt[0], upperMask)
	}
}

func TestSeedFormula(t *testing.T) {
	mt := NewWithSeed(19650218)
	if mt.mt[0] != 19650218 {
		t.Fatalf("mt[0] = %d", mt.mt[0])
	}
	for i := 1; i < mtN; i++ {
		prev := uint64(mt.mt[i-1])
		exp := uint32((1812433253*(prev^(prev>>30)) + uint64(i)) % (1 << 32))
		if mt.mt[i] != exp {
			t.Fatalf("mt[%d] = %d, expected %d", i, mt.mt[i], exp)
		}
	}
}
