package phash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKeys(n int, max uint32, seed uint64) []uint32 {
	r := rand.New(rand.NewPCG(seed, seed^0x5555))
	seen := make(map[uint32]bool, n)
	keys := make([]uint32, 0, n)
	for len(keys) < n {
		k := r.Uint32N(max)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func assertBijection(t *testing.T, tab *Table, keys []uint32, slots []int) {
	t.Helper()
	require.Len(t, slots, len(keys))
	assert.Equal(t, len(keys), tab.Size)

	used := make([]bool, len(keys))
	for i, k := range keys {
		s := tab.Index(k)
		require.GreaterOrEqual(t, s, 0, "key %#x", k)
		require.Less(t, s, len(keys), "key %#x", k)
		assert.Equal(t, slots[i], s, "key %#x", k)
		assert.False(t, used[s], "slot %d assigned twice", s)
		used[s] = true
	}
}

func TestBuildBijection(t *testing.T) {
	sizes := []struct {
		name string
		n    int
		max  uint32
	}{
		{"single", 1, 1 << 16},
		{"two", 2, 1 << 16},
		{"bucket boundary", 4, 1 << 16},
		{"bucket boundary plus one", 5, 1 << 16},
		{"class sized", 22, 1 << 8},
		{"full byte", 256, 1 << 8},
		{"vendor sized", 2400, 1 << 16},
	}

	for _, tc := range sizes {
		t.Run(tc.name, func(t *testing.T) {
			keys := randomKeys(tc.n, tc.max, uint64(tc.n))
			tab, slots, err := Build(keys)
			require.NoError(t, err)
			assertBijection(t, tab, keys, slots)
		})
	}
}

func TestBuildSequentialKeys(t *testing.T) {
	keys := make([]uint32, 1000)
	for i := range keys {
		keys[i] = uint32(i)
	}
	tab, slots, err := Build(keys)
	require.NoError(t, err)
	assertBijection(t, tab, keys, slots)
}

func TestBuildDeterministic(t *testing.T) {
	keys := randomKeys(500, 1<<16, 7)

	tab1, slots1, err := Build(keys)
	require.NoError(t, err)
	tab2, slots2, err := Build(keys)
	require.NoError(t, err)

	assert.Equal(t, tab1, tab2)
	assert.Equal(t, slots1, slots2)
}

func TestBuildDuplicateKey(t *testing.T) {
	_, _, err := Build([]uint32{0x8086, 0x10de, 0x8086})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "0x8086")
}

func TestBuildEmpty(t *testing.T) {
	tab, slots, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Equal(t, 0, tab.Size)
	assert.Equal(t, -1, tab.Index(0))
	assert.Equal(t, -1, tab.Index(0x8086))
}

func TestIndexUnknownKeyInRange(t *testing.T) {
	keys := randomKeys(64, 1<<16, 3)
	tab, _, err := Build(keys)
	require.NoError(t, err)

	for k := uint32(0); k < 1<<16; k += 97 {
		s := tab.Index(k)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, tab.Size)
	}
}

func TestIndexDoesNotAllocate(t *testing.T) {
	keys := randomKeys(100, 1<<16, 11)
	tab, _, err := Build(keys)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		_ = tab.Index(keys[42])
	})
	assert.Zero(t, allocs)
}

func TestMixIsSplitmix64Finalizer(t *testing.T) {
	assert.Equal(t, uint64(0), mix(0))
	assert.Equal(t, uint64(0x5692161d100b05e5), mix(1))
	assert.Equal(t, uint64(0xf2210805d7ecda04), mix(0x8086))
}

func BenchmarkIndex(b *testing.B) {
	keys := randomKeys(2400, 1<<16, 1)
	tab, _, err := Build(keys)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tab.Index(keys[i%len(keys)])
	}
}

func BenchmarkBuild(b *testing.B) {
	keys := randomKeys(2400, 1<<16, 1)
	for i := 0; i < b.N; i++ {
		if _, _, err := Build(keys); err != nil {
			b.Fatal(err)
		}
	}
}
