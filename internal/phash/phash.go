// Package phash builds minimal perfect hash functions over fixed sets of
// integer keys.
//
// The construction is hash-and-displace: keys are spread over a small number
// of buckets, and every bucket is assigned a displacement that moves all of
// its keys into distinct free slots. Evaluating the function costs one
// xxhash of the key, two mixes and two modulo operations. A Table never
// tells absent keys apart from present ones; callers store the key next to
// the value and compare.
package phash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

const (
	// keysPerBucket is the average bucket load.
	keysPerBucket = 4

	// maxDisplacement bounds the search for a single bucket before the
	// build restarts with the next seed.
	maxDisplacement = 1 << 16

	// maxSeeds bounds the number of full build attempts.
	maxSeeds = 64

	golden = 0x9e3779b97f4a7c15
)

// ErrDuplicateKey is returned when the key set contains a key twice.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNoSolution is returned when no seed yields a perfect hash.
var ErrNoSolution = errors.New("no perfect hash found")

// Table is a minimal perfect hash function over Size keys.
type Table struct {
	Seed  uint64
	Size  int
	Disps []uint32
}

// Index returns the slot of key in [0, Size), or -1 for an empty table.
// Keys outside the build set map to an arbitrary slot.
func (t *Table) Index(key uint32) int {
	if t.Size == 0 || len(t.Disps) == 0 {
		return -1
	}
	h := hashKey(t.Seed, key)
	d := t.Disps[bucketOf(h, len(t.Disps))]
	return slotOf(h, d, t.Size)
}

// Build computes a minimal perfect hash over keys. slots[i] is the slot
// assigned to keys[i]. The result depends only on the key sequence.
func Build(keys []uint32) (*Table, []int, error) {
	seen := make(map[uint32]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, nil, fmt.Errorf("%w: 0x%x", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
	}

	if len(keys) == 0 {
		return &Table{}, nil, nil
	}

	for seed := uint64(0); seed < maxSeeds; seed++ {
		if t, slots, ok := try(keys, seed); ok {
			return t, slots, nil
		}
	}
	return nil, nil, fmt.Errorf("%w for %d keys", ErrNoSolution, len(keys))
}

func try(keys []uint32, seed uint64) (*Table, []int, bool) {
	n := len(keys)
	nb := (n + keysPerBucket - 1) / keysPerBucket

	hashes := make([]uint64, n)
	buckets := make([][]int, nb)
	for i, k := range keys {
		h := hashKey(seed, k)
		hashes[i] = h
		b := bucketOf(h, nb)
		buckets[b] = append(buckets[b], i)
	}

	// Place the fullest buckets first; ties keep bucket order.
	order := make([]int, nb)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(buckets[order[a]]) > len(buckets[order[b]])
	})

	disps := make([]uint32, nb)
	slots := make([]int, n)
	taken := make([]bool, n)
	pending := make([]int, 0, keysPerBucket*2)

	for _, b := range order {
		members := buckets[b]
		if len(members) == 0 {
			break
		}

		placed := false
		for d := uint32(0); d < maxDisplacement; d++ {
			pending = pending[:0]
			ok := true
			for _, i := range members {
				s := slotOf(hashes[i], d, n)
				if taken[s] || contains(pending, s) {
					ok = false
					break
				}
				pending = append(pending, s)
			}
			if !ok {
				continue
			}
			for j, i := range members {
				slots[i] = pending[j]
				taken[pending[j]] = true
			}
			disps[b] = d
			placed = true
			break
		}
		if !placed {
			return nil, nil, false
		}
	}

	return &Table{Seed: seed, Size: n, Disps: disps}, slots, true
}

func hashKey(seed uint64, key uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], key)
	return mix(xxhash.Sum64(b[:]) ^ (seed * golden))
}

func bucketOf(h uint64, nb int) int {
	return int((h >> 32) % uint64(nb))
}

func slotOf(h uint64, d uint32, n int) int {
	return int(mix(h+uint64(d)*golden) % uint64(n))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
