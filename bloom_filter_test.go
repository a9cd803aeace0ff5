package gobloom

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(Params{VData: make([]byte, 4), NHashFuncs: 51})
	require.ErrorIs(t, err, ErrValidation)

	_, err = New(Params{NHashFuncs: 3})
	require.ErrorIs(t, err, ErrValidation)

	_, err = New(Params{VData: make([]byte, 4)})
	require.ErrorIs(t, err, ErrValidation)

	f, err := New(Params{VData: make([]byte, 4), NHashFuncs: MaxHashFuncs})
	require.NoError(t, err)
	assert.Equal(t, uint32(MaxHashFuncs), f.HashFuncs())
	assert.Equal(t, uint32(0), f.Level())
}

func TestNewCopiesBuffer(t *testing.T) {
	t.Parallel()

	vData := []byte{0x00, 0xff}
	f, err := New(Params{VData: vData, NHashFuncs: 1})
	require.NoError(t, err)

	// Mutating the source buffer must not affect the filter.
	vData[0] = 0xff
	assert.Equal(t, []byte{0x00, 0xff}, f.Bytes())

	// And Bytes hands out a copy.
	b := f.Bytes()
	b[1] = 0x00
	assert.Equal(t, []byte{0x00, 0xff}, f.Bytes())
}

// A 3 byte, 5 hash function, level 0 filter is byte compatible with the
// reference filter built by Bitcoin Core for the same three items.
func TestInsertMatchesBitcoinCoreVector(t *testing.T) {
	t.Parallel()

	f, err := New(Params{VData: make([]byte, 3), NHashFuncs: 5, FPRate: 0.01, Elements: 3})
	require.NoError(t, err)

	f.Insert(mustHex(t, "99108ad8ed9bb6274d3980bab5a85c048f0950c8"))
	assert.True(t, f.Contains(mustHex(t, "99108ad8ed9bb6274d3980bab5a85c048f0950c8")))
	// One bit different.
	assert.False(t, f.Contains(mustHex(t, "19108ad8ed9bb6274d3980bab5a85c048f0950c8")))

	f.Insert(mustHex(t, "b5a2c786d9ef4658287ced5914b37a1b4aa32eee"))
	assert.True(t, f.Contains(mustHex(t, "b5a2c786d9ef4658287ced5914b37a1b4aa32eee")))

	f.Insert(mustHex(t, "b9300670b4c5366e95b2699e8b18bc75e5f729c5"))
	assert.True(t, f.Contains(mustHex(t, "b9300670b4c5366e95b2699e8b18bc75e5f729c5")))

	assert.Equal(t, "614e9b", hex.EncodeToString(f.Bytes()))
}

func TestHashSeedWrapsAround(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), hashSeed(0, 0))
	assert.Equal(t, uint32(0xFBA4C795), hashSeed(1, 0))
	assert.Equal(t, uint32(0x373f9195), hashSeed(1, 1))
	assert.Equal(t, uint32(0x9429dcbf), hashSeed(3, 7))

	// Reference murmur3 values for the first two seeds.
	assert.Equal(t, uint32(0x00000000), murmur3.Sum32WithSeed(nil, hashSeed(0, 0)))
	assert.Equal(t, uint32(0x6a396f08), murmur3.Sum32WithSeed(nil, hashSeed(1, 0)))
	assert.Equal(t, uint32(0x514e28b7), murmur3.Sum32WithSeed([]byte{0x00}, hashSeed(0, 0)))
	assert.Equal(t, uint32(0xea3f0b17), murmur3.Sum32WithSeed([]byte{0x00}, hashSeed(1, 0)))
}

func TestNoFalseNegatives(t *testing.T) {
	t.Parallel()

	for _, nHashFuncs := range []uint32{1, 2, 7, 23, MaxHashFuncs} {
		for _, size := range []int{1, 3, 64, 1024} {
			f, err := New(Params{VData: make([]byte, size), NHashFuncs: nHashFuncs})
			require.NoError(t, err)

			for i := 0; i < 200; i++ {
				f.Insert([]byte(fmt.Sprintf("item-%d", i)))
			}
			for i := 0; i < 200; i++ {
				item := []byte(fmt.Sprintf("item-%d", i))
				assert.True(t, f.Contains(item), "hashFuncs=%d size=%d item=%s", nHashFuncs, size, item)
			}
		}
	}
}

func TestInsertChains(t *testing.T) {
	t.Parallel()

	f, err := Create(10, 0.01, 0)
	require.NoError(t, err)

	got := f.Insert([]byte("a")).Insert([]byte("b"))
	assert.Same(t, f, got)
	assert.True(t, f.Contains([]byte("a")))
	assert.True(t, f.Contains([]byte("b")))
}

func TestEmptyFilterNeverMatches(t *testing.T) {
	t.Parallel()

	f, err := Create(1, 0.5, 0)
	require.NoError(t, err)
	require.True(t, f.IsEmpty())
	assert.Equal(t, uint32(1), f.HashFuncs())

	for i := 0; i < 100; i++ {
		assert.False(t, f.Contains([]byte(fmt.Sprintf("%d", i))))
	}
	assert.False(t, f.Contains(nil))
}

func TestInsertIntoEmptyFilterPanics(t *testing.T) {
	t.Parallel()

	f, err := New(Params{VData: []byte{}, NHashFuncs: 3})
	require.NoError(t, err)
	assert.Panics(t, func() { f.Insert([]byte("x")) })
}

func TestLevelChangesAddressing(t *testing.T) {
	t.Parallel()

	level0, err := New(Params{VData: make([]byte, 3), NHashFuncs: 6, Level: 0})
	require.NoError(t, err)
	level1, err := New(Params{VData: make([]byte, 3), NHashFuncs: 6, Level: 1})
	require.NoError(t, err)

	differs := false
	for _, item := range []string{"hello", "world", "bloom", "filter"} {
		for i := uint32(0); i < 6; i++ {
			if level0.hash(i, []byte(item)) != level1.hash(i, []byte(item)) {
				differs = true
			}
		}
	}
	assert.True(t, differs)

	// Known positions for "hello" in a 24 bit filter.
	var positions0, positions1 []uint64
	for i := uint32(0); i < 6; i++ {
		positions0 = append(positions0, level0.hash(i, []byte("hello")))
		positions1 = append(positions1, level1.hash(i, []byte("hello")))
	}
	assert.Equal(t, []uint64{7, 17, 16, 2, 20, 6}, positions0)
	assert.Equal(t, []uint64{12, 12, 13, 18, 7, 7}, positions1)

	level0.Insert([]byte("hello"))
	level1.Insert([]byte("hello"))
	assert.Equal(t, "c40013", hex.EncodeToString(level0.Bytes()))
	assert.Equal(t, "803004", hex.EncodeToString(level1.Bytes()))
}

func TestClear(t *testing.T) {
	t.Parallel()

	f, err := Create(100, 0.01, 3)
	require.NoError(t, err)
	size, hashFuncs := f.Size(), f.HashFuncs()

	for i := 0; i < 100; i++ {
		f.Insert([]byte(fmt.Sprintf("key%d", i)))
	}
	f.Clear()

	assert.Equal(t, size, f.Size())
	assert.Equal(t, hashFuncs, f.HashFuncs())
	assert.Equal(t, uint32(3), f.Level())
	assert.Equal(t, 0.01, f.FPRate())
	assert.Equal(t, float64(100), f.Elements())
	assert.Equal(t, make([]byte, size), f.Bytes())
	for i := 0; i < 100; i++ {
		assert.False(t, f.Contains([]byte(fmt.Sprintf("key%d", i))))
	}

	// Clearing twice is the same as clearing once.
	f.Clear()
	assert.Equal(t, make([]byte, size), f.Bytes())
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	f, err := Create(10, 0.01, 2)
	require.NoError(t, err)
	c := f.Copy()
	c.Insert([]byte("only in copy"))

	assert.False(t, f.Contains([]byte("only in copy")))
	assert.True(t, c.Contains([]byte("only in copy")))
	assert.Equal(t, f.Level(), c.Level())
}
