package gobloom

import (
	"fmt"
	"math/bits"

	"github.com/spaolacci/murmur3"
)

// Filter is a Bloom filter compatible with the Bitcoin connection bloom
// filtering scheme. A Filter is not safe for concurrent mutation. Use a
// LevelSet when filters are shared between goroutines.
type Filter struct {
	vData      []byte  // Packed bit buffer, bit i lives at vData[i>>3] & (1 << (i&7)).
	nHashFuncs uint32  // Number of hash functions applied per item.
	level      uint32  // Seed offset mixed into every hash function.
	fpRate     float64 // False positive rate the filter was sized for.
	elements   float64 // Element count the filter was sized for.
}

// Params bundles the fields needed to construct a Filter directly.
type Params struct {
	VData      []byte
	NHashFuncs uint32
	FPRate     float64
	Level      uint32
	Elements   float64
}

// New validates p and creates a Filter owning a copy of p.VData.
func New(p Params) (*Filter, error) {
	if p.VData == nil {
		return nil, validationErrorf("vData is required")
	}
	if p.NHashFuncs < MinHashFuncs {
		return nil, validationErrorf("nHashFuncs is required")
	}
	if p.NHashFuncs > MaxHashFuncs {
		return nil, validationErrorf("nHashFuncs %d exceeds maximum of %d", p.NHashFuncs, MaxHashFuncs)
	}

	vData := make([]byte, len(p.VData))
	copy(vData, p.VData)

	return &Filter{
		vData:      vData,
		nHashFuncs: p.NHashFuncs,
		level:      p.Level,
		fpRate:     p.FPRate,
		elements:   p.Elements,
	}, nil
}

// Insert adds data to the filter and returns the filter to allow chaining.
// Inserting into a filter with an empty bit buffer panics.
func (f *Filter) Insert(data []byte) *Filter {
	for i := uint32(0); i < f.nHashFuncs; i++ {
		idx := f.hash(i, data)
		f.vData[idx>>3] |= 1 << (idx & 7)
	}
	return f
}

// Contains reports whether data might have been inserted into the filter.
// A false result is definite, a true result may be a false positive.
func (f *Filter) Contains(data []byte) bool {
	// A filter with no capacity matches nothing.
	if len(f.vData) == 0 {
		return false
	}

	for i := uint32(0); i < f.nHashFuncs; i++ {
		idx := f.hash(i, data)
		if f.vData[idx>>3]&(1<<(idx&7)) == 0 {
			return false
		}
	}
	return true
}

// Clear resets every bit to zero. The buffer length, hash function count,
// level and sizing metadata are kept.
func (f *Filter) Clear() {
	f.vData = make([]byte, len(f.vData))
}

// hash returns the bit index selected by hash function hashFuncIndex for data.
func (f *Filter) hash(hashFuncIndex uint32, data []byte) uint64 {
	nBits := uint64(len(f.vData)) * 8
	if nBits == 0 {
		panic(fmt.Sprintf("gobloom: hash function %d applied to a filter with an empty bit buffer", hashFuncIndex))
	}
	h := murmur3.Sum32WithSeed(data, hashSeed(hashFuncIndex, f.level))
	return uint64(h) % nBits
}

// Bytes returns a copy of the packed bit buffer.
func (f *Filter) Bytes() []byte {
	vData := make([]byte, len(f.vData))
	copy(vData, f.vData)
	return vData
}

// Size returns the length of the bit buffer in bytes.
func (f *Filter) Size() int {
	return len(f.vData)
}

func (f *Filter) HashFuncs() uint32 {
	return f.nHashFuncs
}

func (f *Filter) Level() uint32 {
	return f.level
}

// FPRate returns the false positive rate the filter was designed for. It is
// not enforced at query time.
func (f *Filter) FPRate() float64 {
	return f.fpRate
}

// Elements returns the element count the filter was designed for.
func (f *Filter) Elements() float64 {
	return f.elements
}

// IsEmpty reports whether the filter has a zero-length bit buffer.
func (f *Filter) IsEmpty() bool {
	return len(f.vData) == 0
}

// BitsSet counts the bits set in the buffer.
func (f *Filter) BitsSet() int {
	n := 0
	for _, b := range f.vData {
		n += bits.OnesCount8(b)
	}
	return n
}

// Copy returns a deep copy of the filter.
func (f *Filter) Copy() *Filter {
	c := *f
	c.vData = f.Bytes()
	return &c
}
