package gobloom

import (
	"math"
)

const (
	MaxHashFuncs = 50
	MinHashFuncs = 1

	// MaxFilterBytes bounds the buffer Create is willing to allocate.
	MaxFilterBytes = math.MaxInt32

	LN2        = 0.6931471805599453
	LN2SQUARED = 0.4804530139182014

	// hashFuncSeedStep and levelSeedStep decorrelate the hash functions and the
	// levels derived from the single underlying murmur3 primitive.
	hashFuncSeedStep uint32 = 0xFBA4C795
	levelSeedStep    uint32 = 1000000000
)

// UpdateFlag tells a peer how to update a loaded filter when it matches an
// output. The filter carries it as metadata only.
type UpdateFlag uint8

const (
	BloomUpdateNone         UpdateFlag = 0
	BloomUpdateAll          UpdateFlag = 1
	BloomUpdateP2PubkeyOnly UpdateFlag = 2
)

func (u UpdateFlag) String() string {
	switch u {
	case BloomUpdateNone:
		return "BLOOM_UPDATE_NONE"
	case BloomUpdateAll:
		return "BLOOM_UPDATE_ALL"
	case BloomUpdateP2PubkeyOnly:
		return "BLOOM_UPDATE_P2PUBKEY_ONLY"
	default:
		return "BLOOM_UPDATE_UNKNOWN"
	}
}

// Create sizes a new filter for the expected number of elements and target
// false positive rate. The buffer may legitimately be empty when the inputs
// ask for less than one byte, in which case the filter never matches.
func Create(elements float64, falsePositiveRate float64, level uint32) (*Filter, error) {
	if !(elements > 0) || math.IsInf(elements, 0) {
		return nil, arithmeticErrorf("elements must be a positive finite number, got %v", elements)
	}

	size := -1 / LN2SQUARED * elements * math.Log(falsePositiveRate)
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		return nil, arithmeticErrorf("cannot size filter for %v elements at false positive rate %v", elements, falsePositiveRate)
	}

	filterSize := math.Floor(size / 8)
	if filterSize > MaxFilterBytes {
		return nil, arithmeticErrorf("filter of %v bytes exceeds maximum of %d", filterSize, MaxFilterBytes)
	}
	vData := make([]byte, int(filterSize))

	nHashFuncs := math.Ceil(float64(len(vData)) * 8 / elements * LN2)
	if math.IsNaN(nHashFuncs) || math.IsInf(nHashFuncs, 0) {
		return nil, arithmeticErrorf("hash function count is not finite for %v elements", elements)
	}
	nHashFuncs = math.Max(nHashFuncs, MinHashFuncs)
	nHashFuncs = math.Min(nHashFuncs, MaxHashFuncs)

	return New(Params{
		VData:      vData,
		NHashFuncs: uint32(nHashFuncs),
		FPRate:     falsePositiveRate,
		Level:      level,
		Elements:   elements,
	})
}

// hashSeed derives the murmur3 seed for hash function i. The arithmetic wraps
// modulo 2^32.
func hashSeed(i uint32, level uint32) uint32 {
	return i*hashFuncSeedStep + levelSeedStep*level
}
