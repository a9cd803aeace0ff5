package gobloom

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the binary filter record. The record uses the protocol
// buffer wire format:
//
//	message Filter {
//	  bytes  vData      = 1;
//	  uint32 nHashFuncs = 2;
//	  uint32 level      = 3;
//	  double fpRate     = 4;
//	  double elements   = 5;
//	}
const (
	fieldVData      protowire.Number = 1
	fieldNHashFuncs protowire.Number = 2
	fieldLevel      protowire.Number = 3
	fieldFPRate     protowire.Number = 4
	fieldElements   protowire.Number = 5
)

// MarshalBinary encodes the filter in the binary record format.
func (f *Filter) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(f.vData)+32)
	b = protowire.AppendTag(b, fieldVData, protowire.BytesType)
	b = protowire.AppendBytes(b, f.vData)
	b = protowire.AppendTag(b, fieldNHashFuncs, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.nHashFuncs))
	b = protowire.AppendTag(b, fieldLevel, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.level))
	b = protowire.AppendTag(b, fieldFPRate, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(f.fpRate))
	b = protowire.AppendTag(b, fieldElements, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(f.elements))
	return b, nil
}

// UnmarshalBinary replaces f with the filter encoded in data. Unknown fields
// are skipped, the decoded fields are validated as in New.
func (f *Filter) UnmarshalBinary(data []byte) error {
	decoded, err := unmarshalFilter(data)
	if err != nil {
		return err
	}
	*f = *decoded
	return nil
}

// FromBinary decodes a filter from the binary record format.
func FromBinary(data []byte) (*Filter, error) {
	return unmarshalFilter(data)
}

func unmarshalFilter(b []byte) (*Filter, error) {
	var (
		p             Params
		seenHashFuncs bool
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, validationErrorf("malformed filter record: %v", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldVData && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, validationErrorf("malformed vData: %v", protowire.ParseError(n))
			}
			// ConsumeBytes aliases b, New copies it.
			p.VData = append([]byte{}, v...)
			b = b[n:]
		case (num == fieldNHashFuncs || num == fieldLevel) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, validationErrorf("malformed field %d: %v", num, protowire.ParseError(n))
			}
			if v > math.MaxUint32 {
				return nil, validationErrorf("field %d value %d overflows uint32", num, v)
			}
			if num == fieldNHashFuncs {
				p.NHashFuncs = uint32(v)
				seenHashFuncs = true
			} else {
				p.Level = uint32(v)
			}
			b = b[n:]
		case (num == fieldFPRate || num == fieldElements) && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, validationErrorf("malformed field %d: %v", num, protowire.ParseError(n))
			}
			if num == fieldFPRate {
				p.FPRate = math.Float64frombits(v)
			} else {
				p.Elements = math.Float64frombits(v)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, validationErrorf("malformed field %d: %v", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if !seenHashFuncs {
		return nil, validationErrorf("nHashFuncs field is missing")
	}
	return New(p)
}
