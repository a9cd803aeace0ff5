package gobloom

import (
	"encoding/base64"
	"encoding/json"
)

// Object is the structured form of a Filter, used for inspection and as the
// JSON wire record.
type Object struct {
	VData      string  `json:"vData"` // Base64 of the packed bit buffer.
	Level      uint32  `json:"level"`
	Elements   float64 `json:"elements"`
	FPRate     float64 `json:"fpRate"`
	NHashFuncs uint32  `json:"nHashFuncs"`
}

// jsonObject mirrors Object with pointer fields so that absent fields can be
// told apart from zero values.
type jsonObject struct {
	VData      *string  `json:"vData"`
	Level      *uint32  `json:"level"`
	Elements   *float64 `json:"elements"`
	FPRate     *float64 `json:"fpRate"`
	NHashFuncs *uint32  `json:"nHashFuncs"`
}

// ToObject returns the structured form of the filter.
func (f *Filter) ToObject() Object {
	return Object{
		VData:      base64.StdEncoding.EncodeToString(f.vData),
		Level:      f.level,
		Elements:   f.elements,
		FPRate:     f.fpRate,
		NHashFuncs: f.nHashFuncs,
	}
}

// ToJSON returns the JSON encoding of ToObject.
func (f *Filter) ToJSON() (string, error) {
	data, err := f.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToObject())
}

// FromJSON parses a JSON wire record and builds a Filter from it. All five
// fields of the record are required.
func FromJSON(text string) (*Filter, error) {
	return decodeJSON([]byte(text))
}

// UnmarshalJSON replaces f with the filter described by data. The same
// validation as FromJSON applies.
func (f *Filter) UnmarshalJSON(data []byte) error {
	decoded, err := decodeJSON(data)
	if err != nil {
		return err
	}
	*f = *decoded
	return nil
}

func decodeJSON(data []byte) (*Filter, error) {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, validationErrorf("malformed filter JSON: %v", err)
	}

	switch {
	case obj.VData == nil:
		return nil, validationErrorf("vData field is missing")
	case obj.Level == nil:
		return nil, validationErrorf("level field is missing")
	case obj.Elements == nil:
		return nil, validationErrorf("elements field is missing")
	case obj.FPRate == nil:
		return nil, validationErrorf("fpRate field is missing")
	case obj.NHashFuncs == nil:
		return nil, validationErrorf("nHashFuncs field is missing")
	}

	vData, err := base64.StdEncoding.DecodeString(*obj.VData)
	if err != nil {
		return nil, validationErrorf("vData is not valid base64: %v", err)
	}

	return New(Params{
		VData:      vData,
		NHashFuncs: *obj.NHashFuncs,
		FPRate:     *obj.FPRate,
		Level:      *obj.Level,
		Elements:   *obj.Elements,
	})
}
