package osc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// OptionSet is an immutable mapping from option name to raw JSON value.
// Values are decoded on access through the Option used to read them.
//
// On the wire an OptionSet is a single JSON object whose keys are the
// option names. The zero value is an empty set.
type OptionSet struct {
	values map[string]json.RawMessage
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int { return len(s.values) }

// Has reports whether the set contains name.
func (s OptionSet) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Raw returns the stored JSON for name.
func (s OptionSet) Raw(name string) (json.RawMessage, bool) {
	raw, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return append(json.RawMessage(nil), raw...), true
}

// Names returns the option names in sorted order.
func (s OptionSet) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets hold the same names with equal decoded
// JSON values.
func (s OptionSet) Equal(other OptionSet) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for name, raw := range s.values {
		otherRaw, ok := other.values[name]
		if !ok || !jsonEqual(raw, otherRaw) {
			return false
		}
	}
	return true
}

func jsonEqual(a, b json.RawMessage) bool {
	if bytes.Equal(a, b) {
		return true
	}
	var va, vb any
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}

// String renders the set as its wire JSON.
func (s OptionSet) String() string {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("OptionSet(%d)", s.Len())
	}
	return string(data)
}

// MarshalJSON encodes the set as one JSON object with sorted keys.
func (s OptionSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(s.values[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts only a JSON object.
func (s *OptionSet) UnmarshalJSON(data []byte) error {
	if firstByte(data) != '{' {
		return &DecodeError{What: "option set", Err: errors.New("expected JSON object")}
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return &DecodeError{What: "option set", Err: err}
	}
	compacted := make(map[string]json.RawMessage, len(values))
	for name, raw := range values {
		compacted[name] = compact(raw)
	}
	s.values = compacted
	return nil
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return append(json.RawMessage(nil), raw...)
	}
	return buf.Bytes()
}

// optionSetCodec is the codec for a bare options object.
type optionSetCodec struct{}

// OptionSetCodec returns the codec for an OptionSet as a bare JSON object.
func OptionSetCodec() Codec[OptionSet] { return optionSetCodec{} }

func (optionSetCodec) Encode(s OptionSet) (json.RawMessage, error) { return s.MarshalJSON() }

func (optionSetCodec) Decode(data json.RawMessage) (OptionSet, error) {
	var s OptionSet
	if err := s.UnmarshalJSON(data); err != nil {
		return OptionSet{}, err
	}
	return s, nil
}

// OptionSetBuilder accumulates typed option values. Each Put encodes its
// value immediately; a later Put for the same name replaces the earlier one.
type OptionSetBuilder struct {
	values map[string]json.RawMessage
	err    error
}

// NewOptionSetBuilder returns an empty builder.
func NewOptionSetBuilder() *OptionSetBuilder {
	return &OptionSetBuilder{values: make(map[string]json.RawMessage)}
}

func (b *OptionSetBuilder) put(name string, raw json.RawMessage, err error) {
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("option %s: %w", name, err)
		}
		return
	}
	b.values[name] = compact(raw)
}

// PutRaw stores raw JSON under name. The JSON must be well formed.
func (b *OptionSetBuilder) PutRaw(name string, raw json.RawMessage) {
	if !json.Valid(raw) {
		b.put(name, nil, errors.New("invalid JSON"))
		return
	}
	b.put(name, raw, nil)
}

// PutAll copies every entry of set into the builder.
func (b *OptionSetBuilder) PutAll(set OptionSet) {
	for name, raw := range set.values {
		b.values[name] = raw
	}
}

// Len returns the number of options collected so far.
func (b *OptionSetBuilder) Len() int { return len(b.values) }

// Build freezes the collected options. It returns the first encoding error
// reported by a Put.
func (b *OptionSetBuilder) Build() (OptionSet, error) {
	if b.err != nil {
		return OptionSet{}, b.err
	}
	values := make(map[string]json.RawMessage, len(b.values))
	for name, raw := range b.values {
		values[name] = raw
	}
	return OptionSet{values: values}, nil
}

// BuildOptionSet runs fn against a fresh builder and builds the result.
func BuildOptionSet(fn func(b *OptionSetBuilder)) (OptionSet, error) {
	b := NewOptionSetBuilder()
	fn(b)
	return b.Build()
}

// optionsDocument is the {"options": {...}} wrapper used by getOptions
// results, setOptions parameters and the my-setting commands.
type optionsDocument struct {
	Options OptionSet `json:"options"`
}

// EncodeOptionsDocument encodes set as {"options": {...}}.
func EncodeOptionsDocument(set OptionSet) ([]byte, error) {
	return json.Marshal(optionsDocument{Options: set})
}

// DecodeOptionsDocument decodes {"options": {...}}. The options member must
// be present and must be a JSON object.
func DecodeOptionsDocument(data []byte) (OptionSet, error) {
	if firstByte(data) != '{' {
		return OptionSet{}, &DecodeError{What: "options document", Err: errors.New("expected JSON object")}
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return OptionSet{}, &DecodeError{What: "options document", Err: err}
	}
	raw, ok := doc["options"]
	if !ok {
		return OptionSet{}, &DecodeError{What: "options document", Err: errors.New(`missing "options"`)}
	}
	var set OptionSet
	if err := set.UnmarshalJSON(raw); err != nil {
		return OptionSet{}, decodeErr("options document", err)
	}
	return set, nil
}

// OptionsResult is the result of camera.getOptions and camera._getMySetting.
type OptionsResult struct {
	Options OptionSet
}

// UnmarshalJSON requires the options member.
func (r *OptionsResult) UnmarshalJSON(data []byte) error {
	set, err := DecodeOptionsDocument(data)
	if err != nil {
		return err
	}
	r.Options = set
	return nil
}

// MarshalJSON encodes {"options": {...}}.
func (r OptionsResult) MarshalJSON() ([]byte, error) {
	return EncodeOptionsDocument(r.Options)
}

// GetOptionsParams is the parameter of camera.getOptions.
type GetOptionsParams struct {
	OptionNames []string `json:"optionNames"`
}

// SetOptionsParams is the parameter of camera.setOptions.
type SetOptionsParams struct {
	Options OptionSet `json:"options"`
}

// Option commands shared by every camera.
var (
	GetOptionsCommand = NewCommand("camera.getOptions", JSON[GetOptionsParams](), JSON[OptionsResult]())
	SetOptionsCommand = NewCommand("camera.setOptions", JSON[SetOptionsParams](), Void())
)
