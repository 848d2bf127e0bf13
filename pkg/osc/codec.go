package osc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Codec converts values of type T to and from their JSON wire form.
// Decode must fail, never substitute a default, when the JSON does not
// have the expected shape.
type Codec[T any] interface {
	Encode(v T) (json.RawMessage, error)
	Decode(data json.RawMessage) (T, error)
}

// Validator is implemented by records that have required fields.
// JSON codecs call Validate after unmarshalling.
type Validator interface {
	Validate() error
}

// Codec errors.
var (
	errNull     = errors.New("unexpected null")
	errNotArray = errors.New("expected JSON array")
)

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// firstByte returns the first non-space byte of data, or 0.
func firstByte(data []byte) byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

type jsonCodec[T any] struct{}

// JSON returns a codec backed by encoding/json. Unknown object fields are
// ignored. A JSON null is rejected. If *T or T implements Validator, the
// decoded value is validated.
func JSON[T any]() Codec[T] { return jsonCodec[T]{} }

func (jsonCodec[T]) Encode(v T) (json.RawMessage, error) {
	return json.Marshal(v)
}

func (jsonCodec[T]) Decode(data json.RawMessage) (T, error) {
	var v T
	if isNull(data) {
		return v, errNull
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	if err := validate(&v); err != nil {
		return v, err
	}
	return v, nil
}

func validate[T any](v *T) error {
	if val, ok := any(v).(Validator); ok {
		return val.Validate()
	}
	if val, ok := any(*v).(Validator); ok {
		return val.Validate()
	}
	return nil
}

// String, Int, Int64, Float and Bool are the primitive codecs.
func String() Codec[string] { return jsonCodec[string]{} }
func Int() Codec[int] { return jsonCodec[int]{} }
func Int64() Codec[int64] { return jsonCodec[int64]{} }
func Float() Codec[float64] { return jsonCodec[float64]{} }
func Bool() Codec[bool] { return jsonCodec[bool]{} }
func Strings() Codec[[]string] { return Array(String()) }

type intAsDoubleCodec struct{}

// IntAsDouble returns a codec for integers the camera transmits as
// floating point. Decoding rounds half away from zero (math.Round).
func IntAsDouble() Codec[int] { return intAsDoubleCodec{} }

func (intAsDoubleCodec) Encode(v int) (json.RawMessage, error) {
	return json.Marshal(float64(v))
}

func (intAsDoubleCodec) Decode(data json.RawMessage) (int, error) {
	var r RoundedInt
	if isNull(data) {
		return 0, errNull
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, err
	}
	return int(r), nil
}

// RoundedInt is an integer record field sent as a JSON number that may
// carry a fractional part.
type RoundedInt int

// MarshalJSON widens the integer to a float64.
func (r RoundedInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(r))
}

// UnmarshalJSON rounds the number to the nearest integer.
func (r *RoundedInt) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("value %v out of range", f)
	}
	*r = RoundedInt(math.Round(f))
	return nil
}

type enumCodec[T comparable] struct {
	allowed map[T]struct{}
}

// Enum returns a codec accepting only the listed wire values.
func Enum[T comparable](values ...T) Codec[T] {
	allowed := make(map[T]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return enumCodec[T]{allowed: allowed}
}

func (c enumCodec[T]) Encode(v T) (json.RawMessage, error) {
	if _, ok := c.allowed[v]; !ok {
		return nil, fmt.Errorf("unknown value %v", v)
	}
	return json.Marshal(v)
}

func (c enumCodec[T]) Decode(data json.RawMessage) (T, error) {
	var v T
	if isNull(data) {
		return v, errNull
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	if _, ok := c.allowed[v]; !ok {
		return v, fmt.Errorf("unknown value %s", bytes.TrimSpace(data))
	}
	return v, nil
}

type arrayCodec[T any] struct {
	elem Codec[T]
}

// Array returns a codec for a JSON array whose elements use elem.
// A nil slice encodes as []. Decoding an empty array yields an empty,
// non-nil slice.
func Array[T any](elem Codec[T]) Codec[[]T] { return arrayCodec[T]{elem: elem} }

func (c arrayCodec[T]) Encode(vs []T) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range vs {
		data, err := c.elem.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (c arrayCodec[T]) Decode(data json.RawMessage) ([]T, error) {
	if firstByte(data) != '[' {
		return nil, errNotArray
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, elem := range raw {
		v, err := c.elem.Decode(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Unit is the parameter or result type of commands that carry none.
type Unit struct{}

type voidCodec struct{}

// Void returns the codec for Unit. It encodes to nothing, so the
// "parameters" member is omitted, and decodes anything to Unit.
func Void() Codec[Unit] { return voidCodec{} }

func (voidCodec) Encode(Unit) (json.RawMessage, error) { return nil, nil }
func (voidCodec) Decode(json.RawMessage) (Unit, error) { return Unit{}, nil }

// OptionalURL is a URL that travels as the empty string when absent.
type OptionalURL struct {
	u *url.URL
}

// NewOptionalURL wraps u; a nil u is absent.
func NewOptionalURL(u *url.URL) OptionalURL { return OptionalURL{u: u} }

// ParseOptionalURL parses s, treating "" as absent.
func ParseOptionalURL(s string) (OptionalURL, error) {
	if s == "" {
		return OptionalURL{}, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return OptionalURL{}, err
	}
	return OptionalURL{u: u}, nil
}

// URL returns the URL and whether it is present.
func (o OptionalURL) URL() (*url.URL, bool) { return o.u, o.u != nil }

// Valid reports whether a URL is present.
func (o OptionalURL) Valid() bool { return o.u != nil }

// String returns the URL, or "" when absent.
func (o OptionalURL) String() string {
	if o.u == nil {
		return ""
	}
	return o.u.String()
}

// MarshalJSON encodes an absent URL as "".
func (o OptionalURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON treats null and "" as absent.
func (o *OptionalURL) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*o = OptionalURL{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOptionalURL(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
