package osc

import "strings"

// SupportSuffix is appended to an option name to form the name of the
// companion option listing its legal values.
const SupportSuffix = "Support"

// SupportName returns the name of the support option for name.
func SupportName(name string) string { return name + SupportSuffix }

// IsSupportName reports whether name follows the support option convention.
func IsSupportName(name string) bool {
	return len(name) > len(SupportSuffix) && strings.HasSuffix(name, SupportSuffix)
}

// Named is implemented by every option flavour. The name is the wire key.
type Named interface {
	Name() string
}

// Option is a scalar device setting of type T.
type Option[T any] struct {
	name  string
	codec Codec[T]
}

// NewOption creates a scalar option. Options are meant to be created once
// and held in package-level variables.
func NewOption[T any](name string, codec Codec[T]) Option[T] {
	return Option[T]{name: name, codec: codec}
}

// Name returns the wire key of the option.
func (o Option[T]) Name() string { return o.name }

// Codec returns the codec used for the option value.
func (o Option[T]) Codec() Codec[T] { return o.codec }

// String returns the wire key.
func (o Option[T]) String() string { return o.name }

// Get decodes the option from set. ok is false when set has no entry for
// the option; a present entry that does not decode is a *DecodeError.
func (o Option[T]) Get(set OptionSet) (v T, ok bool, err error) {
	raw, ok := set.Raw(o.name)
	if !ok {
		return v, false, nil
	}
	v, err = o.codec.Decode(raw)
	if err != nil {
		return v, true, decodeErr("option "+o.name, err)
	}
	return v, true, nil
}

// Put encodes v into the builder, replacing any previous value.
func (o Option[T]) Put(b *OptionSetBuilder, v T) {
	raw, err := o.codec.Encode(v)
	b.put(o.name, raw, err)
}

// ArrayOption is a device setting whose value is a JSON array of T.
type ArrayOption[T any] struct {
	name string
	elem Codec[T]
}

// NewArrayOption creates an array option with the given element codec.
func NewArrayOption[T any](name string, elem Codec[T]) ArrayOption[T] {
	return ArrayOption[T]{name: name, elem: elem}
}

// Name returns the wire key of the option.
func (o ArrayOption[T]) Name() string { return o.name }

// Codec returns the codec for the whole array.
func (o ArrayOption[T]) Codec() Codec[[]T] { return Array(o.elem) }

// String returns the wire key.
func (o ArrayOption[T]) String() string { return o.name }

// Get decodes each array element. An empty array is returned as an empty
// slice with ok set; absence is reported with ok false.
func (o ArrayOption[T]) Get(set OptionSet) (vs []T, ok bool, err error) {
	raw, ok := set.Raw(o.name)
	if !ok {
		return nil, false, nil
	}
	vs, err = Array(o.elem).Decode(raw)
	if err != nil {
		return nil, true, decodeErr("option "+o.name, err)
	}
	return vs, true, nil
}

// Put encodes vs into the builder, replacing any previous value.
func (o ArrayOption[T]) Put(b *OptionSetBuilder, vs []T) {
	raw, err := Array(o.elem).Encode(vs)
	b.put(o.name, raw, err)
}

// Names returns the wire keys of opts in order.
func Names(opts ...Named) []string {
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.Name()
	}
	return names
}

var (
	_ Named = Option[int]{}
	_ Named = ArrayOption[int]{}
)
