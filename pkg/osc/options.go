package osc

import (
	"context"
	"errors"
)

var errMissingFromResult = errors.New("missing from result")

// GetOptions reads the named options. At least one option is required.
func (c *Client) GetOptions(ctx context.Context, opts ...Named) (OptionSet, error) {
	return c.GetOptionsByName(ctx, Names(opts...)...)
}

// GetOptionsByName reads options by wire name. At least one name is
// required.
func (c *Client) GetOptionsByName(ctx context.Context, names ...string) (OptionSet, error) {
	if len(names) == 0 {
		return OptionSet{}, usageErr("getOptions requires at least one option name")
	}
	result, err := Run(ctx, c, GetOptionsCommand, GetOptionsParams{OptionNames: names})
	if err != nil {
		return OptionSet{}, err
	}
	return result.Options, nil
}

// SetOptions writes every option in set. An empty set is sent as is and
// the camera decides what it means.
func (c *Client) SetOptions(ctx context.Context, set OptionSet) error {
	_, err := Run(ctx, c, SetOptionsCommand, SetOptionsParams{Options: set})
	return err
}

// SetOptionsFunc builds an option set with fn and writes it.
func (c *Client) SetOptionsFunc(ctx context.Context, fn func(b *OptionSetBuilder)) error {
	set, err := BuildOptionSet(fn)
	if err != nil {
		return err
	}
	return c.SetOptions(ctx, set)
}

// GetOption reads a single scalar option. An answer without the option
// is a *DecodeError.
func GetOption[T any](ctx context.Context, c *Client, opt Option[T]) (T, error) {
	var zero T
	set, err := c.GetOptions(ctx, opt)
	if err != nil {
		return zero, err
	}
	v, ok, err := opt.Get(set)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, &DecodeError{What: "option " + opt.Name(), Err: errMissingFromResult}
	}
	return v, nil
}

// GetArrayOption reads a single array option. An answer without the
// option is a *DecodeError.
func GetArrayOption[T any](ctx context.Context, c *Client, opt ArrayOption[T]) ([]T, error) {
	set, err := c.GetOptions(ctx, opt)
	if err != nil {
		return nil, err
	}
	vs, ok, err := opt.Get(set)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &DecodeError{What: "option " + opt.Name(), Err: errMissingFromResult}
	}
	return vs, nil
}

// SetOption writes a single scalar option.
func SetOption[T any](ctx context.Context, c *Client, opt Option[T], v T) error {
	return c.SetOptionsFunc(ctx, func(b *OptionSetBuilder) { opt.Put(b, v) })
}

// SetArrayOption writes a single array option.
func SetArrayOption[T any](ctx context.Context, c *Client, opt ArrayOption[T], vs []T) error {
	return c.SetOptionsFunc(ctx, func(b *OptionSetBuilder) { opt.Put(b, vs) })
}
