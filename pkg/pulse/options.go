package pulse

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicateChannel is returned when a channel key is registered twice
var ErrDuplicateChannel = errors.New("duplicate pulse parameter channel")

// Shape is an opaque handle to the parameters a pulse sequence event exposes
// on a channel. The option registry stores shapes without interpreting them.
type Shape interface {
	ShapeName() string
}

// OptionRegistry maps channel keys to pulse parameter shapes in registration order
type OptionRegistry struct {
	keys   []string
	shapes map[string]Shape
}

// NewOptionRegistry creates an empty option registry
func NewOptionRegistry() *OptionRegistry {
	return &OptionRegistry{
		shapes: make(map[string]Shape),
	}
}

// AddPulseParameterOption registers shape under channel
func (r *OptionRegistry) AddPulseParameterOption(channel string, shape Shape) error {
	if channel == "" {
		return fmt.Errorf("channel key must not be empty")
	}
	if _, exists := r.shapes[channel]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateChannel, channel)
	}

	r.keys = append(r.keys, channel)
	r.shapes[channel] = shape
	return nil
}

// GetOptions returns a snapshot of the registered channels
func (r *OptionRegistry) GetOptions() Options {
	shapes := make(map[string]Shape, len(r.shapes))
	for k, v := range r.shapes {
		shapes[k] = v
	}
	return Options{
		keys:   slices.Clone(r.keys),
		shapes: shapes,
	}
}

// Options is an immutable, ordered channel to shape mapping
type Options struct {
	keys   []string
	shapes map[string]Shape
}

// Len returns the number of channels
func (o Options) Len() int { return len(o.keys) }

// Keys returns the channel keys in registration order
func (o Options) Keys() []string { return slices.Clone(o.keys) }

// Get returns the shape registered for channel
func (o Options) Get(channel string) (Shape, bool) {
	shape, ok := o.shapes[channel]
	return shape, ok
}

// All yields channel and shape pairs in registration order
func (o Options) All() iter.Seq2[string, Shape] {
	return func(yield func(string, Shape) bool) {
		for _, k := range o.keys {
			if !yield(k, o.shapes[k]) {
				return
			}
		}
	}
}

// Equal reports whether both snapshots hold the same channels, in the same order, with the same shapes
func (o Options) Equal(other Options) bool {
	if !slices.Equal(o.keys, other.keys) {
		return false
	}
	for _, k := range o.keys {
		if o.shapes[k] != other.shapes[k] {
			return false
		}
	}
	return true
}
