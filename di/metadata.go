package di

import (
	"fmt"
	"reflect"
)

// Registry supplies metadata values for exported parts.
//
// It is intentionally:
// - read-only
// - side effect free
// - consulted once per export, at registration time
//
// Expected usage:
//
//	val, ok, err := reg.Resolve("CarBMW", "Price")
type Registry interface {
	Resolve(part, field string) (val any, ok bool, err error)
}

// MetadataFunc computes the metadata view of a part from its name.
type MetadataFunc[M any] func(part string) (M, error)

type metadataKey struct {
	part  string
	field string
}

// MapRegistry is a simple in-memory registry keyed by (part, field).
type MapRegistry struct {
	items map[metadataKey]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[metadataKey]any{}}
}

// Provide stores a value for part.field and returns the registry for chaining.
func (r *MapRegistry) Provide(part, field string, val any) *MapRegistry {
	r.items[metadataKey{part: part, field: field}] = val
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(part, field string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[metadataKey{part: part, field: field}]
	return v, ok, nil
}

// Get returns the value if present.
func (r *MapRegistry) Get(part, field string) (any, bool) {
	v, ok := r.items[metadataKey{part: part, field: field}]
	return v, ok
}

// MustGet returns the value or panics.
func (r *MapRegistry) MustGet(part, field string) any {
	v, ok := r.Get(part, field)
	if !ok {
		panic(fmt.Errorf("di: registry missing %q", part+"."+field))
	}
	return v
}

// Field reads part.field from reg as a V.
//
// A nil registry or a missing key yields def. A stored value of another type
// yields a MetadataTypeError; values are never converted.
func Field[V any](reg Registry, part, field string, def V) (V, error) {
	if reg == nil {
		return def, nil
	}
	raw, ok, err := reg.Resolve(part, field)
	if err != nil {
		return def, err
	}
	if !ok || raw == nil {
		return def, nil
	}
	v, ok := raw.(V)
	if !ok {
		return def, MetadataTypeError{
			Part:  part,
			Field: field,
			Want:  reflect.TypeFor[V]().String(),
			Got:   reflect.TypeOf(raw).String(),
		}
	}
	return v, nil
}
