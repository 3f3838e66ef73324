package di

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sghaida/carsample/logger"
)

// Lazy pairs a deferred value with metadata that is available immediately.
//
// The factory runs on the first call to Value and never again for the same
// handle. Metadata never triggers construction.
type Lazy[T any, M any] struct {
	id      string
	part    string
	meta    M
	factory func() T

	once    sync.Once
	val     T
	created bool
}

// NewLazy builds a handle for part. A nil factory yields the zero T.
func NewLazy[T any, M any](part string, factory func() T, meta M) *Lazy[T, M] {
	return &Lazy[T, M]{
		id:      uuid.NewString(),
		part:    part,
		meta:    meta,
		factory: factory,
	}
}

// Value constructs the value on first use and returns the memoized value afterwards.
func (l *Lazy[T, M]) Value() T {
	l.once.Do(func() {
		if l.factory != nil {
			l.val = l.factory()
		}
		l.created = true
		l.factory = nil

		logger.Debug("lazy value created", logger.Fields(
			logger.FieldPart, l.part,
			logger.FieldHandle, l.id,
		))
	})
	return l.val
}

// Metadata returns the handle's metadata without constructing the value.
func (l *Lazy[T, M]) Metadata() M { return l.meta }

// IsValueCreated reports whether Value has run the factory.
func (l *Lazy[T, M]) IsValueCreated() bool { return l.created }

// Part returns the exported part name the handle was created for.
func (l *Lazy[T, M]) Part() string { return l.part }

// ID returns a unique handle id used to correlate log lines.
func (l *Lazy[T, M]) ID() string { return l.id }
