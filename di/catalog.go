package di

import (
	"fmt"
	"strings"

	"github.com/sghaida/carsample/logger"
)

// CreationPolicy controls how many instances an export produces.
type CreationPolicy int

const (
	// NonShared builds a fresh instance for every handle.
	NonShared CreationPolicy = iota
	// Shared builds one instance per catalog part, reused by every handle.
	Shared
)

// String returns the policy name used in logs.
func (p CreationPolicy) String() string {
	switch p {
	case NonShared:
		return "non-shared"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("CreationPolicy(%d)", int(p))
	}
}

// ExportOption customizes a single export.
type ExportOption func(*exportConfig)

type exportConfig struct {
	policy CreationPolicy
}

// WithCreationPolicy sets the creation policy of an export. The default is NonShared.
func WithCreationPolicy(p CreationPolicy) ExportOption {
	return func(c *exportConfig) { c.policy = p }
}

type export[C any, M any] struct {
	part    string
	factory func() C
	meta    M
	policy  CreationPolicy

	// shared is only set for Shared exports.
	shared *Lazy[C, M]
}

// Catalog holds every part exported under one contract C, each with metadata M.
//
// Parts keep their export order; Many and Parts return them in that order.
// A Catalog is built once at startup and is not safe for concurrent Export calls.
type Catalog[C any, M any] struct {
	contract string
	meta     MetadataFunc[M]
	exports  []*export[C, M]
	index    map[string]int
	log      *logger.Logger
}

// NewCatalog creates an empty catalog for contract. meta computes the metadata
// of each exported part; a nil meta leaves metadata at its zero value.
func NewCatalog[C any, M any](contract string, meta MetadataFunc[M]) *Catalog[C, M] {
	return &Catalog[C, M]{
		contract: contract,
		meta:     meta,
		index:    make(map[string]int),
		log: logger.WithComponent("catalog").WithFields(logger.Fields(
			logger.FieldContract, contract,
		)),
	}
}

// Contract returns the contract name the catalog was created for.
func (c *Catalog[C, M]) Contract() string { return c.contract }

// Export registers part as a provider of C. Metadata is computed now.
func (c *Catalog[C, M]) Export(part string, factory func() C, opts ...ExportOption) error {
	if strings.TrimSpace(part) == "" {
		return ErrEmptyPart
	}
	if factory == nil {
		return NilFactoryError{Part: part}
	}
	if _, exists := c.index[part]; exists {
		return DuplicateExportError{Contract: c.contract, Part: part}
	}

	cfg := exportConfig{policy: NonShared}
	for _, opt := range opts {
		opt(&cfg)
	}

	var meta M
	if c.meta != nil {
		m, err := c.meta(part)
		if err != nil {
			c.log.Warn("metadata computation failed", logger.ErrorFields("export", err), logger.Fields(logger.FieldPart, part))
			return fmt.Errorf("export %s: %w", part, err)
		}
		meta = m
	}

	e := &export[C, M]{part: part, factory: factory, meta: meta, policy: cfg.policy}
	if cfg.policy == Shared {
		e.shared = NewLazy(part, factory, meta)
	}

	c.index[part] = len(c.exports)
	c.exports = append(c.exports, e)

	c.log.Debug("part exported", logger.Fields(
		logger.FieldPart, part,
		logger.FieldPolicy, cfg.policy.String(),
	))
	return nil
}

// MustExport is Export for composition roots; it panics on error.
func (c *Catalog[C, M]) MustExport(part string, factory func() C, opts ...ExportOption) *Catalog[C, M] {
	if err := c.Export(part, factory, opts...); err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of exported parts.
func (c *Catalog[C, M]) Len() int { return len(c.exports) }

// Parts returns the exported part names in export order.
func (c *Catalog[C, M]) Parts() []string {
	out := make([]string, 0, len(c.exports))
	for _, e := range c.exports {
		out = append(out, e.part)
	}
	return out
}

// Many returns one new handle per exported part, in export order.
//
// Nothing is constructed here. Each call returns independent handles, so two
// collections resolved from the same catalog never share NonShared instances.
func (c *Catalog[C, M]) Many() []*Lazy[C, M] {
	out := make([]*Lazy[C, M], 0, len(c.exports))
	for _, e := range c.exports {
		out = append(out, c.handle(e))
	}
	c.log.Debug("many resolved", logger.Fields("count", len(out)))
	return out
}

// Get returns a new handle for a single part.
func (c *Catalog[C, M]) Get(part string) (*Lazy[C, M], error) {
	i, ok := c.index[part]
	if !ok {
		return nil, MissingExportError{Contract: c.contract, Part: part}
	}
	return c.handle(c.exports[i]), nil
}

func (c *Catalog[C, M]) handle(e *export[C, M]) *Lazy[C, M] {
	factory := e.factory
	if e.shared != nil {
		factory = e.shared.Value
	}
	h := NewLazy(e.part, factory, e.meta)

	c.log.Debug("handle created", logger.Fields(
		logger.FieldPart, e.part,
		logger.FieldHandle, h.ID(),
	))
	return h
}
