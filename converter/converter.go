// Package converter merges translation catalogs and writes the result into a
// resource bundle.
package converter

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Jklawreszuk/gettext-net/catalog"
	"github.com/Jklawreszuk/gettext-net/resource"
)

// Loader reads one catalog file.
type Loader func(path string) (*catalog.Catalog, error)

// Converter runs the load, merge and emit pipeline. It holds no state between
// runs.
type Converter struct {
	load     Loader
	policy   catalog.MergePolicy
	useFuzzy bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLoader replaces the PO file loader.
func WithLoader(l Loader) Option {
	return func(c *Converter) {
		c.load = l
	}
}

// WithMergePolicy sets how duplicate keys across input files are handled.
// The default is catalog.MergeOverwrite.
func WithMergePolicy(p catalog.MergePolicy) Option {
	return func(c *Converter) {
		c.policy = p
	}
}

// WithUseFuzzy makes fuzzy translations count as translated.
func WithUseFuzzy(useFuzzy bool) Option {
	return func(c *Converter) {
		c.useFuzzy = useFuzzy
	}
}

// New returns a Converter reading PO files and overwriting duplicates.
func New(opts ...Option) *Converter {
	c := &Converter{
		load:   catalog.LoadPO,
		policy: catalog.MergeOverwrite,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Merge loads every input in order into a fresh catalog. The first file that
// cannot be loaded aborts the merge.
func (c *Converter) Merge(inputs []string) (*catalog.Catalog, error) {
	merged := catalog.New()
	for _, path := range inputs {
		cat, err := c.load(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		collisions := merged.Append(cat, c.policy)
		log.Debug().
			Str("file", path).
			Int("entries", cat.Len()).
			Int("duplicates", len(collisions)).
			Msg("Merged catalog")
		for _, key := range collisions {
			log.Debug().Str("file", path).Str("key", key).Str("policy", c.policy.String()).Msg("Duplicate catalog entry")
		}
	}
	return merged, nil
}

// Emit writes every entry of cat into sink, in catalog order. It stops at the
// first rejected resource and returns a *CatalogError for it.
func (c *Converter) Emit(cat *catalog.Catalog, sink resource.Sink) error {
	for _, e := range cat.Entries() {
		key := e.Key()
		if err := sink.AddResource(key, e.Value(c.useFuzzy)); err != nil {
			return newCatalogError(key, e.SourceString, e.Context, err)
		}
	}
	return nil
}

// Run merges inputs and writes the result into sink, then generates the
// bundle. The sink is closed on every path, including failures.
func (c *Converter) Run(inputs []string, sink resource.Sink) (err error) {
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close resource sink: %w", cerr)
		}
	}()

	merged, err := c.Merge(inputs)
	if err != nil {
		return err
	}
	if err := c.Emit(merged, sink); err != nil {
		return err
	}
	if err := sink.Generate(); err != nil {
		return fmt.Errorf("generate resources: %w", err)
	}
	log.Debug().Int("inputs", len(inputs)).Int("resources", merged.Len()).Msg("Generated resources")
	return nil
}
