// Package catalog holds translation catalogs in memory and merges them.
package catalog

import (
	"fmt"
	"strings"
)

// MergePolicy decides what Append does with an entry whose key is already in
// the catalog.
type MergePolicy int

const (
	// MergeOverwrite replaces the existing entry in place: the last file wins,
	// the key keeps the position of its first occurrence.
	MergeOverwrite MergePolicy = iota
	// MergeSkip keeps the existing entry: the first file wins.
	MergeSkip
	// MergeAppend keeps both entries. A resource sink that enforces unique
	// keys rejects the second one.
	MergeAppend
)

func (p MergePolicy) String() string {
	switch p {
	case MergeOverwrite:
		return "overwrite"
	case MergeSkip:
		return "skip"
	case MergeAppend:
		return "append"
	}
	return fmt.Sprintf("MergePolicy(%d)", int(p))
}

// ParseMergePolicy accepts "overwrite", "skip" or "append".
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overwrite", "last", "":
		return MergeOverwrite, nil
	case "skip", "first":
		return MergeSkip, nil
	case "append", "keep":
		return MergeAppend, nil
	}
	return 0, fmt.Errorf("unknown merge policy %q (want overwrite, skip or append)", s)
}

// Catalog is an ordered collection of entries plus the header metadata of the
// file it came from.
type Catalog struct {
	Language    string
	PluralForms string

	entries []Entry
	index   map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Add inserts e following policy and reports whether its key was already
// present.
func (c *Catalog) Add(e Entry, policy MergePolicy) bool {
	if c.index == nil {
		c.index = map[string]int{}
	}
	key := e.Key()
	pos, exists := c.index[key]
	if !exists {
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, e)
		return false
	}
	switch policy {
	case MergeOverwrite:
		c.entries[pos] = e
	case MergeAppend:
		c.entries = append(c.entries, e)
	}
	return true
}

// Append merges every entry of other into c, in other's order, and returns
// the keys that collided. The first non-empty header metadata is kept.
func (c *Catalog) Append(other *Catalog, policy MergePolicy) []string {
	if other == nil {
		return nil
	}
	if c.Language == "" {
		c.Language = other.Language
	}
	if c.PluralForms == "" {
		c.PluralForms = other.PluralForms
	}
	var collisions []string
	for _, e := range other.entries {
		if c.Add(e, policy) {
			collisions = append(collisions, e.Key())
		}
	}
	return collisions
}

// Entries returns the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry stored for key. With MergeAppend the first
// occurrence is returned.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	pos, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[pos], true
}
