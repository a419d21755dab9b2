package getopt

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// tableFile is the YAML layout of an option table:
//
//	options:
//	  - name: output
//	    has_arg: required
//	    val: o
//	  - name: verbose
//	    flag: true
//	    val: 1
type tableFile struct {
	Options []tableEntry `yaml:"options"`
}

type tableEntry struct {
	Name   string      `yaml:"name"`
	HasArg ArgPolicy   `yaml:"has_arg"`
	Flag   bool        `yaml:"flag"`
	Val    OptionValue `yaml:"val"`
}

// Table is an ordered set of long options loaded from a file. Options declared
// with flag: true get a slot owned by the table.
type Table struct {
	options []*LongOpt
	byName  map[string]*LongOpt
}

// LoadTable reads a YAML option table and builds every descriptor with cfg.
// The first invalid or duplicated option aborts loading.
func LoadTable(r io.Reader, cfg *Config) (*Table, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read option table: %w", err)
	}
	var file tableFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parse option table: %w", err)
	}

	t := &Table{byName: make(map[string]*LongOpt, len(file.Options))}
	for i, entry := range file.Options {
		var flag *int
		if entry.Flag {
			flag = new(int)
		}
		opt, err := NewLongOpt(entry.Name, entry.HasArg, flag, int(entry.Val), cfg)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i+1, err)
		}
		if _, exists := t.byName[opt.Name()]; exists {
			return nil, fmt.Errorf("option %d: duplicate long option %q", i+1, opt.Name())
		}
		t.byName[opt.Name()] = opt
		t.options = append(t.options, opt)
	}
	return t, nil
}

// Options returns the descriptors in declaration order.
func (t *Table) Options() []*LongOpt {
	out := make([]*LongOpt, len(t.options))
	copy(out, t.options)
	return out
}

// Lookup finds an option by exact name.
func (t *Table) Lookup(name string) (*LongOpt, bool) {
	opt, ok := t.byName[name]
	return opt, ok
}

// Len returns the number of options.
func (t *Table) Len() int {
	return len(t.options)
}
