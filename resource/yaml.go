package resource

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLWriter collects resources and writes them as a single YAML mapping, in
// the order they were added.
type YAMLWriter struct {
	w         io.Writer
	closer    io.Closer
	entries   yaml.MapSlice
	keys      keySet
	generated bool
	closed    bool
}

// NewYAMLWriter writes the bundle to w. Closing the writer does not close w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w, keys: keySet{}}
}

// CreateYAMLFile creates (or truncates) path and writes the bundle to it.
func CreateYAMLFile(path string) (*YAMLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create resource file: %w", err)
	}
	w := NewYAMLWriter(f)
	w.closer = f
	return w, nil
}

// AddResource records key and value. Accepted resources stay in the writer
// even when a later call fails.
func (w *YAMLWriter) AddResource(key string, value string) error {
	if w.generated {
		return ErrGenerated
	}
	if err := w.keys.admit(key, value); err != nil {
		return err
	}
	w.entries = append(w.entries, yaml.MapItem{Key: key, Value: value})
	return nil
}

// Generate writes every accepted resource. It can only run once.
func (w *YAMLWriter) Generate() error {
	if w.generated {
		return ErrGenerated
	}
	w.generated = true
	out := []byte("{}\n")
	if len(w.entries) > 0 {
		var err error
		out, err = yaml.Marshal(w.entries)
		if err != nil {
			return fmt.Errorf("marshal resources: %w", err)
		}
	}
	if _, err := w.w.Write(out); err != nil {
		return fmt.Errorf("write resources: %w", err)
	}
	return nil
}

// Close generates the bundle if that has not happened yet and closes the
// underlying file, if the writer owns one.
func (w *YAMLWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var err error
	if !w.generated {
		err = w.Generate()
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Len returns the number of accepted resources.
func (w *YAMLWriter) Len() int {
	return len(w.entries)
}
