package converter

import "fmt"

// CatalogError reports a resource the sink refused. It names the catalog
// entry so the failure can be traced back to the input files.
type CatalogError struct {
	Key          string
	SourceString string
	Context      string
	err          error
}

func newCatalogError(key string, sourceString string, context string, err error) error {
	return &CatalogError{Key: key, SourceString: sourceString, Context: context, err: err}
}

func (ce *CatalogError) Error() string {
	if ce.Context != "" {
		return fmt.Sprintf("cannot add resource for msgid %q (msgctxt %q): %v", ce.SourceString, ce.Context, ce.err)
	}
	return fmt.Sprintf("cannot add resource for msgid %q: %v", ce.SourceString, ce.err)
}

func (ce *CatalogError) Unwrap() error {
	return ce.err
}
