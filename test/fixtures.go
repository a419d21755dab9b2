package test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// POEntry is one message of a generated PO fixture.
type POEntry struct {
	Context   string
	ID        string
	IDPlural  string
	Str       string
	StrPlural []string
	Fuzzy     bool
}

// POFile builds the text of a PO file with a header for lang.
func POFile(lang string, entries ...POEntry) string {
	var b strings.Builder
	b.WriteString("msgid \"\"\nmsgstr \"\"\n")
	if lang != "" {
		fmt.Fprintf(&b, "\"Language: %s\\n\"\n", lang)
	}
	b.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n")
	for _, e := range entries {
		b.WriteString("\n")
		if e.Fuzzy {
			b.WriteString("#, fuzzy\n")
		}
		if e.Context != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", e.Context)
		}
		fmt.Fprintf(&b, "msgid %q\n", e.ID)
		if e.IDPlural != "" {
			fmt.Fprintf(&b, "msgid_plural %q\n", e.IDPlural)
			for i, s := range e.StrPlural {
				fmt.Fprintf(&b, "msgstr[%d] %q\n", i, s)
			}
			continue
		}
		fmt.Fprintf(&b, "msgstr %q\n", e.Str)
	}
	return b.String()
}

// WritePO writes a PO fixture into dir and returns its path.
func WritePO(dir string, name string, lang string, entries ...POEntry) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(POFile(lang, entries...)), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
