package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Jklawreszuk/gettext-net/internal/plural"
)

var npluralsRegex = regexp.MustCompile(`nplurals\s*=\s*(\d+)`)

// Finding is a problem Check found in a catalog entry.
type Finding struct {
	Key     string
	Line    int
	Message string
}

func (f Finding) String() string {
	key := strings.ReplaceAll(f.Key, ContextSeparator, "|")
	if f.Line > 0 {
		return fmt.Sprintf("line %d: %q: %s", f.Line, key, f.Message)
	}
	return fmt.Sprintf("%q: %s", key, f.Message)
}

// PluralCount is the number of translated forms a plural entry needs: the
// nplurals value of the Plural-Forms header when present, otherwise the
// number of CLDR categories of the catalog language.
func (c *Catalog) PluralCount() int {
	if m := npluralsRegex.FindStringSubmatch(c.PluralForms); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return len(plural.Categories(c.Language))
}

// Check runs the consistency checks msgfmt -c performs on translated entries:
// plural entries must carry every form, and leading or trailing newlines must
// agree between the source and each translation.
func Check(c *Catalog) []Finding {
	var findings []Finding
	need := c.PluralCount()
	for _, e := range c.entries {
		if !e.IsTranslated() {
			continue
		}
		add := func(format string, args ...interface{}) {
			findings = append(findings, Finding{Key: e.Key(), Line: e.Line, Message: fmt.Sprintf(format, args...)})
		}
		if e.PluralSource != "" && len(e.Translations) < need {
			add("plural entry has %d translation(s), language %q needs %d", len(e.Translations), c.Language, need)
		}
		if e.PluralSource == "" && len(e.Translations) > 1 {
			add("singular entry has %d translations", len(e.Translations))
		}
		for i, t := range e.Translations {
			if t == "" {
				continue
			}
			if strings.HasPrefix(e.SourceString, "\n") != strings.HasPrefix(t, "\n") {
				add("source and translation %d do not both begin with a newline", i)
			}
			if strings.HasSuffix(e.SourceString, "\n") != strings.HasSuffix(t, "\n") {
				add("source and translation %d do not both end with a newline", i)
			}
		}
	}
	return findings
}
