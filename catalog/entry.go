package catalog

// ContextSeparator joins a message context and its source string into a key,
// as GNU gettext does in compiled catalogs.
const ContextSeparator = "\x04"

// Entry is one translatable message.
type Entry struct {
	SourceString string
	PluralSource string
	Context      string
	// Translations holds the translated forms; index 0 is the primary one.
	Translations []string
	Fuzzy        bool
	References   []string
	// Line is the line the entry starts on in its catalog file, 0 when unknown.
	Line int
}

// Key identifies the entry: the source string, prefixed by the context when
// one is set.
func (e Entry) Key() string {
	if e.Context == "" {
		return e.SourceString
	}
	return e.Context + ContextSeparator + e.SourceString
}

// IsTranslated reports whether at least one translation is non-empty.
func (e Entry) IsTranslated() bool {
	for _, t := range e.Translations {
		if t != "" {
			return true
		}
	}
	return false
}

// Value is the string emitted for the entry: the primary translation when the
// entry is translated, the source string otherwise. Fuzzy translations count
// only when useFuzzy is set.
func (e Entry) Value(useFuzzy bool) string {
	if !e.IsTranslated() || (e.Fuzzy && !useFuzzy) {
		return e.SourceString
	}
	return e.Translations[0]
}
