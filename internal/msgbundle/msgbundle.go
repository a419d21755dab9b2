// Package msgbundle loads small per-language YAML message sets and renders them
// with named {{param}} placeholders.
package msgbundle

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

var placeholderRegex = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Messages is the content of one language file.
type Messages struct {
	Default string            `yaml:"default"`
	Set     map[string]string `yaml:"set"`
}

// Params are the named values substituted into a message.
type Params map[string]interface{}

// Bundle holds the messages of every loaded language.
type Bundle struct {
	messages map[string]Messages
	langs    []string
	matcher  language.Matcher
}

// Load reads every *.yaml file in dir. The file name (without extension) is the
// language tag. The default language must be present.
func Load(fsys fs.FS, dir string) (*Bundle, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	messageByLang := map[string]Messages{}
	for _, file := range files {
		fileName := file.Name()
		if file.IsDir() || !strings.HasSuffix(fileName, ".yaml") {
			continue
		}
		lang := NormalizeLangTag(strings.TrimSuffix(fileName, ".yaml"))
		data, err := fs.ReadFile(fsys, path.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		var messages Messages
		if err := yaml.UnmarshalStrict(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal messages for %s: %w", lang, err)
		}
		if messages.Default == "" {
			return nil, fmt.Errorf("invalid default message for language %s: text is required", lang)
		}
		if messages.Set == nil {
			messages.Set = map[string]string{}
		}
		messageByLang[lang] = messages
	}
	if _, found := messageByLang[DefaultLanguage]; !found {
		return nil, fmt.Errorf("messages for default language %s not found in %s", DefaultLanguage, dir)
	}

	// The matcher falls back to its first tag, so the default language leads.
	langs := make([]string, 0, len(messageByLang))
	for lang := range messageByLang {
		if lang != DefaultLanguage {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{DefaultLanguage}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language tag %q: %w", lang, err)
		}
		tags = append(tags, tag)
	}

	return &Bundle{
		messages: messageByLang,
		langs:    langs,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Languages lists the loaded languages, default first.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.langs))
	copy(out, b.langs)
	return out
}

// Match picks the loaded language closest to requested. Requested may be a
// BCP 47 tag or a POSIX locale such as "de_DE.UTF-8@euro".
func (b *Bundle) Match(requested string) string {
	lang := NormalizeLangTag(requested)
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	if _, found := b.messages[lang]; found {
		return lang
	}
	if _, found := b.messages[baseLangTag(lang)]; found {
		return baseLangTag(lang)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, confidence := b.matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(b.langs) {
		return DefaultLanguage
	}
	return b.langs[idx]
}

// Get renders the message key in lang. Unknown languages use the default
// language; unknown keys render the language's default message.
func (b *Bundle) Get(lang string, key string, params Params) string {
	messages, found := b.messages[b.Match(lang)]
	if !found {
		messages = b.messages[DefaultLanguage]
	}
	tpl, found := messages.Set[key]
	if !found {
		tpl = messages.Default
		params = Params{"key": key}
	}
	return render(tpl, params)
}

func render(tpl string, params Params) string {
	return placeholderRegex.ReplaceAllStringFunc(tpl, func(token string) string {
		matches := placeholderRegex.FindStringSubmatch(token)
		if len(matches) != 2 {
			return token
		}
		value, ok := params[matches[1]]
		if !ok {
			return token
		}
		return fmt.Sprintf("%v", value)
	})
}

// NormalizeLangTag lower-cases a tag, strips POSIX encoding and modifier
// suffixes and uses '-' as the subtag separator.
func NormalizeLangTag(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if idx := strings.IndexAny(lang, ".@"); idx >= 0 {
		lang = lang[:idx]
	}
	return strings.ReplaceAll(lang, "_", "-")
}

func baseLangTag(lang string) string {
	if idx := strings.Index(lang, "-"); idx > 0 {
		return lang[:idx]
	}
	return lang
}
