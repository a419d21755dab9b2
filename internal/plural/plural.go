// Package plural selects CLDR plural categories for integer counts.
// Category names: "zero", "one", "two", "few", "many", "other".
package plural

import "strings"

// Order is the canonical order of the CLDR categories.
var Order = []string{"zero", "one", "two", "few", "many", "other"}

type rule func(n int) string

var rules = map[string]rule{}

func register(r rule, langs ...string) {
	for _, lang := range langs {
		rules[lang] = r
	}
}

func init() {
	register(formArabic, "ar")
	register(formRussian, "ru", "uk", "be", "sr", "hr", "bs", "sh")
	register(formPolish, "pl")
	register(formCzech, "cs", "sk")
	register(formWelsh, "cy", "br", "ga", "gd", "gv", "kw", "mt", "sm", "ak")
	register(formHebrew, "he", "iw")
	register(formOneOther, "en", "es", "fr", "de", "it", "pt", "nl", "no", "nb", "nn", "sv", "da", "fi", "el", "hu", "tr", "hi", "et", "bg", "ca", "eu", "gl")
	register(formOther, "ja", "ko", "zh", "th", "vi", "id", "ms")
}

// Base reduces a tag to its language subtag ("en-US", "pt_BR" -> "en", "pt").
func Base(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(base, "-_.@"); idx > 0 {
		base = base[:idx]
	}
	return base
}

// Known reports whether the language has a registered rule.
func Known(lang string) bool {
	_, ok := rules[Base(lang)]
	return ok
}

// Form returns the plural category for count in lang. Unknown languages
// always get "other".
func Form(lang string, count int) string {
	n := count
	if n < 0 {
		n = -n
	}
	r, ok := rules[Base(lang)]
	if !ok {
		return "other"
	}
	return r(n)
}

// Categories lists, in canonical order, the categories integer counts can
// reach in lang. Its length is the number of translated forms a plural
// message needs.
func Categories(lang string) []string {
	seen := map[string]bool{}
	for n := 0; n < 200; n++ {
		seen[Form(lang, n)] = true
	}
	out := make([]string, 0, len(seen))
	for _, category := range Order {
		if seen[category] {
			out = append(out, category)
		}
	}
	return out
}

func formOther(n int) string {
	return "other"
}

func formOneOther(n int) string {
	if n == 1 {
		return "one"
	}
	return "other"
}

func formArabic(n int) string {
	switch {
	case n == 0:
		return "zero"
	case n == 1:
		return "one"
	case n == 2:
		return "two"
	case n%100 >= 3 && n%100 <= 10:
		return "few"
	case n%100 >= 11 && n%100 <= 99:
		return "many"
	}
	return "other"
}

func formRussian(n int) string {
	n10 := n % 10
	n100 := n % 100
	if n10 == 1 && n100 != 11 {
		return "one"
	}
	if n10 >= 2 && n10 <= 4 && (n100 < 12 || n100 > 14) {
		return "few"
	}
	return "many"
}

func formPolish(n int) string {
	if n == 1 {
		return "one"
	}
	n10 := n % 10
	n100 := n % 100
	if n10 >= 2 && n10 <= 4 && (n100 < 12 || n100 > 14) {
		return "few"
	}
	return "many"
}

func formCzech(n int) string {
	switch {
	case n == 1:
		return "one"
	case n >= 2 && n <= 4:
		return "few"
	}
	return "other"
}

func formWelsh(n int) string {
	switch n {
	case 0:
		return "zero"
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "few"
	case 6:
		return "many"
	}
	return "other"
}

func formHebrew(n int) string {
	switch {
	case n == 1:
		return "one"
	case n == 2:
		return "two"
	case n >= 3 && n <= 10:
		return "few"
	case n >= 11 && n <= 99:
		return "many"
	}
	return "other"
}
