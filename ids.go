package popupkit

import (
	"strings"
	"unicode"
)

// SlugID derives a stable identifier from a display label: lowercase, with
// every run of non-alphanumeric characters collapsed to a single underscore
// and camelCase boundaries split ("DarkMode" becomes "dark_mode"). Letters
// and digits from any script are kept. Leading and trailing underscores are
// trimmed.
func SlugID(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	pendingSep := false
	prev := rune(0)
	for _, r := range label {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 {
				pendingSep = true
			}
			prev = r
			continue
		}
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			pendingSep = true
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
