package dsl

import (
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// Parse decodes a popup definition from any supported input format.
// Precedence, first match wins:
//
//  1. input opening a JSON object: strict or ergonomic JSON
//  2. leading `popup "`: the classic bracketed dialect
//  3. a single confirm/with line: the natural language dialect
//  4. anything else: the structured dialect
//
// A recognized envelope commits: its parser's error is returned as-is rather
// than retrying the input against another dialect.
func Parse(data []byte) (*popupkit.PopupDefinition, error) {
	if popupkit.LooksLikeJSON(data) {
		return popupkit.ParseJSON(data)
	}
	input := string(data)
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, `popup "`) {
		return ParseClassic(input)
	}
	if isNaturalLine(trimmed) {
		return ParseNatural(input)
	}
	return ParseSimple(input)
}

// isNaturalLine matches the one-line confirmation form. Multi-line confirm
// input belongs to the structured dialect, which understands the same title
// and button phrases plus widgets.
func isNaturalLine(trimmed string) bool {
	if strings.ContainsRune(trimmed, '\n') {
		return false
	}
	if strings.HasPrefix(trimmed, "confirm ") {
		return true
	}
	if strings.Contains(trimmed, ":") {
		return false
	}
	if strings.Contains(trimmed, " with ") {
		return true
	}
	// Keywordless question: "Delete file? Yes or No".
	q := strings.IndexByte(trimmed, '?')
	return q >= 0 && q < len(trimmed)-1 && strings.Contains(trimmed[q+1:], " or ")
}
