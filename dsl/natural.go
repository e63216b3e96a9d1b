package dsl

import (
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// ParseNatural decodes the one-line confirmation form:
//
//	confirm Delete file? with Yes or No
//	Proceed? with Continue or Abort
//	Delete file? Yes or No
//
// The title is everything before the "with" clause, or before the question
// mark in the keywordless form; button labels are the or-separated phrase
// after it. A confirm title gains a trailing question mark when the author
// left it off.
func ParseNatural(input string) (*popupkit.PopupDefinition, error) {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil, popupkit.AppendIssues(nil, popupkit.IssueAtLine(1, 1, popupkit.CodeMalformedInput, "empty confirmation"))
	}

	confirmed := false
	if rest, ok := strings.CutPrefix(line, "confirm "); ok {
		confirmed = true
		line = strings.TrimSpace(rest)
	}

	title := line
	var labels []string
	if before, after, ok := strings.Cut(line, " with "); ok {
		title = strings.TrimSpace(before)
		labels = splitButtonPhrase(after)
	} else if q := strings.IndexByte(line, '?'); q >= 0 && q < len(line)-1 {
		// Keywordless form: the question mark ends the title, the remainder
		// is the button phrase. "Delete file? Yes or No"
		if rest := strings.TrimSpace(line[q+1:]); strings.Contains(rest, " or ") {
			title = strings.TrimSpace(line[:q+1])
			labels = splitButtonPhrase(rest)
		}
	}
	if title == "" {
		return nil, popupkit.AppendIssues(nil, popupkit.IssueAtLine(1, 1, popupkit.CodeMalformedInput, "confirmation needs a question before the button clause"))
	}
	if confirmed && !strings.HasSuffix(title, "?") {
		title += "?"
	}

	var elems []popupkit.Element
	if len(labels) > 0 {
		elems = append(elems, popupkit.Element{Kind: popupkit.KindButtons, ButtonLabels: labels})
	}
	elems = ensureButtonSafety(elems)

	def := &popupkit.PopupDefinition{Title: title, Elements: elems}
	if err := popupkit.ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

// splitButtonPhrase splits "Yes or No or Maybe" into its labels.
func splitButtonPhrase(phrase string) []string {
	var labels []string
	for _, part := range strings.Split(phrase, " or ") {
		if p := strings.TrimSpace(part); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
