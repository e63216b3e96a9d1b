package dsl

import (
	"fmt"
	"strconv"
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// translateCondition rewrites a dialect condition phrase into the guard
// expression language stored in Element.When. Supported phrases:
//
//	Fog present          -> @fog_present
//	not Fog present      -> !@fog_present
//	Toppings has Cheese  -> selected(@toppings, "Cheese")
//	Theme = Dark         -> selected(@theme, "Dark")
//	Items = 3            -> count(@items) == 3
//	Items >= 2           -> count(@items) >= 2
//
// Text already written in the expression language (it references values with
// @) passes through untouched, so serialized trees re-parse cleanly.
func translateCondition(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "@") {
		return text
	}
	if rest, ok := strings.CutPrefix(text, "not "); ok {
		return "!@" + condSlug(rest)
	}
	if field, value, ok := strings.Cut(text, " has "); ok {
		return fmt.Sprintf("selected(@%s, %q)", condSlug(field), strings.TrimSpace(value))
	}
	// Longer operators first so ">=" never matches as ">".
	for _, op := range []string{" >= ", " <= ", " > ", " < ", " = "} {
		field, value, ok := strings.Cut(text, op)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		exprOp := strings.TrimSpace(op)
		if exprOp == "=" {
			exprOp = "=="
		}
		if _, err := strconv.Atoi(value); err == nil {
			return fmt.Sprintf("count(@%s) %s %s", condSlug(field), exprOp, value)
		}
		if exprOp == "==" {
			return fmt.Sprintf("selected(@%s, %q)", condSlug(field), value)
		}
		return fmt.Sprintf("@%s %s %q", condSlug(field), exprOp, value)
	}
	return "@" + condSlug(text)
}

// condSlug normalizes a condition's field reference: trailing colons dropped,
// then the same slug rule used for inferred element ids.
func condSlug(label string) string {
	return popupkit.SlugID(strings.TrimSuffix(strings.TrimSpace(label), ":"))
}
