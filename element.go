package popupkit

import "sort"

// Kind identifies an Element variant. The set is closed; parsers reject
// anything outside it with CodeUnknownWidget.
type Kind int

const (
	KindText      Kind = iota // static text line
	KindMarkdown              // static markdown block
	KindSlider                // numeric range input
	KindCheck                 // boolean toggle
	KindInput                 // single- or multi-line text input
	KindSelect                // choice list, single selection
	KindMulti                 // choice list, multiple selection
	KindGroup                 // labeled group of sub-elements
	KindButtons               // action button row
	KindCondition             // display guard over a block of elements
)

var kindTags = map[Kind]string{
	KindText:      "text",
	KindMarkdown:  "markdown",
	KindSlider:    "slider",
	KindCheck:     "check",
	KindInput:     "input",
	KindSelect:    "select",
	KindMulti:     "multi",
	KindGroup:     "group",
	KindButtons:   "buttons",
	KindCondition: "condition",
}

// String returns the canonical JSON tag for the kind.
func (k Kind) String() string {
	if s, ok := kindTags[k]; ok {
		return s
	}
	return "unknown"
}

// Option is one entry of a choice-bearing element: a label with an optional
// description.
type Option struct {
	Label       string
	Description string
}

// Element is one node of the canonical tree. Exactly the fields relevant to
// Kind are populated; the rest stay zero.
//
// Reveals holds children shown only while the element's own value is truthy
// or selected. OptionChildren maps a specific option label to children shown
// only while that option is selected. Both are initialized eagerly by
// DeriveState regardless of current visibility.
type Element struct {
	Kind  Kind
	ID    string // unique across the entire tree, including every branch
	Label string // display label, or text content for text/markdown
	When  string // display guard expression; empty means always visible

	Reveals        []Element
	OptionChildren map[string][]Element

	Options []Option // select, multi

	Min     float64  // slider
	Max     float64  // slider
	Default *float64 // slider; nil means use the midpoint

	DefaultChecked bool   // check
	DefaultOption  string // select; default option by label, empty means none

	Placeholder string // input
	Rows        int    // input; 0 or 1 means single line

	Elements []Element // group members

	ButtonLabels []string // buttons
}

// PopupDefinition is the canonical tree root.
type PopupDefinition struct {
	Title    string
	Elements []Element
}

// HasValue reports whether the element contributes an entry to the derived
// state.
func (e *Element) HasValue() bool {
	switch e.Kind {
	case KindSlider, KindCheck, KindInput, KindSelect, KindMulti:
		return true
	}
	return false
}

// optionIndex returns the position of the option with the given label, or -1.
func (e *Element) optionIndex(label string) int {
	for i, o := range e.Options {
		if o.Label == label {
			return i
		}
	}
	return -1
}

// childLists visits every child-element list of e in a deterministic order:
// reveals first, then option children in option declaration order (unknown
// keys last, sorted), then group members.
func (e *Element) childLists(fn func([]Element)) {
	if len(e.Reveals) > 0 {
		fn(e.Reveals)
	}
	for _, key := range e.optionChildKeys() {
		fn(e.OptionChildren[key])
	}
	if len(e.Elements) > 0 {
		fn(e.Elements)
	}
}

func (e *Element) optionChildKeys() []string {
	if len(e.OptionChildren) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.OptionChildren))
	seen := make(map[string]bool, len(e.OptionChildren))
	for _, o := range e.Options {
		if _, ok := e.OptionChildren[o.Label]; ok && !seen[o.Label] {
			keys = append(keys, o.Label)
			seen[o.Label] = true
		}
	}
	rest := make([]string, 0, len(e.OptionChildren))
	for k := range e.OptionChildren {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
