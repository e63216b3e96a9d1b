package dsl

import (
	"fmt"
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// Serialize renders a canonical tree as structured dialect text. Re-parsing
// the output preserves the title and each element's kind and label in order;
// the only additions on a round trip are auto-appended buttons.
func Serialize(def *popupkit.PopupDefinition) string {
	var b strings.Builder
	b.WriteString(def.Title)
	b.WriteString(":\n")
	writeElements(&b, def.Elements, 1)
	return b.String()
}

func writeElements(b *strings.Builder, elems []popupkit.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range elems {
		e := &elems[i]
		switch e.Kind {
		case popupkit.KindText, popupkit.KindMarkdown:
			fmt.Fprintf(b, "%s%s\n", indent, e.Label)

		case popupkit.KindSlider:
			fmt.Fprintf(b, "%s%s: %s-%s", indent, e.Label, formatNum(e.Min), formatNum(e.Max))
			if e.Default != nil {
				fmt.Fprintf(b, " = %s", formatNum(*e.Default))
			}
			b.WriteString("\n")

		case popupkit.KindCheck:
			word := "no"
			if e.DefaultChecked {
				word = "yes"
			}
			fmt.Fprintf(b, "%s%s: %s\n", indent, e.Label, word)

		case popupkit.KindInput:
			fmt.Fprintf(b, "%s%s: @%s\n", indent, e.Label, e.Placeholder)

		case popupkit.KindSelect:
			fmt.Fprintf(b, "%s%s: %s\n", indent, e.Label, joinLabels(e.Options, " | "))

		case popupkit.KindMulti:
			fmt.Fprintf(b, "%s%s: [%s]\n", indent, e.Label, joinLabels(e.Options, ", "))

		case popupkit.KindGroup:
			fmt.Fprintf(b, "%s--- %s ---\n", indent, e.Label)
			writeElements(b, e.Elements, depth)

		case popupkit.KindButtons:
			fmt.Fprintf(b, "%s[%s]\n", indent, strings.Join(e.ButtonLabels, " | "))

		case popupkit.KindCondition:
			fmt.Fprintf(b, "%s[if %s] {\n", indent, e.When)
			writeElements(b, e.Reveals, depth+1)
			fmt.Fprintf(b, "%s}\n", indent)
		}
	}
}

func joinLabels(opts []popupkit.Option, sep string) string {
	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		labels = append(labels, o.Label)
	}
	return strings.Join(labels, sep)
}

func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
