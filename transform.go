package popupkit

import "strings"

// OtherOptionLabel is the canonical label of the injected free-text option.
const OtherOptionLabel = "Other (please specify)"

// InjectOtherOptions returns a copy of the tree where every select and multi
// element offers an "Other (please specify)" option backed by a text input
// with id "<owning-id>_other_text" under that option's children. Elements
// that already carry an "other" option (any case, bare word or parenthetical
// label) are left alone, which makes the transform idempotent. Display
// guards are never inspected or altered.
func InjectOtherOptions(def *PopupDefinition) *PopupDefinition {
	out := &PopupDefinition{Title: def.Title, Elements: injectOtherInto(def.Elements)}
	return out
}

func injectOtherInto(elems []Element) []Element {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Element, len(elems))
	for i := range elems {
		e := elems[i]
		if e.Kind == KindSelect || e.Kind == KindMulti {
			if !hasOtherOption(e.Options) {
				e.Options = append(append([]Option(nil), e.Options...), Option{Label: OtherOptionLabel})
				children := make(map[string][]Element, len(e.OptionChildren)+1)
				for k, v := range e.OptionChildren {
					children[k] = v
				}
				children[OtherOptionLabel] = []Element{{
					Kind:        KindInput,
					ID:          e.ID + "_other_text",
					Label:       "Please specify",
					Placeholder: "Enter details...",
				}}
				e.OptionChildren = children
			}
		}
		e.Reveals = injectOtherInto(e.Reveals)
		if len(e.OptionChildren) > 0 {
			children := make(map[string][]Element, len(e.OptionChildren))
			for k, v := range e.OptionChildren {
				children[k] = injectOtherInto(v)
			}
			e.OptionChildren = children
		}
		e.Elements = injectOtherInto(e.Elements)
		out[i] = e
	}
	return out
}

// hasOtherOption matches "other" case-insensitively, both as the bare word
// and as the label text with any trailing parenthetical stripped.
func hasOtherOption(opts []Option) bool {
	for _, o := range opts {
		label := strings.ToLower(strings.TrimSpace(o.Label))
		if label == "other" {
			return true
		}
		if i := strings.IndexByte(label, '('); i >= 0 {
			if strings.TrimSpace(label[:i]) == "other" {
				return true
			}
		}
	}
	return false
}
