package popupkit

import "fmt"

// ValidateDefinition checks tree-wide invariants that parsing alone cannot
// enforce: identifier uniqueness across every branch, and option_children
// keys referring to declared options. Parse entry points run it after decode;
// callers assembling trees by hand should run it themselves.
func ValidateDefinition(def *PopupDefinition) error {
	var iss Issues
	seen := make(map[string]string)
	iss = validateElems(iss, seen, def.Elements, "/elements")
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func validateElems(iss Issues, seen map[string]string, elems []Element, path string) Issues {
	for i := range elems {
		e := &elems[i]
		p := fmt.Sprintf("%s/%d", path, i)
		if e.HasValue() {
			if prev, dup := seen[e.ID]; dup {
				iss = AppendIssues(iss, Issue{
					Path:    p,
					Code:    CodeDuplicateID,
					Message: fmt.Sprintf("identifier %q already used at %s", e.ID, prev),
					Hint:    "identifiers must be unique across the whole tree, including hidden branches",
					Offset:  -1,
				})
			} else {
				seen[e.ID] = p
			}
		}
		for key := range e.OptionChildren {
			if e.optionIndex(key) < 0 {
				iss = AppendIssues(iss, Issue{
					Path:    p,
					Code:    CodeUnknownOption,
					Message: fmt.Sprintf("option_children key %q matches no declared option", key),
					Offset:  -1,
				})
			}
		}
		iss = validateElems(iss, seen, e.Reveals, p+"/reveals")
		for _, key := range e.optionChildKeys() {
			iss = validateElems(iss, seen, e.OptionChildren[key], p+"/option_children/"+key)
		}
		iss = validateElems(iss, seen, e.Elements, p+"/elements")
	}
	return iss
}
