package dsl

import popupkit "github.com/spikehq/popupkit"

// ForceYieldLabel is the reserved action appended to every button set.
const ForceYieldLabel = "Force Yield"

// ensureButtonSafety appends Force Yield to the first button row, and
// synthesizes an OK row when the body carries no button element at all.
// Applied only to the top-level element list, never to conditional bodies.
func ensureButtonSafety(elems []popupkit.Element) []popupkit.Element {
	for i := range elems {
		if elems[i].Kind != popupkit.KindButtons {
			continue
		}
		if !containsLabel(elems[i].ButtonLabels, ForceYieldLabel) {
			elems[i].ButtonLabels = append(elems[i].ButtonLabels, ForceYieldLabel)
		}
		return elems
	}
	return append(elems, popupkit.Element{
		Kind:         popupkit.KindButtons,
		ButtonLabels: []string{"OK", ForceYieldLabel},
	})
}

func containsLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
