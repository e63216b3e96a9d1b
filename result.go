package popupkit

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// PopupResult is the terminal outcome of one popup interaction: either a
// button click with the collected, display-formatted values, or cancellation.
type PopupResult struct {
	Cancelled bool
	Button    string
	Values    map[string]any
}

// Collapse renders the final result document from a mutated state and the
// originating tree. An unset ButtonClicked collapses to Cancelled
// unconditionally, whatever values were collected. Each value's defining
// element is located by a full recursive search, since it may live under any
// hidden branch; entries whose id matches no element are skipped rather than
// failing the collapse.
func Collapse(def *PopupDefinition, st *PopupState) PopupResult {
	if st.ButtonClicked == "" {
		return PopupResult{Cancelled: true}
	}
	values := make(map[string]any, len(st.Values))
	for id, v := range st.Values {
		e := FindByID(def, id)
		if e == nil {
			continue
		}
		if fv, ok := formatValue(e, v); ok {
			values[id] = fv
		}
	}
	return PopupResult{Button: st.ButtonClicked, Values: values}
}

// formatValue applies the per-variant display formatting. ok=false means the
// entry is omitted from the result (an unselected single choice).
func formatValue(e *Element, v ElementValue) (any, bool) {
	switch e.Kind {
	case KindSlider:
		return fmt.Sprintf("%s/%s", trimFloat(v.Number), trimFloat(e.Max)), true
	case KindCheck:
		return v.Boolean, true
	case KindInput:
		return v.Text, true
	case KindSelect:
		if v.Choice == nil || *v.Choice < 0 || *v.Choice >= len(e.Options) {
			return nil, false
		}
		return e.Options[*v.Choice].Label, true
	case KindMulti:
		labels := make([]string, 0, len(e.Options))
		for i, o := range e.Options {
			if i < len(v.MultiChoice) && v.MultiChoice[i] {
				labels = append(labels, o.Label)
			}
		}
		return labels, true
	}
	return nil, false
}

// trimFloat renders a float without a trailing ".0" for whole values.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

type completedJSON struct {
	Button string         `json:"button"`
	Values map[string]any `json:"values"`
}

type cancelledJSON struct {
	Cancelled bool `json:"cancelled"`
}

// MarshalJSON renders {"button":...,"values":{...}} or {"cancelled":true}.
func (r PopupResult) MarshalJSON() ([]byte, error) {
	if r.Cancelled {
		return json.Marshal(cancelledJSON{Cancelled: true})
	}
	values := r.Values
	if values == nil {
		values = map[string]any{}
	}
	return json.Marshal(completedJSON{Button: r.Button, Values: values})
}

// UnmarshalJSON accepts both result shapes.
func (r *PopupResult) UnmarshalJSON(data []byte) error {
	var c cancelledJSON
	if err := json.Unmarshal(data, &c); err == nil && c.Cancelled {
		*r = PopupResult{Cancelled: true}
		return nil
	}
	var done completedJSON
	if err := json.Unmarshal(data, &done); err != nil {
		return AppendIssues(nil, Issue{Code: CodeMalformedInput, Message: "invalid result document", Cause: err, Offset: -1})
	}
	*r = PopupResult{Button: done.Button, Values: done.Values}
	return nil
}
