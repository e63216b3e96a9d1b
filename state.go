package popupkit

// PopupState is the mutable interaction state of one popup. It is built once
// by DeriveState and then owned by the rendering collaborator; the core never
// mutates it afterwards. An empty ButtonClicked means no button was pressed,
// which Collapse maps to cancellation.
type PopupState struct {
	Values        map[string]ElementValue
	ButtonClicked string
}

// DeriveState walks the whole tree once and produces the initial value map.
// Every reveals list and every option_children branch is initialized eagerly,
// regardless of which branch would be visible first: visibility can change
// interactively without re-deriving state.
func DeriveState(def *PopupDefinition) *PopupState {
	st := &PopupState{Values: make(map[string]ElementValue)}
	deriveInto(st.Values, def.Elements)
	return st
}

func deriveInto(values map[string]ElementValue, elems []Element) {
	for i := range elems {
		e := &elems[i]
		if e.HasValue() {
			values[e.ID] = initialValue(e)
		}
		e.childLists(func(children []Element) {
			deriveInto(values, children)
		})
	}
}

// initialValue computes the per-variant default.
func initialValue(e *Element) ElementValue {
	switch e.Kind {
	case KindSlider:
		if e.Default != nil {
			return NumberValue(*e.Default)
		}
		return NumberValue((e.Min + e.Max) / 2)
	case KindCheck:
		return BooleanValue(e.DefaultChecked)
	case KindInput:
		return TextValue("")
	case KindSelect:
		if e.DefaultOption != "" {
			if idx := e.optionIndex(e.DefaultOption); idx >= 0 {
				return ChoiceValue(idx)
			}
		}
		return NoChoice()
	case KindMulti:
		return MultiChoiceValue(len(e.Options))
	}
	return ElementValue{}
}

// Set replaces the value stored under id. It returns false when the id has no
// entry, so callers cannot invent state keys the tree never declared.
func (st *PopupState) Set(id string, v ElementValue) bool {
	if _, ok := st.Values[id]; !ok {
		return false
	}
	st.Values[id] = v
	return true
}

// Get returns the value stored under id.
func (st *PopupState) Get(id string) (ElementValue, bool) {
	v, ok := st.Values[id]
	return v, ok
}

// Snapshot renders the current values as plain Go data keyed by id, the
// shape the condition evaluator consumes: numbers, booleans, strings, the
// selected option label for single choices (omitted while nothing is
// selected), and the list of selected labels for multi selections.
func Snapshot(def *PopupDefinition, st *PopupState) map[string]any {
	out := make(map[string]any, len(st.Values))
	for id, v := range st.Values {
		switch v.Kind {
		case ValueNumber:
			out[id] = v.Number
		case ValueBoolean:
			out[id] = v.Boolean
		case ValueText:
			out[id] = v.Text
		case ValueChoice:
			if v.Choice == nil {
				continue
			}
			if e := FindByID(def, id); e != nil && *v.Choice < len(e.Options) {
				out[id] = e.Options[*v.Choice].Label
			}
		case ValueMultiChoice:
			e := FindByID(def, id)
			if e == nil {
				continue
			}
			labels := make([]string, 0, len(v.MultiChoice))
			for i, f := range v.MultiChoice {
				if f && i < len(e.Options) {
					labels = append(labels, e.Options[i].Label)
				}
			}
			out[id] = labels
		}
	}
	return out
}
