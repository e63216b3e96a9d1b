package popupkit

// FindByID locates the element with the given identifier anywhere in the
// tree: top-level elements, every reveals list, every option_children branch,
// and grouped sub-elements, regardless of current visibility. Returns nil
// when no element carries the id.
func FindByID(def *PopupDefinition, id string) *Element {
	return findIn(def.Elements, id)
}

func findIn(elems []Element, id string) *Element {
	for i := range elems {
		e := &elems[i]
		if e.ID != "" && e.ID == id {
			return e
		}
		if found := findIn(e.Reveals, id); found != nil {
			return found
		}
		for _, key := range e.optionChildKeys() {
			if found := findIn(e.OptionChildren[key], id); found != nil {
				return found
			}
		}
		if found := findIn(e.Elements, id); found != nil {
			return found
		}
	}
	return nil
}
