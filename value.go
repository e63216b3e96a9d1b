package popupkit

// ValueKind identifies an ElementValue variant.
type ValueKind int

const (
	ValueNumber      ValueKind = iota // slider
	ValueBoolean                      // check
	ValueText                         // input
	ValueChoice                       // select; optional option index
	ValueMultiChoice                  // multi; one flag per option
)

// ElementValue is the runtime value of one value-bearing element. It is a
// tagged union; only the field matching Kind is meaningful.
type ElementValue struct {
	Kind        ValueKind
	Number      float64
	Boolean     bool
	Text        string
	Choice      *int   // nil means nothing selected
	MultiChoice []bool // length always equals the option count
}

// NumberValue returns a Number-kinded value.
func NumberValue(n float64) ElementValue {
	return ElementValue{Kind: ValueNumber, Number: n}
}

// BooleanValue returns a Boolean-kinded value.
func BooleanValue(b bool) ElementValue {
	return ElementValue{Kind: ValueBoolean, Boolean: b}
}

// TextValue returns a Text-kinded value.
func TextValue(s string) ElementValue {
	return ElementValue{Kind: ValueText, Text: s}
}

// ChoiceValue returns a Choice-kinded value selecting the given option index.
func ChoiceValue(idx int) ElementValue {
	return ElementValue{Kind: ValueChoice, Choice: &idx}
}

// NoChoice returns a Choice-kinded value with nothing selected.
func NoChoice() ElementValue {
	return ElementValue{Kind: ValueChoice}
}

// MultiChoiceValue returns a MultiChoice-kinded value with n unchecked flags.
func MultiChoiceValue(n int) ElementValue {
	return ElementValue{Kind: ValueMultiChoice, MultiChoice: make([]bool, n)}
}

// AsNumber reports the numeric value, ok=false for other kinds.
func (v ElementValue) AsNumber() (float64, bool) {
	if v.Kind != ValueNumber {
		return 0, false
	}
	return v.Number, true
}

// AsBoolean reports the boolean value, ok=false for other kinds.
func (v ElementValue) AsBoolean() (bool, bool) {
	if v.Kind != ValueBoolean {
		return false, false
	}
	return v.Boolean, true
}

// AsText reports the text value, ok=false for other kinds.
func (v ElementValue) AsText() (string, bool) {
	if v.Kind != ValueText {
		return "", false
	}
	return v.Text, true
}

// SelectedIndex reports the selected option index, ok=false when the value is
// not a Choice or nothing is selected.
func (v ElementValue) SelectedIndex() (int, bool) {
	if v.Kind != ValueChoice || v.Choice == nil {
		return 0, false
	}
	return *v.Choice, true
}

// Truthy reports whether the value satisfies the implicit reveal rule:
// checked boxes, non-zero numbers, non-empty text, any selection.
func (v ElementValue) Truthy() bool {
	switch v.Kind {
	case ValueNumber:
		return v.Number != 0
	case ValueBoolean:
		return v.Boolean
	case ValueText:
		return v.Text != ""
	case ValueChoice:
		return v.Choice != nil
	case ValueMultiChoice:
		for _, f := range v.MultiChoice {
			if f {
				return true
			}
		}
	}
	return false
}
