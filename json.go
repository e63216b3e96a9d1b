package popupkit

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseJSON decodes a popup definition from strict or ergonomic JSON. The
// top-level object must carry a string "title" and an "elements" array;
// their absence is a hard missing_required_field failure, never a cue to
// fall back to another input mode. Inside elements, relaxed shapes are
// expanded structurally: comma-separated option strings, inferred ids,
// single objects where lists are expected, bare strings as static text.
// Strict input passes through unchanged.
func ParseJSON(data []byte) (*PopupDefinition, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeMalformedInput, Message: "invalid JSON", Cause: err, Offset: -1})
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, AppendIssues(nil, IssueAt("", CodeMalformedInput, "top-level JSON value must be an object"))
	}
	return buildDefinition(m)
}

// LooksLikeJSON reports whether raw input should be handed to the JSON path:
// its first non-space byte opens an object.
func LooksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func buildDefinition(m map[string]any) (*PopupDefinition, error) {
	var iss Issues
	title, ok := m["title"].(string)
	if !ok {
		iss = AppendIssues(iss, IssueAt("/title", CodeMissingRequiredField, `definition requires a string "title"`))
	}
	elemsRaw, present := m["elements"]
	if !present {
		iss = AppendIssues(iss, IssueAt("/elements", CodeMissingRequiredField, `definition requires an "elements" array`))
	}
	if len(iss) > 0 {
		return nil, iss
	}

	var list []any
	switch t := elemsRaw.(type) {
	case []any:
		list = t
	case map[string]any:
		// A single element object instead of a list.
		list = []any{t}
	default:
		return nil, AppendIssues(nil, IssueAt("/elements", CodeMalformedInput, `"elements" must be an array of element objects`))
	}

	def := &PopupDefinition{Title: title}
	for i, raw := range list {
		el, elIss := buildElement(raw, fmt.Sprintf("/elements/%d", i))
		if len(elIss) > 0 {
			iss = append(iss, elIss...)
			continue
		}
		def.Elements = append(def.Elements, el)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if err := ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Kind tags in detection order, aliases included. First present key wins, so
// an object carrying two tags decodes deterministically.
var kindTagOrder = []struct {
	tag  string
	kind Kind
}{
	{"text", KindText},
	{"markdown", KindMarkdown},
	{"slider", KindSlider},
	{"check", KindCheck},
	{"checkbox", KindCheck},
	{"input", KindInput},
	{"textbox", KindInput},
	{"select", KindSelect},
	{"choice", KindSelect},
	{"multi", KindMulti},
	{"multiselect", KindMulti},
	{"group", KindGroup},
	{"buttons", KindButtons},
	{"condition", KindCondition},
}

var elementFieldKeys = map[string]bool{
	"id": true, "when": true, "reveals": true, "option_children": true,
	"options": true, "min": true, "max": true, "default": true,
	"placeholder": true, "rows": true, "elements": true,
}

func isKindTag(key string) bool {
	for _, kt := range kindTagOrder {
		if kt.tag == key {
			return true
		}
	}
	return false
}

func buildElement(raw any, path string) (Element, Issues) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Element{}, AppendIssues(nil, IssueAt(path, CodeMalformedInput, "element must be a JSON object"))
	}

	var e Element
	tag := ""
	found := false
	for _, kt := range kindTagOrder {
		if _, present := m[kt.tag]; present {
			e.Kind = kt.kind
			tag = kt.tag
			found = true
			break
		}
	}
	if !found {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return Element{}, AppendIssues(nil, Issue{
			Path:    path,
			Code:    CodeUnknownWidget,
			Message: "no recognized widget key in element object",
			Hint:    "keys present: " + strings.Join(keys, ", "),
			Offset:  -1,
		})
	}

	var iss Issues

	// The tag's value is the label, except buttons (label list) and
	// condition (guard expression).
	switch e.Kind {
	case KindButtons:
		switch t := m[tag].(type) {
		case []any:
			for _, v := range t {
				if s, ok := v.(string); ok {
					e.ButtonLabels = append(e.ButtonLabels, s)
				} else {
					iss = AppendIssues(iss, IssueAt(path, CodeMalformedInput, "button labels must be strings"))
				}
			}
		case string:
			e.ButtonLabels = []string{t}
		default:
			iss = AppendIssues(iss, IssueAt(path, CodeMalformedInput, `"buttons" must be an array of labels`))
		}
	case KindCondition:
		if s, ok := m[tag].(string); ok {
			e.When = s
		} else {
			iss = AppendIssues(iss, IssueAt(path, CodeMalformedInput, `"condition" must be a guard expression string`))
		}
	default:
		if s, ok := m[tag].(string); ok {
			e.Label = s
		} else {
			iss = AppendIssues(iss, IssueAt(path, CodeMalformedInput, fmt.Sprintf("%q must carry a string label", tag)))
		}
	}

	if s, ok := m["id"].(string); ok {
		e.ID = s
	}
	if s, ok := m["when"].(string); ok {
		e.When = s
	}

	iss = append(iss, decodeOptions(&e, m, path)...)
	iss = append(iss, decodeKindFields(&e, m, path)...)
	iss = append(iss, decodeChildren(&e, m, path, tag)...)

	// Inferred identifier for value-bearing elements written without one.
	if e.ID == "" && e.HasValue() {
		e.ID = SlugID(e.Label)
	}
	return e, iss
}

func decodeOptions(e *Element, m map[string]any, path string) Issues {
	raw, present := m["options"]
	if !present {
		return nil
	}
	var iss Issues
	switch t := raw.(type) {
	case string:
		// Comma-separated shorthand.
		for _, part := range strings.Split(t, ",") {
			if p := strings.TrimSpace(part); p != "" {
				e.Options = append(e.Options, Option{Label: p})
			}
		}
	case []any:
		for i, v := range t {
			switch o := v.(type) {
			case string:
				e.Options = append(e.Options, Option{Label: o})
			case map[string]any:
				opt := Option{}
				opt.Label, _ = o["label"].(string)
				if d, ok := o["description"].(string); ok {
					opt.Description = d
				} else if d, ok := o["because"].(string); ok {
					opt.Description = d
				}
				if opt.Label == "" {
					iss = AppendIssues(iss, IssueAt(fmt.Sprintf("%s/options/%d", path, i), CodeMalformedInput, "option object requires a label"))
					continue
				}
				e.Options = append(e.Options, opt)
			default:
				iss = AppendIssues(iss, IssueAt(fmt.Sprintf("%s/options/%d", path, i), CodeMalformedInput, "option must be a string or an object"))
			}
		}
	default:
		iss = AppendIssues(iss, IssueAt(path+"/options", CodeMalformedInput, `"options" must be an array or a comma-separated string`))
	}
	return iss
}

func decodeKindFields(e *Element, m map[string]any, path string) Issues {
	var iss Issues
	switch e.Kind {
	case KindSlider:
		if n, ok := asNumber(m["min"]); ok {
			e.Min = n
		}
		if n, ok := asNumber(m["max"]); ok {
			e.Max = n
		}
		if raw, present := m["default"]; present {
			if n, ok := asNumber(raw); ok {
				e.Default = &n
			} else {
				iss = AppendIssues(iss, IssueAt(path+"/default", CodeMalformedInput, "slider default must be a number"))
			}
		}
	case KindCheck:
		if raw, present := m["default"]; present {
			if b, ok := raw.(bool); ok {
				e.DefaultChecked = b
			} else {
				iss = AppendIssues(iss, IssueAt(path+"/default", CodeMalformedInput, "check default must be a boolean"))
			}
		}
	case KindSelect:
		if raw, present := m["default"]; present {
			if s, ok := raw.(string); ok {
				e.DefaultOption = s
			} else {
				iss = AppendIssues(iss, IssueAt(path+"/default", CodeMalformedInput, "select default must be an option label"))
			}
		}
	case KindInput:
		if s, ok := m["placeholder"].(string); ok {
			e.Placeholder = s
		}
		if n, ok := asNumber(m["rows"]); ok {
			e.Rows = int(n)
		}
	}
	return iss
}

func decodeChildren(e *Element, m map[string]any, path, tag string) Issues {
	var iss Issues

	if raw, present := m["reveals"]; present {
		list, listIss := buildElementList(raw, path+"/reveals")
		iss = append(iss, listIss...)
		e.Reveals = list
	}

	if raw, present := m["option_children"]; present {
		oc, ok := raw.(map[string]any)
		if !ok {
			iss = AppendIssues(iss, IssueAt(path+"/option_children", CodeMalformedInput, `"option_children" must map option labels to element lists`))
		} else {
			e.OptionChildren = make(map[string][]Element, len(oc))
			for label, v := range oc {
				list, listIss := buildElementList(v, path+"/option_children/"+label)
				iss = append(iss, listIss...)
				e.OptionChildren[label] = list
			}
		}
	}

	if e.Kind == KindGroup || e.Kind == KindCondition {
		if raw, present := m["elements"]; present {
			list, listIss := buildElementList(raw, path+"/elements")
			iss = append(iss, listIss...)
			if e.Kind == KindGroup {
				e.Elements = list
			} else {
				// Conditional blocks hold their body as reveals.
				e.Reveals = append(e.Reveals, list...)
			}
		}
	}

	// Ergonomic shorthand: a key that is neither a known field nor a kind
	// tag but matches a declared option label attaches children directly.
	for key, v := range m {
		if key == tag || elementFieldKeys[key] || isKindTag(key) {
			continue
		}
		if e.optionIndex(key) < 0 {
			continue
		}
		list, listIss := buildElementList(v, path+"/"+key)
		iss = append(iss, listIss...)
		if e.OptionChildren == nil {
			e.OptionChildren = make(map[string][]Element)
		}
		e.OptionChildren[key] = list
	}
	return iss
}

// buildElementList accepts an array of elements, a single element object, or
// a bare string (wrapped into a static text element).
func buildElementList(raw any, path string) ([]Element, Issues) {
	var iss Issues
	var out []Element
	switch t := raw.(type) {
	case []any:
		for i, v := range t {
			p := fmt.Sprintf("%s/%d", path, i)
			if s, ok := v.(string); ok {
				out = append(out, Element{Kind: KindText, Label: s})
				continue
			}
			el, elIss := buildElement(v, p)
			if len(elIss) > 0 {
				iss = append(iss, elIss...)
				continue
			}
			out = append(out, el)
		}
	case map[string]any:
		el, elIss := buildElement(t, path)
		if len(elIss) > 0 {
			return nil, elIss
		}
		out = append(out, el)
	case string:
		out = append(out, Element{Kind: KindText, Label: t})
	default:
		iss = AppendIssues(iss, IssueAt(path, CodeMalformedInput, "expected an element list, element object, or text string"))
	}
	return out, iss
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// MarshalJSON renders the canonical element-as-key JSON shape.
func (d *PopupDefinition) MarshalJSON() ([]byte, error) {
	elems := make([]map[string]any, 0, len(d.Elements))
	for i := range d.Elements {
		elems = append(elems, elementToMap(&d.Elements[i]))
	}
	return json.Marshal(map[string]any{"title": d.Title, "elements": elems})
}

// UnmarshalJSON decodes via the same path as ParseJSON.
func (d *PopupDefinition) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

func elementToMap(e *Element) map[string]any {
	m := map[string]any{}
	switch e.Kind {
	case KindButtons:
		m["buttons"] = e.ButtonLabels
	case KindCondition:
		m["condition"] = e.When
	default:
		m[e.Kind.String()] = e.Label
	}
	if e.ID != "" {
		m["id"] = e.ID
	}
	if e.When != "" && e.Kind != KindCondition {
		m["when"] = e.When
	}
	if len(e.Options) > 0 {
		opts := make([]any, 0, len(e.Options))
		for _, o := range e.Options {
			if o.Description == "" {
				opts = append(opts, o.Label)
			} else {
				opts = append(opts, map[string]any{"label": o.Label, "description": o.Description})
			}
		}
		m["options"] = opts
	}
	switch e.Kind {
	case KindSlider:
		m["min"] = e.Min
		m["max"] = e.Max
		if e.Default != nil {
			m["default"] = *e.Default
		}
	case KindCheck:
		if e.DefaultChecked {
			m["default"] = true
		}
	case KindSelect:
		if e.DefaultOption != "" {
			m["default"] = e.DefaultOption
		}
	case KindInput:
		if e.Placeholder != "" {
			m["placeholder"] = e.Placeholder
		}
		if e.Rows > 1 {
			m["rows"] = e.Rows
		}
	}
	if len(e.Reveals) > 0 {
		m["reveals"] = elementMaps(e.Reveals)
	}
	if len(e.OptionChildren) > 0 {
		oc := make(map[string]any, len(e.OptionChildren))
		for label, children := range e.OptionChildren {
			oc[label] = elementMaps(children)
		}
		m["option_children"] = oc
	}
	if len(e.Elements) > 0 {
		m["elements"] = elementMaps(e.Elements)
	}
	return m
}

func elementMaps(elems []Element) []map[string]any {
	out := make([]map[string]any, 0, len(elems))
	for i := range elems {
		out = append(out, elementToMap(&elems[i]))
	}
	return out
}
