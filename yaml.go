package popupkit

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a popup definition written as YAML. The decoded document
// is normalized into JSON-like string-keyed maps and then fed through the
// same builder as ParseJSON, so every ergonomic shorthand works in YAML too.
// Multi-document input uses the first document that decodes to a mapping.
func ParseYAML(data []byte) (*PopupDefinition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, AppendIssues(nil, Issue{Code: CodeMalformedInput, Message: "invalid YAML", Cause: err, Offset: -1})
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		return buildDefinition(m)
	}
	return nil, AppendIssues(nil, IssueAt("", CodeMalformedInput, "no YAML mapping document found"))
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}
