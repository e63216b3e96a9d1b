package dsl

import (
	"regexp"
	"strconv"
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// Widget inference for `Label: value` lines. The value's surface form picks
// the widget; values matching nothing stay plain text.

var rangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(?:=\s*(\d+(?:\.\d+)?))?$`),
	regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*\.\.\s*(\d+(?:\.\d+)?)\s*(?:=\s*(\d+(?:\.\d+)?))?$`),
	regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+to\s+(\d+(?:\.\d+)?)\s*(?:=\s*(\d+(?:\.\d+)?))?$`),
}

// inferWidget maps a labeled value to an element, or ok=false when the value
// reads as plain text.
func inferWidget(label, value string) (popupkit.Element, bool) {
	// Textbox hint first: @ may appear inside other patterns.
	if strings.HasPrefix(value, "@") {
		return popupkit.Element{
			Kind:        popupkit.KindInput,
			ID:          popupkit.SlugID(label),
			Label:       label,
			Placeholder: strings.TrimSpace(value[1:]),
		}, true
	}

	if min, max, def, ok := parseRange(value); ok {
		return popupkit.Element{
			Kind:    popupkit.KindSlider,
			ID:      popupkit.SlugID(label),
			Label:   label,
			Min:     min,
			Max:     max,
			Default: def,
		}, true
	}

	if checked, ok := parseBoolWord(value); ok {
		return popupkit.Element{
			Kind:           popupkit.KindCheck,
			ID:             popupkit.SlugID(label),
			Label:          label,
			DefaultChecked: checked,
		}, true
	}

	// Multi-select: [A, B, C]. Checked before comma lists so the brackets
	// keep their meaning.
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		if opts := splitOptions(value[1:len(value)-1], ","); len(opts) > 0 {
			return popupkit.Element{
				Kind:    popupkit.KindMulti,
				ID:      popupkit.SlugID(label),
				Label:   label,
				Options: opts,
			}, true
		}
	}

	if opts, ok := parseChoiceList(value); ok {
		return popupkit.Element{
			Kind:    popupkit.KindSelect,
			ID:      popupkit.SlugID(label),
			Label:   label,
			Options: opts,
		}, true
	}

	return popupkit.Element{}, false
}

func parseRange(value string) (min, max float64, def *float64, ok bool) {
	for _, re := range rangePatterns {
		caps := re.FindStringSubmatch(value)
		if caps == nil {
			continue
		}
		min, _ = strconv.ParseFloat(caps[1], 64)
		max, _ = strconv.ParseFloat(caps[2], 64)
		if caps[3] != "" {
			d, _ := strconv.ParseFloat(caps[3], 64)
			def = &d
		}
		return min, max, def, true
	}
	return 0, 0, nil, false
}

func parseBoolWord(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "yes", "true", "on", "enabled", "checked":
		return true, true
	case "no", "false", "off", "disabled", "unchecked":
		return false, true
	}
	switch value {
	case "✓", "☑", "[x]", "[X]", "(*)":
		return true, true
	case "☐", "☒", "[ ]", "( )":
		return false, true
	}
	return false, false
}

// parseChoiceList recognizes pipe, comma, and slash separated option lists.
// Comma and slash lists are rejected when they look like file names or paths
// rather than choices.
func parseChoiceList(value string) ([]popupkit.Option, bool) {
	switch {
	case strings.Contains(value, " | "):
		opts := splitOptions(value, " | ")
		return opts, len(opts) > 1
	case strings.Contains(value, ","):
		if strings.Contains(value, ".") || (strings.Contains(value, " ") && !strings.Contains(value, ", ")) {
			return nil, false
		}
		opts := splitOptions(value, ",")
		return opts, len(opts) > 1
	case strings.Contains(value, "/"):
		if strings.Contains(value, ".") || strings.HasPrefix(value, "/") || strings.Contains(value, `\`) {
			return nil, false
		}
		opts := splitOptions(value, "/")
		return opts, len(opts) > 1
	}
	return nil, false
}

func splitOptions(s, sep string) []popupkit.Option {
	var opts []popupkit.Option
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			opts = append(opts, popupkit.Option{Label: p})
		}
	}
	return opts
}
