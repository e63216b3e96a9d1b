package condition_test

import (
	"testing"

	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/condition"
)

func TestEvaluate(t *testing.T) {
	values := map[string]any{
		"fog_present": true,
		"volume":      75.0,
		"theme":       "Dark",
		"toppings":    []string{"Cheese", "Olives"},
		"note":        "",
	}

	cases := []struct {
		expr string
		want bool
	}{
		{"@fog_present", true},
		{"!@fog_present", false},
		{"@note", false},
		{"@missing", false},
		{"!@missing", true},
		{"@volume > 50", true},
		{"@volume >= 75", true},
		{"@volume < 75", false},
		{"@volume == 75", true},
		{"@volume != 75", false},
		{`@theme == "Dark"`, true},
		{"@theme == Dark", true},
		{`@theme != "Light"`, true},
		{"count(@toppings) == 2", true},
		{"count(@toppings) > 2", false},
		{`selected(@toppings, "Cheese")`, true},
		{`selected(@toppings, "Basil")`, false},
		{`selected(@theme, "Dark")`, true},
		{"@fog_present && @volume > 50", true},
		{"@fog_present && @note", false},
		{"@note || @fog_present", true},
		{"!(@note || @missing)", true},
		{`any(@note, @missing, @fog_present)`, true},
		{`all(@fog_present, @volume > 50)`, true},
		{`all(@fog_present, @note)`, false},
		{"(@volume > 50 || @note) && @fog_present", true},
	}
	for _, tc := range cases {
		got, err := condition.EvaluateString(tc.expr, values)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		if got != tc.want {
			t.Fatalf("%s: want %v, got %v", tc.expr, tc.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"@volume >",
		"(@a && @b",
		"bogus(@a)",
		"",
		"@a @b",
	}
	for _, expr := range cases {
		_, err := condition.Parse(expr)
		if err == nil {
			t.Fatalf("%q: expected a parse error", expr)
		}
		iss, ok := popupkit.AsIssues(err)
		if !ok || iss[0].Code != popupkit.CodeParseError {
			t.Fatalf("%q: expected parse_error issues, got %v", expr, err)
		}
		if iss[0].Col == 0 {
			t.Fatalf("%q: expected a column anchor, got %+v", expr, iss[0])
		}
	}
}

func TestEvaluateAST(t *testing.T) {
	expr := condition.Binary{
		Op: "&&",
		L:  condition.Ref{ID: "a"},
		R:  condition.Not{X: condition.Ref{ID: "b"}},
	}
	if !condition.Evaluate(expr, map[string]any{"a": true, "b": false}) {
		t.Fatalf("expected true")
	}
}
