package dsl_test

import (
	"testing"

	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/dsl"
)

func TestParse_FormatPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		title string
	}{
		{"json", `{"title": "From JSON", "elements": [{"text": "hi"}]}`, "From JSON"},
		{"classic", `popup "From Classic" [ text "hi" buttons ["OK"] ]`, "From Classic"},
		{"natural", `confirm From Natural with Yes or No`, "From Natural?"},
		{"structured", "From Structured:\n  Volume: 0-100\n  [OK]", "From Structured"},
	}
	for _, tc := range cases {
		def, err := dsl.Parse([]byte(tc.input))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if def.Title != tc.title {
			t.Fatalf("%s: want title %q, got %q", tc.name, tc.title, def.Title)
		}
	}
}

// JSON input missing its required keys fails hard; it is never re-read as a
// textual dialect.
func TestParse_JSONEnvelopeCommits(t *testing.T) {
	_, err := dsl.Parse([]byte(`{"elements": []}`))
	iss, ok := popupkit.AsIssues(err)
	if !ok || iss[0].Code != popupkit.CodeMissingRequiredField {
		t.Fatalf("expected missing_required_field, got %v", err)
	}
}

// Leading whitespace does not defeat JSON detection.
func TestParse_JSONWithLeadingWhitespace(t *testing.T) {
	def, err := dsl.Parse([]byte("\n\t {\"title\": \"T\", \"elements\": []}"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "T" {
		t.Fatalf("title: %q", def.Title)
	}
}
