package dsl_test

import (
	"testing"

	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/dsl"
)

// Serializing and re-parsing preserves the title and every element's kind and
// label in order; the only growth comes from auto-added buttons.
func TestSerializeRoundTrip(t *testing.T) {
	d := 75.0
	def := &popupkit.PopupDefinition{
		Title: "Settings",
		Elements: []popupkit.Element{
			{Kind: popupkit.KindText, Label: "Tune your preferences"},
			{Kind: popupkit.KindSlider, ID: "volume", Label: "Volume", Min: 0, Max: 100, Default: &d},
			{Kind: popupkit.KindCheck, ID: "notify", Label: "Notify", DefaultChecked: true},
			{Kind: popupkit.KindInput, ID: "name", Label: "Name", Placeholder: "Your name"},
			{Kind: popupkit.KindSelect, ID: "theme", Label: "Theme",
				Options: []popupkit.Option{{Label: "Light"}, {Label: "Dark"}}},
			{Kind: popupkit.KindMulti, ID: "days", Label: "Days",
				Options: []popupkit.Option{{Label: "Mon"}, {Label: "Tue"}}},
		},
	}

	text := dsl.Serialize(def)
	back, err := dsl.Parse([]byte(text))
	if err != nil {
		t.Fatalf("reparse: %v\ninput:\n%s", err, text)
	}
	if back.Title != def.Title {
		t.Fatalf("title: want %q, got %q", def.Title, back.Title)
	}
	if len(back.Elements) < len(def.Elements) {
		t.Fatalf("element list shrank: %d -> %d", len(def.Elements), len(back.Elements))
	}
	for i, orig := range def.Elements {
		got := back.Elements[i]
		if got.Kind != orig.Kind || got.Label != orig.Label {
			t.Fatalf("element %d: want %v %q, got %v %q", i, orig.Kind, orig.Label, got.Kind, got.Label)
		}
	}
	// Growth is only the synthesized button row.
	for _, extra := range back.Elements[len(def.Elements):] {
		if extra.Kind != popupkit.KindButtons {
			t.Fatalf("unexpected extra element: %+v", extra)
		}
	}

	volume := back.Elements[1]
	if volume.Default == nil || *volume.Default != 75 || volume.Max != 100 {
		t.Fatalf("slider lost its shape: %+v", volume)
	}
}

func TestSerialize_ConditionBlock(t *testing.T) {
	def := &popupkit.PopupDefinition{
		Title: "Checkout",
		Elements: []popupkit.Element{
			{Kind: popupkit.KindCheck, ID: "gift_wrap", Label: "Gift wrap"},
			{Kind: popupkit.KindCondition, When: "@gift_wrap", Reveals: []popupkit.Element{
				{Kind: popupkit.KindInput, ID: "gift_note", Label: "Gift note"},
			}},
			{Kind: popupkit.KindButtons, ButtonLabels: []string{"Pay", dsl.ForceYieldLabel}},
		},
	}
	back, err := dsl.Parse([]byte(dsl.Serialize(def)))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	cond := back.Elements[1]
	if cond.Kind != popupkit.KindCondition || cond.When != "@gift_wrap" {
		t.Fatalf("condition lost: %+v", cond)
	}
	if len(cond.Reveals) != 1 || cond.Reveals[0].ID != "gift_note" {
		t.Fatalf("condition body lost: %+v", cond.Reveals)
	}
	if len(back.Elements) != len(def.Elements) {
		t.Fatalf("no growth expected when buttons are present: %+v", back.Elements)
	}
}
