package popupkit_test

import (
	"reflect"
	"testing"

	popupkit "github.com/spikehq/popupkit"
)

func TestInjectOtherOptions_AddsOptionAndInput(t *testing.T) {
	def := &popupkit.PopupDefinition{
		Title: "Pick",
		Elements: []popupkit.Element{
			{Kind: popupkit.KindSelect, ID: "color", Label: "Color",
				Options: []popupkit.Option{{Label: "Red"}, {Label: "Blue"}}},
		},
	}
	out := popupkit.InjectOtherOptions(def)

	el := out.Elements[0]
	if len(el.Options) != 3 || el.Options[2].Label != popupkit.OtherOptionLabel {
		t.Fatalf("expected appended Other option, got %v", el.Options)
	}
	children := el.OptionChildren[popupkit.OtherOptionLabel]
	if len(children) != 1 || children[0].Kind != popupkit.KindInput {
		t.Fatalf("expected one input child under Other, got %v", children)
	}
	if children[0].ID != "color_other_text" {
		t.Fatalf("expected synthetic id color_other_text, got %q", children[0].ID)
	}
	// The original tree stays untouched.
	if len(def.Elements[0].Options) != 2 {
		t.Fatalf("transform must not mutate its input")
	}
}

func TestInjectOtherOptions_Idempotent(t *testing.T) {
	def := nestedDefinition()
	once := popupkit.InjectOtherOptions(def)
	twice := popupkit.InjectOtherOptions(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("transform must be idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestInjectOtherOptions_DetectsExistingOther(t *testing.T) {
	cases := []string{"other", "OTHER", "Other", "Other (please specify)", "other (custom)"}
	for _, label := range cases {
		def := &popupkit.PopupDefinition{
			Title: "Pick",
			Elements: []popupkit.Element{
				{Kind: popupkit.KindMulti, ID: "pick", Label: "Pick",
					Options: []popupkit.Option{{Label: "A"}, {Label: label}}},
			},
		}
		out := popupkit.InjectOtherOptions(def)
		if n := len(out.Elements[0].Options); n != 2 {
			t.Fatalf("label %q: option count changed to %d", label, n)
		}
	}
}

func TestInjectOtherOptions_RecursesIntoBranches(t *testing.T) {
	def := &popupkit.PopupDefinition{
		Title: "Deep",
		Elements: []popupkit.Element{
			{
				Kind: popupkit.KindCheck, ID: "more", Label: "More",
				Reveals: []popupkit.Element{
					{Kind: popupkit.KindSelect, ID: "inner", Label: "Inner",
						Options: []popupkit.Option{{Label: "X"}}},
				},
			},
		},
	}
	out := popupkit.InjectOtherOptions(def)
	inner := out.Elements[0].Reveals[0]
	if len(inner.Options) != 2 || inner.Options[1].Label != popupkit.OtherOptionLabel {
		t.Fatalf("expected Other injected into revealed select, got %v", inner.Options)
	}
	if inner.OptionChildren[popupkit.OtherOptionLabel][0].ID != "inner_other_text" {
		t.Fatalf("expected inner_other_text child id")
	}
}

func TestInjectOtherOptions_LeavesGuardsAlone(t *testing.T) {
	def := &popupkit.PopupDefinition{
		Title: "Guarded",
		Elements: []popupkit.Element{
			{Kind: popupkit.KindSelect, ID: "s", Label: "S", When: "@flag",
				Options: []popupkit.Option{{Label: "A"}}},
		},
	}
	out := popupkit.InjectOtherOptions(def)
	if out.Elements[0].When != "@flag" {
		t.Fatalf("transform must not alter when guards")
	}
}
