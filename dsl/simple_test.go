package dsl_test

import (
	"testing"

	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/dsl"
)

func TestParseSimple_SettingsForm(t *testing.T) {
	input := `Settings:
  Volume: 0-100 = 75
  Theme: Light | Dark
  Notifications: ✓
  [Save | Cancel]`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "Settings" {
		t.Fatalf("title: want Settings, got %q", def.Title)
	}
	if len(def.Elements) != 4 {
		t.Fatalf("want 4 elements, got %d: %+v", len(def.Elements), def.Elements)
	}

	slider := def.Elements[0]
	if slider.Kind != popupkit.KindSlider || slider.Min != 0 || slider.Max != 100 {
		t.Fatalf("unexpected slider: %+v", slider)
	}
	if slider.Default == nil || *slider.Default != 75 {
		t.Fatalf("slider default: want 75, got %v", slider.Default)
	}

	theme := def.Elements[1]
	if theme.Kind != popupkit.KindSelect || len(theme.Options) != 2 || theme.Options[1].Label != "Dark" {
		t.Fatalf("unexpected select: %+v", theme)
	}

	if def.Elements[2].Kind != popupkit.KindCheck || !def.Elements[2].DefaultChecked {
		t.Fatalf("unexpected check: %+v", def.Elements[2])
	}

	buttons := def.Elements[3]
	want := []string{"Save", "Cancel", dsl.ForceYieldLabel}
	if len(buttons.ButtonLabels) != 3 {
		t.Fatalf("buttons: want %v, got %v", want, buttons.ButtonLabels)
	}
	for i, w := range want {
		if buttons.ButtonLabels[i] != w {
			t.Fatalf("buttons: want %v, got %v", want, buttons.ButtonLabels)
		}
	}
}

func TestParseSimple_TitleHeuristics(t *testing.T) {
	cases := []struct {
		input string
		title string
	}{
		{"Quick Setup\n  Name: @Your name\n  → Continue", "Quick Setup"},
		{"# Deploy\n  [Go]", "Deploy"},
		{"confirm Save changes\n  with Save or Discard", "Save changes?"},
		{"Yes or No", "Popup"},
	}
	for _, tc := range cases {
		def, err := dsl.Parse([]byte(tc.input))
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if def.Title != tc.title {
			t.Fatalf("%q: want title %q, got %q", tc.input, tc.title, def.Title)
		}
	}
}

func TestParseSimple_WidgetInference(t *testing.T) {
	input := `Inference:
  Level: 1..10
  Span: 5 to 9 = 7
  Quiet: no
  Days: [Mon, Tue, Wed]
  Mode: fast/slow
  Note: @say more
  Files: a.txt, b.txt
  Size: 1.2MB`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	kinds := []popupkit.Kind{
		popupkit.KindSlider,
		popupkit.KindSlider,
		popupkit.KindCheck,
		popupkit.KindMulti,
		popupkit.KindSelect,
		popupkit.KindInput,
		popupkit.KindText, // file list must not become a choice
		popupkit.KindText,
		popupkit.KindButtons, // synthesized
	}
	if len(def.Elements) != len(kinds) {
		t.Fatalf("want %d elements, got %d: %+v", len(kinds), len(def.Elements), def.Elements)
	}
	for i, k := range kinds {
		if def.Elements[i].Kind != k {
			t.Fatalf("element %d: want kind %v, got %v (%+v)", i, k, def.Elements[i].Kind, def.Elements[i])
		}
	}
	if def.Elements[5].Placeholder != "say more" {
		t.Fatalf("placeholder: %+v", def.Elements[5])
	}
	if def.Elements[3].ID != "days" || len(def.Elements[3].Options) != 3 {
		t.Fatalf("multi: %+v", def.Elements[3])
	}
}

func TestParseSimple_MessagesAndGroups(t *testing.T) {
	input := `Status:
  > All systems nominal
  ! Disk almost full
  ? Continue anyway
  • third item
  --- Advanced ---
  [OK]`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	wantTexts := []string{"ℹ️ All systems nominal", "⚠️ Disk almost full", "❓ Continue anyway", "• third item"}
	for i, w := range wantTexts {
		if def.Elements[i].Kind != popupkit.KindText || def.Elements[i].Label != w {
			t.Fatalf("message %d: want %q, got %+v", i, w, def.Elements[i])
		}
	}
	if def.Elements[4].Kind != popupkit.KindGroup || def.Elements[4].Label != "Advanced" {
		t.Fatalf("group header: %+v", def.Elements[4])
	}
}

func TestParseSimple_ConditionalBlock(t *testing.T) {
	input := `Checkout:
  Gift wrap: no
  [if Gift wrap] {
    Gift note: @say something nice
  }
  [Pay]`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cond := def.Elements[1]
	if cond.Kind != popupkit.KindCondition {
		t.Fatalf("want condition element, got %+v", cond)
	}
	if cond.When != "@gift_wrap" {
		t.Fatalf("condition translation: want @gift_wrap, got %q", cond.When)
	}
	if len(cond.Reveals) != 1 || cond.Reveals[0].Kind != popupkit.KindInput {
		t.Fatalf("condition body: %+v", cond.Reveals)
	}
}

func TestParseSimple_ConditionTranslations(t *testing.T) {
	cases := []struct {
		cond string
		want string
	}{
		{"Fog present", "@fog_present"},
		{"not Fog present", "!@fog_present"},
		{"Toppings has Cheese", `selected(@toppings, "Cheese")`},
		{"Theme = Dark", `selected(@theme, "Dark")`},
		{"Items = 3", "count(@items) == 3"},
		{"Items >= 2", "count(@items) >= 2"},
		{"@already > 5", "@already > 5"},
	}
	for _, tc := range cases {
		input := "T:\n  [if " + tc.cond + "] {\n    Note: @x\n  }\n  [OK]"
		def, err := dsl.Parse([]byte(input))
		if err != nil {
			t.Fatalf("%q: %v", tc.cond, err)
		}
		if def.Elements[0].When != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.cond, tc.want, def.Elements[0].When)
		}
	}
}

func TestParseSimple_WhenBlock(t *testing.T) {
	input := `Test:
  Volume: 0-100
  when Volume > 50:
    Loud: yes
  [OK]`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cond := def.Elements[1]
	if cond.Kind != popupkit.KindCondition || cond.When != "count(@volume) > 50" {
		t.Fatalf("when block: %+v", cond)
	}
	if len(cond.Reveals) != 1 || cond.Reveals[0].Kind != popupkit.KindCheck {
		t.Fatalf("when body: %+v", cond.Reveals)
	}
}

// A when block nested inside another when block keeps its own body instead
// of flattening into the outer one.
func TestParseSimple_NestedWhenBlocks(t *testing.T) {
	input := `Test:
  Volume: 0-100
  when Volume > 50:
    Loud: yes
    when Loud:
      Note: @x
  [OK]`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	outer := def.Elements[1]
	if outer.Kind != popupkit.KindCondition || outer.When != "count(@volume) > 50" {
		t.Fatalf("outer block: %+v", outer)
	}
	if len(outer.Reveals) != 2 {
		t.Fatalf("outer body: want check + nested condition, got %+v", outer.Reveals)
	}
	if outer.Reveals[0].Kind != popupkit.KindCheck {
		t.Fatalf("outer body first element: %+v", outer.Reveals[0])
	}
	inner := outer.Reveals[1]
	if inner.Kind != popupkit.KindCondition || inner.When != "@loud" {
		t.Fatalf("inner block: %+v", inner)
	}
	if len(inner.Reveals) != 1 || inner.Reveals[0].Kind != popupkit.KindInput {
		t.Fatalf("inner body: %+v", inner.Reveals)
	}
	if def.Elements[2].Kind != popupkit.KindButtons {
		t.Fatalf("button row must stay outside the blocks: %+v", def.Elements)
	}
}

// A bracketed list opening with "if" is a conditional, never a button row.
func TestParseSimple_IfNeverButtons(t *testing.T) {
	def, err := dsl.Parse([]byte("T:\n  [if Fog] {\n    Note: @x\n  }"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Elements[0].Kind != popupkit.KindCondition {
		t.Fatalf("want condition, got %+v", def.Elements[0])
	}

	_, err = dsl.Parse([]byte("T:\n  [if Fog]"))
	if err == nil {
		t.Fatalf("a bracketed if without a block must fail, not parse as buttons")
	}
	iss, ok := popupkit.AsIssues(err)
	if !ok || iss[0].Code != popupkit.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseSimple_SynthesizedButtons(t *testing.T) {
	def, err := dsl.Parse([]byte("Test:\n  Volume: 0-100"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	last := def.Elements[len(def.Elements)-1]
	if last.Kind != popupkit.KindButtons {
		t.Fatalf("expected a synthesized button row, got %+v", last)
	}
	if len(last.ButtonLabels) != 2 || last.ButtonLabels[0] != "OK" || last.ButtonLabels[1] != dsl.ForceYieldLabel {
		t.Fatalf("synthesized row: %v", last.ButtonLabels)
	}
}

func TestParseNatural(t *testing.T) {
	def, err := dsl.Parse([]byte("confirm Delete file? with Yes or No"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "Delete file?" {
		t.Fatalf("title: %q", def.Title)
	}
	if len(def.Elements) != 1 {
		t.Fatalf("want 1 element, got %+v", def.Elements)
	}
	got := def.Elements[0].ButtonLabels
	if len(got) != 3 || got[0] != "Yes" || got[1] != "No" || got[2] != dsl.ForceYieldLabel {
		t.Fatalf("buttons: %v", got)
	}
}

func TestParseNatural_Keywordless(t *testing.T) {
	def, err := dsl.Parse([]byte("Delete file? Yes or No"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "Delete file?" {
		t.Fatalf("title: %q", def.Title)
	}
	got := def.Elements[0].ButtonLabels
	if len(got) != 3 || got[0] != "Yes" || got[1] != "No" {
		t.Fatalf("buttons: %v", got)
	}
}

func TestParseMixedConfirmBody(t *testing.T) {
	input := `confirm Save changes?
  Modified files: 3
  Size: 1.2MB
  with Save or Discard`

	def, err := dsl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Title != "Save changes?" {
		t.Fatalf("title: %q", def.Title)
	}
	if len(def.Elements) != 3 {
		t.Fatalf("want 3 elements, got %+v", def.Elements)
	}
	if def.Elements[0].Kind != popupkit.KindText || def.Elements[0].Label != "Modified files: 3" {
		t.Fatalf("plain stats must stay text: %+v", def.Elements[0])
	}
	buttons := def.Elements[2].ButtonLabels
	if len(buttons) != 3 || buttons[0] != "Save" || buttons[1] != "Discard" {
		t.Fatalf("with clause buttons: %v", buttons)
	}
}
