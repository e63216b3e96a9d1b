package dsl

import (
	"fmt"
	"strconv"
	"strings"

	popupkit "github.com/spikehq/popupkit"
)

// ParseClassic decodes the bracketed keyword dialect:
//
//	popup "System Check-in" [
//	    text "How are you doing right now?"
//	    slider "Energy" 0..10 default = 5
//	    checkbox "Fog present" default = false
//	    textbox "Other observations" rows=3
//	    choice "Type:" [ "Observation", "Correction" ]
//	    buttons ["Continue", "Force Yield"]
//	]
//
// Once the leading `popup "` envelope has matched, any later error is final.
func ParseClassic(input string) (*popupkit.PopupDefinition, error) {
	p := &classicParser{lex: newClassicLexer(input)}

	if !p.expectIdent("popup") {
		return nil, p.iss
	}
	title, ok := p.expectString("popup title")
	if !ok {
		return nil, p.iss
	}
	if !p.expectPunct("[") {
		return nil, p.iss
	}
	elems := p.parseItems("]")
	if len(p.iss) > 0 {
		return nil, p.iss
	}
	elems = ensureButtonSafety(elems)

	def := &popupkit.PopupDefinition{Title: title, Elements: elems}
	if err := popupkit.ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

type classicParser struct {
	lex *classicLexer
	iss popupkit.Issues
}

func (p *classicParser) errHere(tok classicToken, msg string) {
	p.iss = popupkit.AppendIssues(p.iss, popupkit.IssueAtLine(tok.line, tok.col, popupkit.CodeParseError, msg))
}

func (p *classicParser) expectIdent(want string) bool {
	tok := p.lex.next()
	if tok.kind != tokenIdent || tok.text != want {
		p.errHere(tok, fmt.Sprintf("expected %q, found %q", want, tok.text))
		return false
	}
	return true
}

func (p *classicParser) expectString(what string) (string, bool) {
	tok := p.lex.next()
	if tok.kind != tokenString {
		p.errHere(tok, fmt.Sprintf("expected a quoted %s", what))
		return "", false
	}
	return tok.text, true
}

func (p *classicParser) expectPunct(want string) bool {
	tok := p.lex.next()
	if tok.kind != tokenPunct || tok.text != want {
		p.errHere(tok, fmt.Sprintf("expected %q, found %q", want, tok.text))
		return false
	}
	return true
}

func (p *classicParser) expectNumber(what string) (float64, bool) {
	tok := p.lex.next()
	if tok.kind != tokenNumber {
		p.errHere(tok, fmt.Sprintf("expected a number for %s", what))
		return 0, false
	}
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		p.errHere(tok, fmt.Sprintf("invalid number %q", tok.text))
		return 0, false
	}
	return f, true
}

// widget keyword aliases, normalized to the canonical kind word.
var classicKeywords = map[string]string{
	"text": "text", "markdown": "markdown",
	"slider": "slider", "range": "slider",
	"checkbox": "checkbox", "check": "checkbox", "toggle": "checkbox",
	"textbox": "textbox", "input": "textbox",
	"choice": "choice", "select": "choice", "dropdown": "choice",
	"multiselect": "multiselect", "multi": "multiselect",
	"group": "group", "buttons": "buttons", "if": "if",
}

// parseItems consumes widget items until the given closer punct.
func (p *classicParser) parseItems(closer string) []popupkit.Element {
	var elems []popupkit.Element
	for {
		tok := p.lex.next()
		if tok.kind == tokenEOF {
			p.errHere(tok, fmt.Sprintf("expected %q before end of input", closer))
			return elems
		}
		if tok.kind == tokenPunct && tok.text == closer {
			return elems
		}
		if tok.kind != tokenIdent {
			p.errHere(tok, fmt.Sprintf("expected a widget keyword, found %q", tok.text))
			return elems
		}
		keyword, known := classicKeywords[tok.text]
		if !known {
			p.iss = popupkit.AppendIssues(p.iss, popupkit.Issue{
				Line:    tok.line,
				Col:     tok.col,
				Code:    popupkit.CodeUnknownWidget,
				Message: fmt.Sprintf("unknown widget keyword %q", tok.text),
				Hint:    "known keywords: text, slider, checkbox, textbox, choice, multiselect, group, buttons, if",
				Offset:  -1,
			})
			return elems
		}
		el, ok := p.parseItem(keyword)
		if !ok {
			return elems
		}
		elems = append(elems, el)
	}
}

func (p *classicParser) parseItem(keyword string) (popupkit.Element, bool) {
	switch keyword {
	case "text", "markdown":
		content, ok := p.expectString(keyword + " content")
		if !ok {
			return popupkit.Element{}, false
		}
		kind := popupkit.KindText
		if keyword == "markdown" {
			kind = popupkit.KindMarkdown
		}
		return popupkit.Element{Kind: kind, Label: content}, true

	case "slider":
		return p.parseSlider()

	case "checkbox":
		label, ok := p.expectString("checkbox label")
		if !ok {
			return popupkit.Element{}, false
		}
		el := popupkit.Element{Kind: popupkit.KindCheck, ID: popupkit.SlugID(label), Label: label}
		if p.acceptIdent("default") {
			if !p.expectPunct("=") {
				return popupkit.Element{}, false
			}
			tok := p.lex.next()
			checked, ok := parseBoolWord(tok.text)
			if !ok {
				p.errHere(tok, fmt.Sprintf("checkbox default must be true or false, found %q", tok.text))
				return popupkit.Element{}, false
			}
			el.DefaultChecked = checked
		}
		return el, true

	case "textbox":
		label, ok := p.expectString("textbox label")
		if !ok {
			return popupkit.Element{}, false
		}
		el := popupkit.Element{Kind: popupkit.KindInput, ID: popupkit.SlugID(label), Label: label}
		if p.acceptIdent("rows") {
			if !p.expectPunct("=") {
				return popupkit.Element{}, false
			}
			n, ok := p.expectNumber("rows")
			if !ok {
				return popupkit.Element{}, false
			}
			el.Rows = int(n)
		}
		if p.acceptPunct("@") {
			hint, ok := p.expectString("placeholder")
			if !ok {
				return popupkit.Element{}, false
			}
			el.Placeholder = hint
		}
		return el, true

	case "choice", "multiselect":
		label, ok := p.expectString(keyword + " label")
		if !ok {
			return popupkit.Element{}, false
		}
		opts, ok := p.parseOptionList()
		if !ok {
			return popupkit.Element{}, false
		}
		kind := popupkit.KindSelect
		if keyword == "multiselect" {
			kind = popupkit.KindMulti
		}
		return popupkit.Element{Kind: kind, ID: popupkit.SlugID(label), Label: label, Options: opts}, true

	case "group":
		label, ok := p.expectString("group label")
		if !ok {
			return popupkit.Element{}, false
		}
		if !p.expectPunct("[") {
			return popupkit.Element{}, false
		}
		members := p.parseItems("]")
		if len(p.iss) > 0 {
			return popupkit.Element{}, false
		}
		return popupkit.Element{Kind: popupkit.KindGroup, Label: label, Elements: members}, true

	case "buttons":
		if !p.expectPunct("[") {
			return popupkit.Element{}, false
		}
		var labels []string
		for {
			tok := p.lex.next()
			if tok.kind == tokenPunct && tok.text == "]" {
				break
			}
			if tok.kind == tokenPunct && tok.text == "," {
				continue
			}
			if tok.kind != tokenString {
				p.errHere(tok, "button labels must be quoted strings")
				return popupkit.Element{}, false
			}
			labels = append(labels, tok.text)
		}
		return popupkit.Element{Kind: popupkit.KindButtons, ButtonLabels: labels}, true

	case "if":
		condText, ok := p.lex.rawUntil('{')
		if !ok {
			tok := p.lex.next()
			p.errHere(tok, "if needs a { block }")
			return popupkit.Element{}, false
		}
		if !p.expectPunct("{") {
			return popupkit.Element{}, false
		}
		body := p.parseItems("}")
		if len(p.iss) > 0 {
			return popupkit.Element{}, false
		}
		condText = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(condText), "]"))
		condText = strings.TrimSpace(strings.TrimPrefix(condText, "["))
		return popupkit.Element{
			Kind:    popupkit.KindCondition,
			When:    translateCondition(condText),
			Reveals: body,
		}, true
	}
	return popupkit.Element{}, false
}

func (p *classicParser) parseSlider() (popupkit.Element, bool) {
	label, ok := p.expectString("slider label")
	if !ok {
		return popupkit.Element{}, false
	}
	min, ok := p.expectNumber("slider minimum")
	if !ok {
		return popupkit.Element{}, false
	}
	if !p.expectPunct("..") {
		return popupkit.Element{}, false
	}
	max, ok := p.expectNumber("slider maximum")
	if !ok {
		return popupkit.Element{}, false
	}
	el := popupkit.Element{Kind: popupkit.KindSlider, ID: popupkit.SlugID(label), Label: label, Min: min, Max: max}
	if p.acceptIdent("default") {
		if !p.expectPunct("=") {
			return popupkit.Element{}, false
		}
		d, ok := p.expectNumber("slider default")
		if !ok {
			return popupkit.Element{}, false
		}
		el.Default = &d
	}
	return el, true
}

func (p *classicParser) parseOptionList() ([]popupkit.Option, bool) {
	if !p.expectPunct("[") {
		return nil, false
	}
	var opts []popupkit.Option
	for {
		tok := p.lex.next()
		if tok.kind == tokenPunct && tok.text == "]" {
			return opts, true
		}
		if tok.kind == tokenPunct && tok.text == "," {
			continue
		}
		if tok.kind != tokenString {
			p.errHere(tok, "options must be quoted strings")
			return nil, false
		}
		opts = append(opts, popupkit.Option{Label: tok.text})
	}
}

func (p *classicParser) acceptIdent(want string) bool {
	tok := p.lex.peek()
	if tok.kind == tokenIdent && tok.text == want {
		p.lex.next()
		return true
	}
	return false
}

func (p *classicParser) acceptPunct(want string) bool {
	tok := p.lex.peek()
	if tok.kind == tokenPunct && tok.text == want {
		p.lex.next()
		return true
	}
	return false
}
