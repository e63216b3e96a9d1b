package dsl

import (
	"regexp"
	"strings"

	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/internal/textscan"
)

// ParseSimple decodes the structured dialect: an optional title line followed
// by indented widget, message, button, and conditional lines.
func ParseSimple(input string) (*popupkit.PopupDefinition, error) {
	sc := textscan.New(input)
	sc.SkipBlank()

	title := "Popup"
	if first, ok := sc.Peek(); ok {
		if t, isTitle := titleOf(first.Text); isTitle {
			title = t
			sc.Next()
		}
	}

	elems, iss := parseSimpleBody(sc)
	if len(iss) > 0 {
		return nil, iss
	}
	elems = ensureButtonSafety(elems)

	def := &popupkit.PopupDefinition{Title: title, Elements: elems}
	if err := popupkit.ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

// titleOf applies the first-line title heuristic: confirm questions, heading
// prefixes, a bare name optionally ending in a colon. Lines carrying widget
// or button syntax are never titles.
func titleOf(text string) (string, bool) {
	if rest, ok := strings.CutPrefix(text, "confirm "); ok {
		t := strings.TrimSpace(rest)
		if !strings.HasSuffix(t, "?") {
			t += "?"
		}
		return t, true
	}
	for _, h := range []string{"### ", "## ", "# "} {
		if rest, ok := strings.CutPrefix(text, h); ok {
			return strings.TrimSpace(rest), true
		}
	}
	if i := strings.IndexByte(text, ':'); i >= 0 {
		// Only a trailing colon marks a title; anything after it is a widget.
		if i == len(text)-1 {
			return strings.TrimSpace(text[:i]), true
		}
		return "", false
	}
	for _, p := range []string{"[", "!", ">", "?", "•", "→", "-"} {
		if strings.HasPrefix(text, p) {
			return "", false
		}
	}
	if strings.Contains(text, " or ") {
		return "", false
	}
	return text, true
}

var groupHeaderRe = regexp.MustCompile(`^-{2,}\s*(.+?)\s*-{2,}$`)

func parseSimpleBody(sc *textscan.Scanner) ([]popupkit.Element, popupkit.Issues) {
	var elems []popupkit.Element
	var iss popupkit.Issues

	for {
		sc.SkipBlank()
		line, ok := sc.Next()
		if !ok {
			break
		}
		text := line.Text

		switch {
		case strings.HasPrefix(text, "[if ") || text == "[if]":
			el, condIss := parseBracketConditional(sc, line)
			iss = append(iss, condIss...)
			if len(condIss) == 0 {
				elems = append(elems, el)
			}

		case strings.HasPrefix(text, "when ") && strings.HasSuffix(text, ":"):
			el, condIss := parseWhenBlock(sc, line)
			iss = append(iss, condIss...)
			if len(condIss) == 0 {
				elems = append(elems, el)
			}

		case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
			elems = append(elems, popupkit.Element{
				Kind:         popupkit.KindButtons,
				ButtonLabels: splitBracketButtons(text[1 : len(text)-1]),
			})

		case strings.HasPrefix(text, "→"):
			label := strings.TrimSpace(strings.TrimPrefix(text, "→"))
			elems = append(elems, popupkit.Element{Kind: popupkit.KindButtons, ButtonLabels: []string{label}})

		case strings.HasPrefix(text, "with ") || strings.HasPrefix(text, "buttons:") || strings.HasPrefix(text, "actions:"):
			rest := text
			for _, p := range []string{"with ", "buttons:", "actions:"} {
				rest = strings.TrimPrefix(rest, p)
			}
			rest = strings.TrimSpace(rest)
			var labels []string
			if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
				labels = splitBracketButtons(rest[1 : len(rest)-1])
			} else {
				labels = splitButtonPhrase(rest)
			}
			elems = append(elems, popupkit.Element{Kind: popupkit.KindButtons, ButtonLabels: labels})

		case groupHeaderRe.MatchString(text):
			m := groupHeaderRe.FindStringSubmatch(text)
			elems = append(elems, popupkit.Element{Kind: popupkit.KindGroup, Label: m[1]})

		case isMessagePrefix(text):
			elems = append(elems, popupkit.Element{Kind: popupkit.KindText, Label: annotateMessage(text)})

		case strings.Contains(text, ":"):
			label, value, _ := strings.Cut(text, ":")
			label = strings.TrimSpace(label)
			value = strings.TrimSpace(value)
			if value == "" {
				elems = append(elems, popupkit.Element{Kind: popupkit.KindText, Label: text})
				break
			}
			if el, ok := inferWidget(label, value); ok {
				elems = append(elems, el)
			} else {
				elems = append(elems, popupkit.Element{Kind: popupkit.KindText, Label: label + ": " + value})
			}

		case strings.Contains(text, " or "):
			elems = append(elems, popupkit.Element{Kind: popupkit.KindButtons, ButtonLabels: splitButtonPhrase(text)})

		default:
			elems = append(elems, popupkit.Element{Kind: popupkit.KindText, Label: text})
		}
	}
	return elems, iss
}

func isMessagePrefix(text string) bool {
	for _, p := range []string{">", "!", "?", "•"} {
		if strings.HasPrefix(text, p+" ") {
			return true
		}
	}
	return false
}

// annotateMessage keeps prefix semantics as plain text glyphs.
func annotateMessage(text string) string {
	body := strings.TrimSpace(text[1:])
	switch text[:1] {
	case ">":
		return "ℹ️ " + body
	case "!":
		return "⚠️ " + body
	case "?":
		return "❓ " + body
	default:
		return "• " + body
	}
}

// splitBracketButtons splits a bracket row on pipes, falling back to commas:
// [Save | Cancel], [Execute, Delegate].
func splitBracketButtons(inner string) []string {
	sep := "|"
	if !strings.Contains(inner, "|") {
		sep = ","
	}
	var labels []string
	for _, part := range strings.Split(inner, sep) {
		if p := strings.TrimSpace(part); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}

// parseBracketConditional handles `[if <condition>] { <elements> }`, which
// may span lines and nest. The opening line has been consumed; more lines are
// pulled until the braces balance.
func parseBracketConditional(sc *textscan.Scanner, open textscan.Line) (popupkit.Element, popupkit.Issues) {
	buf := open.Text
	for braceDepth(buf) > 0 || !strings.Contains(buf, "{") {
		line, ok := sc.Next()
		if !ok {
			return popupkit.Element{}, popupkit.AppendIssues(nil,
				popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "unterminated conditional block"))
		}
		buf += "\n" + line.Raw
	}

	condEnd := strings.Index(buf, "]")
	if condEnd < 0 {
		return popupkit.Element{}, popupkit.AppendIssues(nil,
			popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "conditional is missing its closing bracket"))
	}
	condText := strings.TrimSpace(strings.TrimPrefix(buf[:condEnd], "[if"))
	if condText == "" {
		return popupkit.Element{}, popupkit.AppendIssues(nil,
			popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "conditional needs a condition between [if and ]"))
	}

	bodyStart := strings.Index(buf, "{")
	if bodyStart < 0 {
		return popupkit.Element{}, popupkit.AppendIssues(nil,
			popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "conditional needs a { block }"))
	}
	bodyEnd := matchingBrace(buf, bodyStart)
	if bodyEnd < 0 {
		return popupkit.Element{}, popupkit.AppendIssues(nil,
			popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "unterminated conditional block"))
	}
	body := strings.TrimSpace(buf[bodyStart+1 : bodyEnd])

	var reveals []popupkit.Element
	var iss popupkit.Issues
	if body != "" {
		reveals, iss = parseSimpleBody(textscan.New(body))
	}
	return popupkit.Element{
		Kind:    popupkit.KindCondition,
		When:    translateCondition(condText),
		Reveals: reveals,
	}, iss
}

// parseWhenBlock handles the indented form:
//
//	when Fog present:
//	  Loud: yes
func parseWhenBlock(sc *textscan.Scanner, open textscan.Line) (popupkit.Element, popupkit.Issues) {
	condText := strings.TrimSuffix(strings.TrimPrefix(open.Text, "when "), ":")
	var bodyLines []string
	base := ""
	for {
		line, ok := sc.Peek()
		if !ok {
			break
		}
		if line.Blank() {
			sc.Next()
			continue
		}
		if line.Indent <= open.Indent {
			break
		}
		sc.Next()
		// Re-base on the first body line's indent so nested blocks keep
		// their relative indentation through the re-parse.
		if base == "" {
			base = line.Raw[:len(line.Raw)-len(strings.TrimLeft(line.Raw, " \t"))]
		}
		bodyLines = append(bodyLines, strings.TrimPrefix(line.Raw, base))
	}
	var reveals []popupkit.Element
	var iss popupkit.Issues
	if len(bodyLines) > 0 {
		reveals, iss = parseSimpleBody(textscan.New(strings.Join(bodyLines, "\n")))
	}
	if strings.TrimSpace(condText) == "" {
		iss = popupkit.AppendIssues(iss,
			popupkit.IssueAtLine(open.Num, open.Indent+1, popupkit.CodeParseError, "when block needs a condition"))
	}
	return popupkit.Element{
		Kind:    popupkit.KindCondition,
		When:    translateCondition(condText),
		Reveals: reveals,
	}, iss
}

// braceDepth counts unbalanced opening braces.
func braceDepth(s string) int {
	depth := 0
	for _, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}

// matchingBrace finds the index of the brace closing the one at start.
func matchingBrace(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
