// Package textscan provides a small position-tracking line scanner shared by
// the textual dialect parsers.
package textscan

import "strings"

// Line is one line of input with its 1-based position and indentation.
type Line struct {
	Num    int    // 1-based line number in the original input
	Raw    string // unmodified text
	Text   string // text with surrounding whitespace trimmed
	Indent int    // leading whitespace width, tabs counting as 4
}

// Blank reports whether the line holds no visible text.
func (l Line) Blank() bool { return l.Text == "" }

// Scanner walks lines of input with single-line lookahead.
type Scanner struct {
	lines []Line
	pos   int
}

// New splits input into lines. Trailing newlines produce no extra line.
func New(input string) *Scanner {
	raw := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lines = append(lines, Line{
			Num:    i + 1,
			Raw:    r,
			Text:   strings.TrimSpace(r),
			Indent: indentWidth(r),
		})
	}
	// Drop a final empty line produced by a trailing newline.
	if n := len(lines); n > 0 && lines[n-1].Raw == "" {
		lines = lines[:n-1]
	}
	return &Scanner{lines: lines}
}

func indentWidth(s string) int {
	w := 0
	for _, c := range s {
		switch c {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}

// Next consumes and returns the next line.
func (s *Scanner) Next() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	l := s.lines[s.pos]
	s.pos++
	return l, true
}

// Peek returns the next line without consuming it.
func (s *Scanner) Peek() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.pos], true
}

// SkipBlank advances past blank lines.
func (s *Scanner) SkipBlank() {
	for s.pos < len(s.lines) && s.lines[s.pos].Blank() {
		s.pos++
	}
}

// Back rewinds one line. Calling it before any Next is a no-op.
func (s *Scanner) Back() {
	if s.pos > 0 {
		s.pos--
	}
}

// Remaining reports how many lines are left.
func (s *Scanner) Remaining() int { return len(s.lines) - s.pos }
